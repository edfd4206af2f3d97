package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports/mocks"
	rest "github.com/Gunvolt24/pokedex/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*mocks.MockFavoritesService, *mocks.MockCatalogService, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	fav := mocks.NewMockFavoritesService(ctrl)
	cat := mocks.NewMockCatalogService(ctrl)

	h := rest.NewHandler(fav, cat, noopLogger{}, 0)
	return fav, cat, rest.NewRouter(h, "", "pokedex-test")
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json: %v, body=%s", err, w.Body.String())
	}
	return v
}

func TestListFavorites(t *testing.T) {
	fav, _, r := newRouter(t)

	fav.EXPECT().Favorites().Return([]string{"pikachu", "bulbasaur"})
	fav.EXPECT().FavoritesData().Return(map[string]domain.Snapshot{
		"pikachu": {ID: 25, Name: "pikachu"},
	})

	w := serve(r, http.MethodGet, "/favorites")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	got := decode[struct {
		Favorites []string                   `json:"favorites"`
		Data      map[string]domain.Snapshot `json:"data"`
	}](t, w)
	if len(got.Favorites) != 2 || got.Favorites[0] != "pikachu" {
		t.Fatalf("unexpected favorites: %+v", got.Favorites)
	}
	if got.Data["pikachu"].ID != 25 {
		t.Fatalf("unexpected data: %+v", got.Data)
	}
}

func TestGetFavorite_WithSnapshot(t *testing.T) {
	fav, _, r := newRouter(t)

	fav.EXPECT().IsFavorite("pikachu").Return(true)
	fav.EXPECT().Snapshot("pikachu").Return(domain.Snapshot{ID: 25, Name: "pikachu"}, true)

	w := serve(r, http.MethodGet, "/favorites/Pikachu")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	got := decode[map[string]any](t, w)
	if got["name"] != "pikachu" || got["favorite"] != true || got["snapshot"] == nil {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestGetFavorite_NotFavorite(t *testing.T) {
	fav, _, r := newRouter(t)

	fav.EXPECT().IsFavorite("mew").Return(false)
	fav.EXPECT().Snapshot("mew").Return(domain.Snapshot{}, false)

	w := serve(r, http.MethodGet, "/favorites/mew")
	got := decode[map[string]any](t, w)
	if got["favorite"] != false {
		t.Fatalf("want favorite=false, got %v", got)
	}
	if _, ok := got["snapshot"]; ok {
		t.Fatalf("snapshot must be omitted: %v", got)
	}
}

func TestToggleFavorite(t *testing.T) {
	fav, _, r := newRouter(t)

	gomock.InOrder(
		fav.EXPECT().ToggleFavorite(gomock.Any(), "pikachu").Return(true),
		fav.EXPECT().ToggleFavorite(gomock.Any(), "pikachu").Return(false),
	)

	for _, want := range []bool{true, false} {
		w := serve(r, http.MethodPost, "/favorites/%20PIKACHU%20/toggle")
		if w.Code != http.StatusOK {
			t.Fatalf("want 200, got %d", w.Code)
		}
		got := decode[map[string]any](t, w)
		if got["name"] != "pikachu" || got["favorite"] != want {
			t.Fatalf("toggle: got %v, want favorite=%v", got, want)
		}
	}
}

func TestToggleFavorite_BlankName_400(t *testing.T) {
	_, _, r := newRouter(t)

	w := serve(r, http.MethodPost, "/favorites/%20/toggle")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestReloadFavorites(t *testing.T) {
	fav, _, r := newRouter(t)

	gomock.InOrder(
		fav.EXPECT().Reload(gomock.Any()),
		fav.EXPECT().Favorites().Return([]string{"eevee"}),
		fav.EXPECT().FavoritesData().Return(map[string]domain.Snapshot{}),
	)

	w := serve(r, http.MethodPost, "/favorites/reload")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestGetPokemon(t *testing.T) {
	_, cat, r := newRouter(t)

	cat.EXPECT().DetailPage(gomock.Any(), "pikachu").Return(&domain.DetailPage{
		ID: 25, Name: "pikachu", Types: []string{"electric"}, Evolutions: []string{"pichu", "pikachu", "raichu"},
	}, nil)

	w := serve(r, http.MethodGet, "/pokemon/pikachu")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	got := decode[domain.DetailPage](t, w)
	if got.ID != 25 || len(got.Evolutions) != 3 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestGetPokemon_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not_found", fmt.Errorf("pokeapi: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unavailable", fmt.Errorf("pokeapi: %w", domain.ErrUnavailable), http.StatusServiceUnavailable},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, cat, r := newRouter(t)
			cat.EXPECT().DetailPage(gomock.Any(), "x").Return(nil, tt.err)

			w := serve(r, http.MethodGet, "/pokemon/x")
			if w.Code != tt.want {
				t.Fatalf("want %d, got %d, body=%s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestSearch(t *testing.T) {
	fav, cat, r := newRouter(t)

	cat.EXPECT().Search(gomock.Any(), "25").Return(&domain.PokemonDetail{ID: 25, Name: "pikachu"}, nil)
	fav.EXPECT().IsFavorite("pikachu").Return(true)

	w := serve(r, http.MethodGet, "/search?q=25")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	got := decode[domain.DetailPage](t, w)
	if got.Name != "pikachu" || !got.Favorite {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestSearch_EmptyQuery_400(t *testing.T) {
	_, cat, r := newRouter(t)

	cat.EXPECT().Search(gomock.Any(), "").Return(nil, domain.ErrEmptyQuery)

	w := serve(r, http.MethodGet, "/search?q=%20")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestRegions(t *testing.T) {
	_, cat, r := newRouter(t)

	cat.EXPECT().Regions().Return(domain.Regions)

	w := serve(r, http.MethodGet, "/regions")
	got := decode[[]domain.Region](t, w)
	if len(got) != len(domain.Regions) || got[0].Key != "kanto" {
		t.Fatalf("unexpected regions: %+v", got)
	}
}

func TestRegionPokemon_ByIDAndKey(t *testing.T) {
	_, cat, r := newRouter(t)

	dex := &domain.Pokedex{ID: 2, Name: "kanto", PokemonEntries: []domain.PokedexEntry{}}
	cat.EXPECT().RegionPokemon(gomock.Any(), 2, 50, 0).Return(dex, nil)
	cat.EXPECT().RegionPokemon(gomock.Any(), 3, 10, 20).Return(dex, nil)

	if w := serve(r, http.MethodGet, "/regions/2/pokemon"); w.Code != http.StatusOK {
		t.Fatalf("by id: want 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/regions/johto/pokemon?limit=10&offset=20"); w.Code != http.StatusOK {
		t.Fatalf("by key: want 200, got %d", w.Code)
	}
}

func TestRegionPokemon_BadID_400(t *testing.T) {
	_, _, r := newRouter(t)

	for _, target := range []string{
		"/regions/atlantis/pokemon",
		"/regions/-1/pokemon",
		"/regions/2/pokemon?limit=abc",
		"/regions/2/pokemon?offset=-5",
	} {
		if w := serve(r, http.MethodGet, target); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", target, w.Code)
		}
	}
}

func TestTypes(t *testing.T) {
	_, cat, r := newRouter(t)

	cat.EXPECT().Types(gomock.Any()).Return([]domain.NamedResource{{Name: "fire"}}, nil)

	w := serve(r, http.MethodGet, "/types")
	got := decode[[]domain.NamedResource](t, w)
	if len(got) != 1 || got[0].Name != "fire" {
		t.Fatalf("unexpected types: %+v", got)
	}
}

func TestNoRoute_404(t *testing.T) {
	_, _, r := newRouter(t)

	w := serve(r, http.MethodGet, "/no-such-route")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if got := decode[map[string]string](t, w); got["error"] != "route not found" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, _, r := newRouter(t)

	w := serve(r, http.MethodPost, "/pokemon/pikachu")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	_, _, r := newRouter(t)

	w := serve(r, http.MethodGet, "/ping")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	_, _, r := newRouter(t)

	w := serve(r, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}

func TestRequestID_Echoed(t *testing.T) {
	_, _, r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "rid-1" {
		t.Fatalf("want X-Request-ID rid-1, got %q", got)
	}
}
