package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports/mocks"
	"github.com/Gunvolt24/pokedex/internal/repo/memory"
	"github.com/Gunvolt24/pokedex/internal/usecase"
	"github.com/Gunvolt24/pokedex/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

var errLookup = errors.New("network down")

func pokemon(id int, name string, types ...string) *domain.PokemonDetail {
	p := &domain.PokemonDetail{
		ID:   id,
		Name: name,
		Sprites: &domain.Sprites{
			FrontDefault: "https://img.example/" + name + ".png",
		},
	}
	for i, t := range types {
		p.Types = append(p.Types, domain.TypeSlot{Slot: i + 1, Type: domain.NamedResource{Name: t}})
	}
	return p
}

func newStore(t *testing.T, kv *memory.KVStore, lookup *mocks.MockPokemonLookup) *usecase.FavoritesStore {
	t.Helper()
	s := usecase.OpenFavoritesStore(context.Background(), kv, lookup, noopLogger{}, validate.NewPokemonValidator(), usecase.DefaultFavoritesOptions())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFavorites_ToggleAddThenRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	lookup.EXPECT().Pokemon(gomock.Any(), "bulbasaur").Return(pokemon(1, "bulbasaur", "grass", "poison"), nil)

	kv := memory.NewKVStore(nil)
	s := newStore(t, kv, lookup)
	ctx := context.Background()

	require.Empty(t, s.Favorites())

	require.True(t, s.ToggleFavorite(ctx, "bulbasaur"))
	s.Wait()

	require.Equal(t, []string{"bulbasaur"}, s.Favorites())
	data := s.FavoritesData()
	require.Contains(t, data, "bulbasaur")
	require.Equal(t, 1, data["bulbasaur"].ID)
	require.Equal(t, []string{"grass", "poison"}, data["bulbasaur"].TypeNames())

	raw, ok, err := kv.Get(ctx, usecase.DefaultFavoritesKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `["bulbasaur"]`, raw)
	_, ok, _ = kv.Get(ctx, usecase.DefaultSnapshotPrefix+"bulbasaur")
	require.True(t, ok)

	require.False(t, s.ToggleFavorite(ctx, "bulbasaur"))
	s.Wait()

	require.Empty(t, s.Favorites())
	require.NotContains(t, s.FavoritesData(), "bulbasaur")

	raw, _, _ = kv.Get(ctx, usecase.DefaultFavoritesKey)
	require.JSONEq(t, `[]`, raw)
	_, ok, _ = kv.Get(ctx, usecase.DefaultSnapshotPrefix+"bulbasaur")
	require.False(t, ok)
}

func TestFavorites_RoundTripThroughFreshStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	lookup.EXPECT().Pokemon(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (*domain.PokemonDetail, error) {
			ids := map[string]int{"bulbasaur": 1, "charmander": 4, "squirtle": 7, "pikachu": 25}
			return pokemon(ids[name], name), nil
		}).AnyTimes()

	kv := memory.NewKVStore(nil)
	s := newStore(t, kv, lookup)
	ctx := context.Background()

	calls := []string{"bulbasaur", "charmander", "squirtle", "charmander", "pikachu", "squirtle", "squirtle"}
	for _, n := range calls {
		s.ToggleFavorite(ctx, n)
	}
	s.Wait()

	want := []string{"bulbasaur", "pikachu", "squirtle"}
	require.Equal(t, want, s.Favorites())
	require.False(t, s.IsFavorite("charmander"))

	fresh := newStore(t, kv, lookup)
	require.Equal(t, want, fresh.Favorites())
	require.Equal(t, s.FavoritesData(), fresh.FavoritesData())
	for _, n := range want {
		require.True(t, fresh.IsFavorite(n))
	}
}

func TestFavorites_RemoveWithoutSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	lookup.EXPECT().Pokemon(gomock.Any(), "missingno").Return(nil, errLookup)

	kv := memory.NewKVStore(nil)
	s := newStore(t, kv, lookup)
	ctx := context.Background()

	require.True(t, s.ToggleFavorite(ctx, "missingno"))
	s.Wait()
	require.Empty(t, s.FavoritesData())

	require.False(t, s.ToggleFavorite(ctx, "missingno"))
	require.Empty(t, s.FavoritesData())
	require.Empty(t, s.Favorites())
}

func TestFavorites_CaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	lookup.EXPECT().Pokemon(gomock.Any(), "pikachu").Return(pokemon(25, "pikachu", "electric"), nil)
	lookup.EXPECT().Pokemon(gomock.Any(), "25").Return(pokemon(25, "pikachu", "electric"), nil)

	s := newStore(t, memory.NewKVStore(nil), lookup)
	ctx := context.Background()

	require.True(t, s.ToggleFavorite(ctx, "  Pikachu "))
	require.True(t, s.IsFavorite("pikachu"))
	require.True(t, s.IsFavorite("PIKACHU"))

	// числовой id — отдельное имя в его строковой форме
	require.False(t, s.IsFavorite(domain.NormalizeID(25)))
	require.True(t, s.ToggleFavorite(ctx, domain.NormalizeID(25)))
	require.True(t, s.IsFavorite("25"))
	s.Wait()

	snap, ok := s.Snapshot("PiKaChU")
	require.True(t, ok)
	require.Equal(t, 25, snap.ID)
}

func TestFavorites_LookupFailureKeepsMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	lookup.EXPECT().Pokemon(gomock.Any(), "eevee").Return(nil, errLookup)

	kv := memory.NewKVStore(nil)
	s := newStore(t, kv, lookup)

	require.True(t, s.ToggleFavorite(context.Background(), "eevee"))
	s.Wait()

	require.True(t, s.IsFavorite("eevee"))
	_, ok := s.Snapshot("eevee")
	require.False(t, ok)
	_, ok, _ = kv.Get(context.Background(), usecase.DefaultSnapshotPrefix+"eevee")
	require.False(t, ok)
}

func TestFavorites_LoadMalformedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)

	kv := memory.NewKVStore(map[string]string{
		usecase.DefaultFavoritesKey: `{"not":"a list"`,
	})
	s := newStore(t, kv, lookup)

	require.Empty(t, s.Favorites())
	require.Empty(t, s.FavoritesData())
}

func TestFavorites_LoadSkipsBrokenSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)

	kv := memory.NewKVStore(map[string]string{
		usecase.DefaultFavoritesKey:                  `["Bulbasaur","ivysaur","bulbasaur","  ","venusaur"]`,
		usecase.DefaultSnapshotPrefix + "bulbasaur": `{"id":1,"name":"bulbasaur","types":[{"slot":1,"type":{"name":"grass","url":""}}]}`,
		usecase.DefaultSnapshotPrefix + "ivysaur":   `{"id":2,`,
		usecase.DefaultSnapshotPrefix + "venusaur":  `{"id":0,"name":"venusaur"}`,
	})
	s := newStore(t, kv, lookup)

	require.Equal(t, []string{"bulbasaur", "ivysaur", "venusaur"}, s.Favorites())
	data := s.FavoritesData()
	require.Len(t, data, 1)
	require.Equal(t, 1, data["bulbasaur"].ID)
}

func TestFavorites_LoadReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	kv := mocks.NewMockKVStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), usecase.DefaultFavoritesKey).Return("", false, errors.New("disk gone"))

	s := usecase.OpenFavoritesStore(context.Background(), kv, lookup, noopLogger{}, validate.NewPokemonValidator(), usecase.FavoritesOptions{})
	require.Empty(t, s.Favorites())
}

func TestFavorites_ReloadOverwritesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)

	kv := memory.NewKVStore(map[string]string{usecase.DefaultFavoritesKey: `["mew"]`})
	s := newStore(t, kv, lookup)
	require.Equal(t, []string{"mew"}, s.Favorites())

	require.NoError(t, kv.Set(context.Background(), usecase.DefaultFavoritesKey, `["mewtwo","mew"]`))
	s.Reload(context.Background())
	require.Equal(t, []string{"mewtwo", "mew"}, s.Favorites())

	require.NoError(t, kv.Remove(context.Background(), usecase.DefaultFavoritesKey))
	s.Reload(context.Background())
	require.Empty(t, s.Favorites())
}

func TestFavorites_PersistFailureKeepsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	lookup.EXPECT().Pokemon(gomock.Any(), "onix").Return(pokemon(95, "onix", "rock", "ground"), nil)

	kv := mocks.NewMockKVStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), usecase.DefaultFavoritesKey).Return("", false, nil)
	kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read-only")).AnyTimes()
	kv.EXPECT().Remove(gomock.Any(), usecase.DefaultSnapshotPrefix+"onix").Return(errors.New("read-only"))

	s := usecase.OpenFavoritesStore(context.Background(), kv, lookup, noopLogger{}, validate.NewPokemonValidator(), usecase.DefaultFavoritesOptions())

	require.True(t, s.ToggleFavorite(context.Background(), "onix"))
	s.Wait()
	require.True(t, s.IsFavorite("onix"))
	_, ok := s.Snapshot("onix")
	require.True(t, ok, "снимок попадает в кэш даже при ошибке записи")

	require.False(t, s.ToggleFavorite(context.Background(), "onix"))
	require.False(t, s.IsFavorite("onix"))
	_, ok = s.Snapshot("onix")
	require.False(t, ok)
}

func TestFavorites_StaleFetchDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)

	release := make(chan struct{})
	lookup.EXPECT().Pokemon(gomock.Any(), "snorlax").DoAndReturn(
		func(context.Context, string) (*domain.PokemonDetail, error) {
			<-release
			return pokemon(143, "snorlax", "normal"), nil
		})

	kv := memory.NewKVStore(nil)
	s := newStore(t, kv, lookup)
	ctx := context.Background()

	require.True(t, s.ToggleFavorite(ctx, "snorlax"))
	require.False(t, s.ToggleFavorite(ctx, "snorlax"))
	close(release)
	s.Wait()

	require.Empty(t, s.Favorites())
	require.Empty(t, s.FavoritesData())
	_, ok, _ := kv.Get(ctx, usecase.DefaultSnapshotPrefix+"snorlax")
	require.False(t, ok)
}

func TestFavorites_ReturnedViewsAreCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	kv := memory.NewKVStore(map[string]string{
		usecase.DefaultFavoritesKey:               `["ditto"]`,
		usecase.DefaultSnapshotPrefix + "ditto": `{"id":132,"name":"ditto","sprites":{"front_default":"a.png"}}`,
	})
	s := newStore(t, kv, lookup)

	list := s.Favorites()
	list[0] = "mutated"
	data := s.FavoritesData()
	data["ditto"].Sprites.FrontDefault = "b.png"

	require.Equal(t, []string{"ditto"}, s.Favorites())
	snap, ok := s.Snapshot("ditto")
	require.True(t, ok)
	require.Equal(t, "a.png", snap.Sprites.FrontDefault)
}

func TestFavorites_EmptyNameIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockPokemonLookup(ctrl)
	kv := mocks.NewMockKVStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), usecase.DefaultFavoritesKey).Return("", false, nil)

	s := usecase.OpenFavoritesStore(context.Background(), kv, lookup, noopLogger{}, validate.NewPokemonValidator(), usecase.DefaultFavoritesOptions())
	require.False(t, s.ToggleFavorite(context.Background(), "   "))
	require.Empty(t, s.Favorites())
}
