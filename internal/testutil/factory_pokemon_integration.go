//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

var nextID atomic.Int32

// MakePokemon — мини-генератор валидной карточки с уникальным именем.
func MakePokemon(opts ...func(*domain.PokemonDetail)) domain.PokemonDetail {
	id := int(nextID.Add(1))
	name := "mon-" + UniqSuffix()
	p := domain.PokemonDetail{
		ID:   id,
		Name: name,
		Sprites: &domain.Sprites{
			FrontDefault: "https://img.example/" + name + ".png",
		},
		Types: []domain.TypeSlot{{Slot: 1, Type: domain.NamedResource{Name: "normal"}}},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithTypes — заменить теги категорий.
func WithTypes(names ...string) func(*domain.PokemonDetail) {
	return func(p *domain.PokemonDetail) {
		p.Types = p.Types[:0]
		for i, n := range names {
			p.Types = append(p.Types, domain.TypeSlot{Slot: i + 1, Type: domain.NamedResource{Name: n}})
		}
	}
}

// FakePokeAPI — httptest-сервер, отдающий /pokemon/{name} из набора карточек; прочее — 404.
func FakePokeAPI(list ...domain.PokemonDetail) *httptest.Server {
	byKey := make(map[string]domain.PokemonDetail, 2*len(list))
	for _, p := range list {
		byKey[p.Name] = p
		byKey[domain.NormalizeID(p.ID)] = p
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := strings.CutPrefix(r.URL.Path, "/pokemon/")
		p, found := byKey[key]
		if !ok || !found {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p)
	}))
}
