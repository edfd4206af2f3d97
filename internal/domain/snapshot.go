package domain

import (
	"net/url"
	"strings"
)

// FallbackArtworkBase — статическая картинка по имени, когда спрайтов нет в снимке.
const FallbackArtworkBase = "https://img.pokemondb.net/artwork/large/"

// Snapshot — минимальный снимок избранного покемона для офлайн-показа.
type Snapshot struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Sprites *Sprites   `json:"sprites,omitempty"`
	Types   []TypeSlot `json:"types,omitempty"`
}

// SnapshotOf — берёт из полной карточки только {id, name, sprites, types}.
func SnapshotOf(p *PokemonDetail) Snapshot {
	s := Snapshot{ID: p.ID, Name: p.Name}
	if p.Sprites != nil {
		s.Sprites = cloneSprites(p.Sprites)
	}
	if p.Types != nil {
		s.Types = append([]TypeSlot(nil), p.Types...)
	}
	return s
}

// Clone — глубокая копия, чтобы потребители не меняли кэш.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Sprites != nil {
		out.Sprites = cloneSprites(s.Sprites)
	}
	if s.Types != nil {
		out.Types = append([]TypeSlot(nil), s.Types...)
	}
	return out
}

func (s Snapshot) TypeNames() []string { return typeNames(s.Types) }

// ArtworkURL — official-artwork, затем front_default, затем картинка по имени.
func (s Snapshot) ArtworkURL() string {
	if u := s.Sprites.Artwork(); u != "" {
		return u
	}
	return FallbackArtworkURL(s.Name)
}

// Artwork — лучшая доступная картинка; "" если спрайтов нет.
func (sp *Sprites) Artwork() string {
	if sp == nil {
		return ""
	}
	if sp.Other != nil && sp.Other.OfficialArtwork != nil && sp.Other.OfficialArtwork.FrontDefault != "" {
		return sp.Other.OfficialArtwork.FrontDefault
	}
	return sp.FrontDefault
}

func FallbackArtworkURL(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return FallbackArtworkBase + url.PathEscape(name) + ".jpg"
}

func cloneSprites(sp *Sprites) *Sprites {
	c := *sp
	if sp.Other != nil {
		other := *sp.Other
		if sp.Other.OfficialArtwork != nil {
			art := *sp.Other.OfficialArtwork
			other.OfficialArtwork = &art
		}
		c.Other = &other
	}
	return &c
}
