package domain

import (
	"regexp"
	"strings"
)

const (
	// DetailMovesLimit — сколько первых движений показывает карточка.
	DetailMovesLimit = 6
	// DetailAbilitiesLimit — сколько первых способностей показывает карточка.
	DetailAbilitiesLimit = 6
	// DescriptionLanguage — язык описания вида.
	DescriptionLanguage = "en"
)

// Stat — базовая характеристика в карточке.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DetailPage — собранная карточка покемона для потребителей (HTTP/CLI).
type DetailPage struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Artwork     string   `json:"artwork,omitempty"`
	Types       []string `json:"types"`
	Stats       []Stat   `json:"stats,omitempty"`
	Moves       []string `json:"moves,omitempty"`
	Abilities   []string `json:"abilities,omitempty"`
	Description string   `json:"description,omitempty"`
	Evolutions  []string `json:"evolutions,omitempty"`
	Favorite    bool     `json:"favorite"`
	// Offline — карточка собрана из снимка избранного, удалённый сервис недоступен.
	Offline bool `json:"offline,omitempty"`
}

// NewDetailPage — базовая часть карточки из ответа /pokemon.
func NewDetailPage(p *PokemonDetail) *DetailPage {
	page := &DetailPage{
		ID:      p.ID,
		Name:    p.Name,
		Artwork: p.Sprites.Artwork(),
		Types:   p.TypeNames(),
	}
	if page.Artwork == "" {
		page.Artwork = FallbackArtworkURL(p.Name)
	}
	for _, s := range p.Stats {
		page.Stats = append(page.Stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}
	for i, m := range p.Moves {
		if i == DetailMovesLimit {
			break
		}
		page.Moves = append(page.Moves, m.Move.Name)
	}
	for i, a := range p.Abilities {
		if i == DetailAbilitiesLimit {
			break
		}
		page.Abilities = append(page.Abilities, a.Ability.Name)
	}
	return page
}

// OfflineDetailPage — карточка из снимка избранного.
func OfflineDetailPage(s Snapshot) *DetailPage {
	return &DetailPage{
		ID:       s.ID,
		Name:     s.Name,
		Artwork:  s.ArtworkURL(),
		Types:    s.TypeNames(),
		Favorite: true,
		Offline:  true,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Description — первое описание на нужном языке, пробельные символы схлопнуты.
func (s *Species) Description(lang string) string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name == lang {
			return strings.TrimSpace(whitespaceRe.ReplaceAllString(e.FlavorText, " "))
		}
	}
	return ""
}
