package domain

// NamedResource — ссылка PokeAPI вида {name, url}.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Sprites — ссылки на изображения покемона (используем только нужные поля).
type Sprites struct {
	FrontDefault string       `json:"front_default,omitempty"`
	FrontShiny   string       `json:"front_shiny,omitempty"`
	Other        *OtherSprite `json:"other,omitempty"`
}

type OtherSprite struct {
	OfficialArtwork *Artwork `json:"official-artwork,omitempty"`
}

type Artwork struct {
	FrontDefault string `json:"front_default,omitempty"`
}

// TypeSlot — тег категории (тип покемона) с порядковым слотом.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type MoveEntry struct {
	Move NamedResource `json:"move"`
}

type AbilityEntry struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// PokemonDetail — ответ /pokemon/{nameOrId}.
type PokemonDetail struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Height    int            `json:"height"`
	Weight    int            `json:"weight"`
	Sprites   *Sprites       `json:"sprites,omitempty"`
	Types     []TypeSlot     `json:"types,omitempty"`
	Stats     []StatEntry    `json:"stats,omitempty"`
	Moves     []MoveEntry    `json:"moves,omitempty"`
	Abilities []AbilityEntry `json:"abilities,omitempty"`
}

// TypeNames — имена типов в порядке слотов ответа.
func (p *PokemonDetail) TypeNames() []string {
	return typeNames(p.Types)
}

func typeNames(types []TypeSlot) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.Type.Name)
	}
	return out
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// Species — ответ /pokemon-species/{nameOrId}.
type Species struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries,omitempty"`
	EvolutionChain    *APIResource      `json:"evolution_chain,omitempty"`
}

// APIResource — ссылка PokeAPI без имени.
type APIResource struct {
	URL string `json:"url"`
}

// PokedexEntry — запись региональной покедекс-страницы.
type PokedexEntry struct {
	EntryNumber    int           `json:"entry_number"`
	PokemonSpecies NamedResource `json:"pokemon_species"`
}

// Pokedex — ответ /pokedex/{id}.
type Pokedex struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	PokemonEntries []PokedexEntry `json:"pokemon_entries"`
}

// NamedResourceList — постраничный список ресурсов (/region, /type).
type NamedResourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}
