package domain

// Region — регион и соответствующий ему региональный покедекс.
type Region struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	PokedexID int    `json:"pokedex_id"`
}

// Regions — фиксированное соответствие регион → id покедекса PokeAPI.
var Regions = []Region{
	{Key: "kanto", Label: "Kanto (I)", PokedexID: 2},
	{Key: "johto", Label: "Johto (II)", PokedexID: 3},
	{Key: "hoenn", Label: "Hoenn (III)", PokedexID: 4},
	{Key: "sinnoh", Label: "Sinnoh (IV)", PokedexID: 5},
	{Key: "unova", Label: "Unova (V)", PokedexID: 8},
	{Key: "kalos", Label: "Kalos (VI)", PokedexID: 11},
	{Key: "alola", Label: "Alola (VII)", PokedexID: 21},
	{Key: "galar", Label: "Galar (VIII)", PokedexID: 27},
	{Key: "paldea", Label: "Paldea (IX)", PokedexID: 32},
}

// DefaultPokedexID — Kanto, если id не передан.
const DefaultPokedexID = 2

// RegionByKey — поиск региона по ключу ("kanto").
func RegionByKey(key string) (Region, bool) {
	key = NormalizeName(key)
	for _, r := range Regions {
		if r.Key == key {
			return r, true
		}
	}
	return Region{}, false
}
