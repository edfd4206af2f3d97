package domain

import (
	"strconv"
	"strings"
)

// EvolutionChain — ответ /evolution-chain/{id}.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink — узел дерева эволюций: вид и упорядоченные потомки.
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}

// Names — обход дерева в прямом порядке (узел, затем потомки слева направо).
// Узлы без имени вида пропускаются, их потомки — нет.
func (c *ChainLink) Names() []string {
	var names []string
	stack := []*ChainLink{c}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.Species.Name != "" {
			names = append(names, node.Species.Name)
		}
		for i := len(node.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, &node.EvolvesTo[i])
		}
	}
	return names
}

// ChainIDFromURL — достаёт id цепочки из ссылки вида ".../evolution-chain/10/".
func ChainIDFromURL(raw string) (int, bool) {
	parts := strings.Split(strings.TrimRight(raw, "/"), "/")
	if len(parts) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
