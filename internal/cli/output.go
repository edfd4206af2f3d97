package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDetailPage(w io.Writer, p *domain.DetailPage) {
	star := ""
	if p.Favorite {
		star = " *"
	}
	fmt.Fprintf(w, "#%d %s%s\n", p.ID, p.Name, star)
	if p.Offline {
		fmt.Fprintln(w, "(offline snapshot)")
	}
	if len(p.Types) > 0 {
		fmt.Fprintf(w, "Types:      %s\n", strings.Join(p.Types, ", "))
	}
	if p.Artwork != "" {
		fmt.Fprintf(w, "Artwork:    %s\n", p.Artwork)
	}
	if p.Description != "" {
		fmt.Fprintf(w, "About:      %s\n", p.Description)
	}
	for _, s := range p.Stats {
		fmt.Fprintf(w, "  %-16s %d\n", s.Name, s.Value)
	}
	if len(p.Abilities) > 0 {
		fmt.Fprintf(w, "Abilities:  %s\n", strings.Join(p.Abilities, ", "))
	}
	if len(p.Moves) > 0 {
		fmt.Fprintf(w, "Moves:      %s\n", strings.Join(p.Moves, ", "))
	}
	if len(p.Evolutions) > 0 {
		fmt.Fprintf(w, "Evolutions: %s\n", strings.Join(p.Evolutions, " -> "))
	}
}
