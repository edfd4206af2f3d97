package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

func newShowCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME|ID",
		Short: "Show a Pokemon detail page (offline snapshot for favorites)",
		Args:  cobra.ExactArgs(1),
		RunE: r.withEnv(func(cmd *cobra.Command, args []string, env *Env) error {
			page, err := env.Catalog.DetailPage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), page)
			}
			printDetailPage(cmd.OutOrStdout(), page)
			return nil
		}),
	}
}

func newSearchCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Find a Pokemon by exact name or id",
		Args:  cobra.ExactArgs(1),
		RunE: r.withEnv(func(cmd *cobra.Command, args []string, env *Env) error {
			p, err := env.Catalog.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			page := domain.NewDetailPage(p)
			page.Favorite = env.Favorites.IsFavorite(p.Name)
			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), page)
			}
			printDetailPage(cmd.OutOrStdout(), page)
			return nil
		}),
	}
}

func newRegionsCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions and their regional pokedex ids",
		Args:  cobra.NoArgs,
		RunE: r.withEnv(func(cmd *cobra.Command, _ []string, env *Env) error {
			regions := env.Catalog.Regions()
			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), regions)
			}
			for _, reg := range regions {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-14s pokedex=%d\n", reg.Key, reg.Label, reg.PokedexID)
			}
			return nil
		}),
	}
}

func newRegionCommand(r *runner) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "region [KEY|POKEDEX_ID]",
		Short: "List Pokemon of a regional pokedex (default kanto)",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.withEnv(func(cmd *cobra.Command, args []string, env *Env) error {
			pokedexID := domain.DefaultPokedexID
			if len(args) == 1 {
				id, err := resolvePokedexID(args[0])
				if err != nil {
					return err
				}
				pokedexID = id
			}
			if offset < 0 {
				return fmt.Errorf("offset must be >= 0, got %d", offset)
			}

			dex, err := env.Catalog.RegionPokemon(cmd.Context(), pokedexID, limit, offset)
			if err != nil {
				return err
			}
			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), dex)
			}
			for _, e := range dex.PokemonEntries {
				mark := " "
				if env.Favorites.IsFavorite(e.PokemonSpecies.Name) {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %4d  %s\n", mark, e.EntryNumber, e.PokemonSpecies.Name)
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")
	return cmd
}

func newTypesCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List Pokemon types",
		Args:  cobra.NoArgs,
		RunE: r.withEnv(func(cmd *cobra.Command, _ []string, env *Env) error {
			types, err := env.Catalog.Types(cmd.Context())
			if err != nil {
				return err
			}
			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), types)
			}
			names := make([]string, 0, len(types))
			for _, t := range types {
				names = append(names, t.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		}),
	}
}

// resolvePokedexID — числовой id или ключ региона.
func resolvePokedexID(arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("pokedex id must be positive, got %d", id)
		}
		return id, nil
	}
	region, ok := domain.RegionByKey(arg)
	if !ok {
		return 0, fmt.Errorf("unknown region %q", arg)
	}
	return region.PokedexID, nil
}
