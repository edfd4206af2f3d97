package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/pkg/validate"
)

func newFavoritesCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage the favorites list",
	}

	cmd.AddCommand(
		newFavoritesListCommand(r),
		newFavoritesToggleCommand(r),
		newFavoritesExportCommand(r),
		newFavoritesImportCommand(r),
		newFavoritesValidateCommand(),
	)
	return cmd
}

type favoriteRow struct {
	Name     string           `json:"name"`
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"`
}

func newFavoritesListCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorites in insertion order",
		Args:  cobra.NoArgs,
		RunE: r.withEnv(func(cmd *cobra.Command, _ []string, env *Env) error {
			names := env.Favorites.Favorites()
			data := env.Favorites.FavoritesData()

			rows := make([]favoriteRow, 0, len(names))
			for _, name := range names {
				row := favoriteRow{Name: name}
				if s, ok := data[name]; ok {
					row.Snapshot = &s
				}
				rows = append(rows, row)
			}

			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No favorites yet.")
				return nil
			}
			for _, row := range rows {
				if row.Snapshot == nil {
					fmt.Fprintf(out, "%-20s (no snapshot)\n", row.Name)
					continue
				}
				fmt.Fprintf(out, "%-20s #%-5d %s\n", row.Name, row.Snapshot.ID, strings.Join(row.Snapshot.TypeNames(), ", "))
			}
			return nil
		}),
	}
}

func newFavoritesToggleCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle NAME",
		Short: "Add a Pokemon to favorites or remove it",
		Args:  cobra.ExactArgs(1),
		RunE: r.withEnv(func(cmd *cobra.Command, args []string, env *Env) error {
			name := domain.NormalizeName(args[0])
			if name == "" {
				return domain.ErrEmptyQuery
			}

			added := env.Favorites.ToggleFavorite(cmd.Context(), name)
			// снимок должен успеть сохраниться до закрытия хранилища
			env.Favorites.Wait()

			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"name": name, "favorite": added})
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", name)
				if _, ok := env.Favorites.Snapshot(name); !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: snapshot for %s is not available offline\n", name)
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", name)
			}
			return nil
		}),
	}
}

type exportOptions struct {
	Output string
	Format string
}

func newFavoritesExportCommand(r *runner) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export favorites as a JSON name list or JSONL snapshots",
		Args:  cobra.NoArgs,
		RunE: r.withEnv(func(cmd *cobra.Command, _ []string, env *Env) error {
			out := cmd.OutOrStdout()
			if opts.Output != "" && opts.Output != "-" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return fmt.Errorf("create %s: %w", opts.Output, err)
				}
				defer f.Close()
				out = f
			}

			switch validate.ResolveFormat(opts.Output, validate.InputFormat(opts.Format)) {
			case validate.FormatJSON:
				return writeJSON(out, env.Favorites.Favorites())
			case validate.FormatJSONL:
				missing, err := exportSnapshots(out, env)
				if err != nil {
					return err
				}
				if missing > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d favorites without snapshot were skipped\n", missing)
				}
				return nil
			default:
				return fmt.Errorf("unsupported format: %s", opts.Format)
			}
		}),
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(validate.FormatAuto), "Format: auto|json|jsonl")
	return cmd
}

// exportSnapshots — по снимку в строке, в порядке избранного.
func exportSnapshots(w io.Writer, env *Env) (missing int, err error) {
	data := env.Favorites.FavoritesData()
	enc := json.NewEncoder(w)
	for _, name := range env.Favorites.Favorites() {
		s, ok := data[name]
		if !ok {
			missing++
			continue
		}
		if err := enc.Encode(s); err != nil {
			return missing, fmt.Errorf("write snapshot %s: %w", name, err)
		}
	}
	return missing, nil
}

func newFavoritesImportCommand(r *runner) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add names from a JSON name list or JSONL snapshots",
		Long:  "Adds every name from FILE that is not a favorite yet, keeping file order. Existing favorites are left as is.",
		Args:  cobra.ExactArgs(1),
		RunE: r.withEnv(func(cmd *cobra.Command, args []string, env *Env) error {
			names, invalid, err := readImportNames(cmd, args[0], validate.InputFormat(format))
			if err != nil {
				return err
			}

			added := 0
			for _, name := range names {
				name = domain.NormalizeName(name)
				if name == "" || env.Favorites.IsFavorite(name) {
					continue
				}
				if env.Favorites.ToggleFavorite(cmd.Context(), name) {
					added++
				}
			}
			env.Favorites.Wait()

			if r.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"added": added, "skipped": len(names) - added, "invalid": invalid})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new favorites (%d already present or blank, %d invalid lines)\n",
				added, len(names)-added, invalid)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(validate.FormatAuto), "Format: auto|json|jsonl")
	return cmd
}

func readImportNames(cmd *cobra.Command, path string, format validate.InputFormat) (names []string, invalid int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch validate.ResolveFormat(path, format) {
	case validate.FormatJSON:
		raw, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", path, err)
		}
		names, err = validate.FavoritesFromJSON(raw)
		return names, 0, err
	case validate.FormatJSONL:
		res, err := validate.EachSnapshotJSONL(cmd.Context(), newValidator(), f, func(s *domain.Snapshot) error {
			names = append(names, s.Name)
			return nil
		})
		return names, res.InvalidLinesCount, err
	default:
		return nil, 0, fmt.Errorf("unsupported format: %s", format)
	}
}

// newFavoritesValidateCommand — проверка файла снимков без открытия хранилища.
func newFavoritesValidateCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Validate snapshot files (.json or .jsonl); valid snapshots go to stdout",
		Long:  "Validates snapshot records. Without FILE reads JSONL from stdin. Valid records are printed as canonical JSON lines, the summary goes to stderr.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := validate.InputFormat(format)
			if len(args) == 0 {
				res, err := validate.ValidateJSONLStream(cmd.Context(), newValidator(), cmd.InOrStdin(), cmd.OutOrStdout())
				summary := fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
				return reportValidation(cmd, summary, err)
			}
			summary, err := validate.ValidateFile(cmd.Context(), newValidator(), args[0], f, cmd.OutOrStdout())
			return reportValidation(cmd, summary, err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(validate.FormatAuto), "Format: auto|json|jsonl")
	return cmd
}

func reportValidation(cmd *cobra.Command, summary string, err error) error {
	if err != nil {
		return fmt.Errorf("validation: %w (%s)", err, summary)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "validation ok (%s)\n", summary)
	return nil
}
