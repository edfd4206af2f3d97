// Пакет cli — локальная утилита над избранным и каталогом: хранилище SQLite,
// удалённый сервис — PokeAPI. Без сети работают команды избранного и офлайн-карточки.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/pokedex/config"
	"github.com/Gunvolt24/pokedex/internal/app"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/ctxmeta"
	"github.com/Gunvolt24/pokedex/pkg/logger"
	"github.com/Gunvolt24/pokedex/pkg/validate"
)

// cliLogLevel — по умолчанию CLI пишет в stderr только предупреждения и ошибки.
const cliLogLevel = "warn"

// GlobalOptions — флаги, общие для всех команд.
type GlobalOptions struct {
	DBPath  string
	APIURL  string
	JSON    bool
	Verbose bool
}

// FavoritesService — избранное плюс ожидание фоновых запросов снимков перед выходом.
type FavoritesService interface {
	ports.FavoritesService
	Wait()
}

// Env — зависимости команды.
type Env struct {
	Favorites FavoritesService
	Catalog   ports.CatalogService
}

// Opener — собирает Env; возвращаемая функция освобождает ресурсы.
type Opener func(ctx context.Context, opts *GlobalOptions) (*Env, func(), error)

// NewRootCommand — корневая команда. open == nil — DefaultOpener.
func NewRootCommand(version string, open Opener) *cobra.Command {
	if open == nil {
		open = DefaultOpener
	}
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokedex - favorites and catalog from the terminal",
		Long:          "Pokedex keeps a local list of favorite Pokemon with offline snapshots and browses PokeAPI.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite database file (default from POKEDEX_STORAGE_SQLITE_PATH)")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", "", "PokeAPI base URL (default from POKEDEX_POKEAPI_BASE_URL)")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose logging to stderr")

	r := &runner{opts: opts, open: open}
	cmd.AddCommand(
		newFavoritesCommand(r),
		newShowCommand(r),
		newSearchCommand(r),
		newRegionsCommand(r),
		newRegionCommand(r),
		newTypesCommand(r),
	)

	return cmd
}

// runner — открывает Env на время одной команды.
type runner struct {
	opts *GlobalOptions
	open Opener
}

func (r *runner) withEnv(fn func(cmd *cobra.Command, args []string, env *Env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := ctxmeta.WithSource(cmd.Context(), ctxmeta.SourceCLI)
		cmd.SetContext(ctx)

		env, cleanup, err := r.open(ctx, r.opts)
		if err != nil {
			return err
		}
		defer cleanup()

		return fn(cmd, args, env)
	}
}

// DefaultOpener — конфигурация из окружения, флаги --db/--api поверх неё.
func DefaultOpener(ctx context.Context, opts *GlobalOptions) (*Env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.DBPath != "" {
		cfg.Storage.Driver = config.StorageSQLite
		cfg.Storage.SQLitePath = opts.DBPath
	}
	if opts.APIURL != "" {
		cfg.PokeAPI.BaseURL = opts.APIURL
	}

	level := cfg.Logger.Level
	if level == "" {
		level = cliLogLevel
	}
	if opts.Verbose {
		level = "debug"
	}
	logg, syncLogger, err := logger.NewZapLogger(false, level)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	kv, closeKV, err := app.OpenKVStore(ctx, &cfg, logg)
	if err != nil {
		_ = syncLogger()
		return nil, nil, err
	}

	svc := app.NewServices(ctx, &cfg, kv, logg)
	cleanup := func() {
		_ = svc.Favorites.Close()
		closeKV()
		_ = syncLogger()
	}

	return &Env{Favorites: svc.Favorites, Catalog: svc.Catalog}, cleanup, nil
}

// newValidator — проверка файлов импорта/валидации.
func newValidator() ports.PokemonValidator { return validate.NewPokemonValidator() }
