package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/metrics"
)

// Проверка, что Client удовлетворяет интерфейсу PokeAPI.
var _ ports.PokeAPI = (*Client)(nil)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// listLimit — региональные и типовые списки короче, пагинация не нужна.
const listLimit = 100

var (
	ErrNotFound    = fmt.Errorf("pokeapi: %w", domain.ErrNotFound)
	ErrUnavailable = fmt.Errorf("pokeapi: %w", domain.ErrUnavailable)
	ErrBadStatus   = errors.New("pokeapi: bad status")
)

// Config — параметры клиента.
type Config struct {
	BaseURL string
	Timeout time.Duration
	RPS     float64 // <= 0 — без ограничения
	Burst   int
}

// Client — типизированный клиент PokeAPI.
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	validator ports.PokemonValidator
}

// NewClient — клиент с otelhttp-транспортом и ограничением частоты запросов.
func NewClient(cfg Config, validator ports.PokemonValidator) *Client {
	baseURL := DefaultBaseURL
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter:   rate.NewLimiter(limit, burst),
		validator: validator,
	}
}

// Pokemon — /pokemon/{nameOrId}; ответ проверяется валидатором.
func (c *Client) Pokemon(ctx context.Context, nameOrID string) (*domain.PokemonDetail, error) {
	key := domain.NormalizeName(nameOrID)
	if key == "" {
		return nil, domain.ErrEmptyQuery
	}
	var p domain.PokemonDetail
	if err := c.getJSON(ctx, "pokemon", "/pokemon/"+url.PathEscape(key), &p); err != nil {
		return nil, err
	}
	if err := c.validator.Validate(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Species — /pokemon-species/{nameOrId}.
func (c *Client) Species(ctx context.Context, nameOrID string) (*domain.Species, error) {
	key := domain.NormalizeName(nameOrID)
	if key == "" {
		return nil, domain.ErrEmptyQuery
	}
	var s domain.Species
	if err := c.getJSON(ctx, "species", "/pokemon-species/"+url.PathEscape(key), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// EvolutionChain — /evolution-chain/{id}.
func (c *Client) EvolutionChain(ctx context.Context, id int) (*domain.EvolutionChain, error) {
	var ch domain.EvolutionChain
	if err := c.getJSON(ctx, "evolution-chain", "/evolution-chain/"+strconv.Itoa(id), &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// Pokedex — /pokedex/{id}.
func (c *Client) Pokedex(ctx context.Context, id int) (*domain.Pokedex, error) {
	var dex domain.Pokedex
	if err := c.getJSON(ctx, "pokedex", "/pokedex/"+strconv.Itoa(id), &dex); err != nil {
		return nil, err
	}
	return &dex, nil
}

// Regions — /region.
func (c *Client) Regions(ctx context.Context) ([]domain.NamedResource, error) {
	return c.list(ctx, "region")
}

// Types — /type.
func (c *Client) Types(ctx context.Context) ([]domain.NamedResource, error) {
	return c.list(ctx, "type")
}

func (c *Client) list(ctx context.Context, resource string) ([]domain.NamedResource, error) {
	var l domain.NamedResourceList
	if err := c.getJSON(ctx, resource, "/"+resource+"?limit="+strconv.Itoa(listLimit), &l); err != nil {
		return nil, err
	}
	if l.Results == nil {
		l.Results = []domain.NamedResource{}
	}
	return l.Results, nil
}

// getJSON — GET с ограничением частоты, метриками и разбором статуса.
func (c *Client) getJSON(ctx context.Context, resource, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.PokeAPIDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PokeAPIRequests.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.PokeAPIRequests.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", resource, err)
	}
	return nil
}
