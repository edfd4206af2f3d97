package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	defaultRegionLimit = 50
	maxRegionLimit     = 1000
)

type Handler struct {
	favorites  ports.FavoritesService
	catalog    ports.CatalogService
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 отключает таймаут на обращения к каталогу.
func NewHandler(
	favorites ports.FavoritesService,
	catalog ports.CatalogService,
	log ports.Logger,
	reqTimeout time.Duration,
) *Handler {
	return &Handler{favorites: favorites, catalog: catalog, log: log, reqTimeout: reqTimeout}
}

// NewRouter — gin-роутер. otelServiceName пустой — без otelgin (трейсинг выключен).
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	fav := r.Group("/favorites")
	fav.GET("", h.listFavorites)
	fav.POST("/reload", h.reloadFavorites)
	fav.GET("/:name", h.getFavorite)
	fav.POST("/:name/toggle", h.toggleFavorite)

	r.GET("/pokemon/:name", h.getPokemon)
	r.GET("/search", h.search)
	r.GET("/regions", h.listRegions)
	r.GET("/regions/:pokedexId/pokemon", h.regionPokemon)
	r.GET("/types", h.listTypes)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

type favoritesResponse struct {
	Favorites []string                   `json:"favorites"`
	Data      map[string]domain.Snapshot `json:"data"`
}

type favoriteResponse struct {
	Name     string           `json:"name"`
	Favorite bool             `json:"favorite"`
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"`
}

func (h *Handler) listFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, favoritesResponse{
		Favorites: h.favorites.Favorites(),
		Data:      h.favorites.FavoritesData(),
	})
}

func (h *Handler) getFavorite(c *gin.Context) {
	name := domain.NormalizeName(c.Param("name"))
	if name == "" {
		httpx.AbortWithError(c, domain.ErrEmptyQuery)
		return
	}

	resp := favoriteResponse{Name: name, Favorite: h.favorites.IsFavorite(name)}
	if s, ok := h.favorites.Snapshot(name); ok {
		resp.Snapshot = &s
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	name := domain.NormalizeName(c.Param("name"))
	if name == "" {
		httpx.AbortWithError(c, domain.ErrEmptyQuery)
		return
	}

	added := h.favorites.ToggleFavorite(c.Request.Context(), name)
	h.log.Infof(c.Request.Context(), "favorite toggled name=%s favorite=%t", name, added)
	c.JSON(http.StatusOK, favoriteResponse{Name: name, Favorite: added})
}

func (h *Handler) reloadFavorites(c *gin.Context) {
	h.favorites.Reload(c.Request.Context())
	c.JSON(http.StatusOK, favoritesResponse{
		Favorites: h.favorites.Favorites(),
		Data:      h.favorites.FavoritesData(),
	})
}

func (h *Handler) getPokemon(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	name := c.Param("name")
	page, err := h.catalog.DetailPage(ctx, name)
	if err != nil {
		h.fail(c, err, "DetailPage failed name=%s", name)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) search(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	q := strings.TrimSpace(c.Query("q"))
	p, err := h.catalog.Search(ctx, q)
	if err != nil {
		h.fail(c, err, "Search failed q=%s", q)
		return
	}

	page := domain.NewDetailPage(p)
	page.Favorite = h.favorites.IsFavorite(p.Name)
	c.JSON(http.StatusOK, page)
}

func (h *Handler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Regions())
}

// regionPokemon — :pokedexId принимает и числовой id, и ключ региона ("kanto").
func (h *Handler) regionPokemon(c *gin.Context) {
	raw := c.Param("pokedexId")
	pokedexID, err := strconv.Atoi(raw)
	if err != nil {
		region, ok := domain.RegionByKey(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region or pokedex id"})
			return
		}
		pokedexID = region.PokedexID
	}
	if pokedexID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pokedex id must be positive"})
		return
	}

	page, err := httpx.ParsePage(c, defaultRegionLimit, maxRegionLimit)
	if err != nil {
		httpx.AbortWithError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	dex, err := h.catalog.RegionPokemon(ctx, pokedexID, page.Limit, page.Offset)
	if err != nil {
		h.fail(c, err, "RegionPokemon failed id=%d", pokedexID)
		return
	}
	c.JSON(http.StatusOK, dex)
}

func (h *Handler) listTypes(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	types, err := h.catalog.Types(ctx)
	if err != nil {
		h.fail(c, err, "Types failed")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// fail — 5xx логируем как ошибку, 4xx как предупреждение.
func (h *Handler) fail(c *gin.Context, err error, format string, args ...any) {
	ctx := c.Request.Context()
	msg := format + " err=%v"
	args = append(args, err)
	if httpx.StatusFromError(err) >= http.StatusInternalServerError {
		h.log.Errorf(ctx, msg, args...)
	} else {
		h.log.Warnf(ctx, msg, args...)
	}
	httpx.AbortWithError(c, err)
}
