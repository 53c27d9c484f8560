package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"sladrehank/internal/engine"
	"sladrehank/internal/models"
)

// EmptyViewWarning is returned alongside empty subsets. It is scoped to the
// single affected view; other views render independently.
const EmptyViewWarning = "No data found for this view."

// InsightGenerator produces the insight text for a view. Implementations
// never fail; failure paths come back as human-readable text.
type InsightGenerator interface {
	Generate(ctx context.Context, view models.View, apiKey string) string
}

// Handler serves the dashboard page and its JSON API.
type Handler struct {
	store    *engine.Store
	insights InsightGenerator
	apiKey   string // server-side Gemini key; empty when the page supplies one
}

func NewHandler(store *engine.Store, insights InsightGenerator, apiKey string) *Handler {
	return &Handler{store: store, insights: insights, apiKey: apiKey}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/table", h.GetTable)
	api.GET("/views/:name", h.GetView)
	api.GET("/charts/:name", h.GetChart)
	api.POST("/insights/:name", h.GetInsight)
}

// --- HANDLERS ---

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetTable returns the full unpivoted table (the raw-data view).
func (h *Handler) GetTable(c echo.Context) error {
	table, err := h.store.Table(c.Request().Context())
	if err != nil {
		return fetchError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  table,
		"total": len(table),
	})
}

// GetView returns one named subset. An empty subset is a 200 with a
// warning, not an error.
func (h *Handler) GetView(c echo.Context) error {
	view, ok := h.buildView(c)
	if !ok {
		return nil
	}
	resp := map[string]any{"view": view}
	if view.Empty() {
		resp["warning"] = EmptyViewWarning
	}
	return c.JSON(http.StatusOK, resp)
}

// GetChart returns the line chart config for one view.
func (h *Handler) GetChart(c echo.Context) error {
	view, ok := h.buildView(c)
	if !ok {
		return nil
	}
	chart := engine.BuildChart(view)
	if chart == nil {
		return c.JSON(http.StatusOK, map[string]any{"warning": EmptyViewWarning})
	}
	return c.JSON(http.StatusOK, map[string]any{"chart": chart})
}

// GetInsight returns generated insight text for one view. The credential
// comes from the X-Gemini-Key header when the page supplies one, else from
// server configuration. The response is always a human-readable string;
// insight failures never affect chart endpoints.
func (h *Handler) GetInsight(c echo.Context) error {
	view, ok := h.buildView(c)
	if !ok {
		return nil
	}

	apiKey := c.Request().Header.Get("X-Gemini-Key")
	if apiKey == "" {
		apiKey = h.apiKey
	}

	text := h.insights.Generate(c.Request().Context(), view, apiKey)
	return c.JSON(http.StatusOK, map[string]string{"insight": text})
}

// buildView resolves the :name parameter against the cached table. When it
// returns false, the error response has already been written.
func (h *Handler) buildView(c echo.Context) (models.View, bool) {
	table, err := h.store.Table(c.Request().Context())
	if err != nil {
		_ = fetchError(c, err)
		return models.View{}, false
	}
	view, err := engine.BuildView(table, c.Param("name"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		return models.View{}, false
	}
	return view, true
}

// fetchError reports an upstream fetch or transform failure. It halts the
// requesting view; the page shows it as a page-level error.
func fetchError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, map[string]string{
		"error": "could not load data from SSB: " + err.Error(),
	})
}
