package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"festProApi/internal/modules/menu/application/port"
	"festProApi/internal/modules/menu/application/usecase"
	"festProApi/internal/modules/menu/domain"
	"festProApi/internal/shared/httputil"
)

// createMenuItemRequest is the shape accepted by POST /api/menu. Prix is a
// pointer so a missing or non-numeric price is distinguishable from zero.
type createMenuItemRequest struct {
	Nom         string   `json:"nom"`
	Description string   `json:"description"`
	Prix        *float64 `json:"prix"`
	Categorie   string   `json:"categorie"`
	Disponible  *bool    `json:"disponible"`
	ImageURL    string   `json:"image_url"`
}

type deleteMenuItemResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MenuHandler exposes the menu item CRUD endpoints.
type MenuHandler struct {
	uc     *usecase.MenuUseCase
	mapper *httputil.ErrorMapper
}

func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrValidation, http.StatusBadRequest, "validation_error", "").
		WithMapping(domain.ErrNotFound, http.StatusNotFound, "not_found", "menu item not found").
		WithMapping(port.ErrStore, http.StatusInternalServerError, "store_error", "menu store unavailable")
	return &MenuHandler{uc: uc, mapper: mapper}
}

// Register wires the menu routes onto the API group. The guard middleware,
// when non-nil, protects the mutating routes.
func (h *MenuHandler) Register(g *echo.Group, guard echo.MiddlewareFunc) {
	writes := []echo.MiddlewareFunc{}
	if guard != nil {
		writes = append(writes, guard)
	}
	g.GET("/menu", h.list)
	g.POST("/menu", h.create, writes...)
	g.PUT("/menu/:id", h.update, writes...)
	g.DELETE("/menu/:id", h.delete, writes...)
}

func (h *MenuHandler) list(c echo.Context) error {
	onlyAvailable := false
	switch strings.ToLower(strings.TrimSpace(c.QueryParam("available"))) {
	case "true", "1":
		onlyAvailable = true
	}

	items, err := h.uc.List(c.Request().Context(), onlyAvailable)
	if err != nil {
		return h.fail(c, "menu list failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		slog.Warn("menu create: malformed body", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, httputil.ErrorBody{Kind: "validation_error", Message: "invalid request body"})
	}
	if req.Prix == nil {
		return c.JSON(http.StatusBadRequest, httputil.ErrorBody{Kind: "validation_error", Message: "prix is required and must be numeric"})
	}

	item := domain.MenuItem{
		Nom:         req.Nom,
		Description: req.Description,
		Prix:        *req.Prix,
		Categorie:   req.Categorie,
		Disponible:  true,
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if req.Disponible != nil {
		item.Disponible = *req.Disponible
	}

	created, err := h.uc.Create(c.Request().Context(), item)
	if err != nil {
		return h.fail(c, "menu create failed", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *MenuHandler) update(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))

	var patch domain.Patch
	if err := c.Bind(&patch); err != nil {
		slog.Warn("menu update: malformed body", slog.String("id", id), slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, httputil.ErrorBody{Kind: "validation_error", Message: "invalid request body"})
	}

	updated, err := h.uc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, "menu update failed", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *MenuHandler) delete(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "menu delete failed", err)
	}
	return c.JSON(http.StatusOK, deleteMenuItemResponse{Message: "menu item deleted", ID: id})
}

func (h *MenuHandler) fail(c echo.Context, msg string, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error(msg, slog.String("path", c.Path()), slog.Any("error", err))
	} else {
		slog.Warn(msg, slog.String("path", c.Path()), slog.Any("error", err))
	}
	return c.JSON(info.Status, info.Body)
}
