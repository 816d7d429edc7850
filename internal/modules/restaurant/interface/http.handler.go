package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"festProApi/internal/modules/restaurant/application/port"
	"festProApi/internal/modules/restaurant/application/usecase"
	"festProApi/internal/shared/httputil"
)

// RestaurantHandler exposes the profile endpoints.
type RestaurantHandler struct {
	uc     *usecase.RestaurantUseCase
	mapper *httputil.ErrorMapper
}

func NewRestaurantHandler(uc *usecase.RestaurantUseCase) *RestaurantHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(port.ErrStore, http.StatusInternalServerError, "store_error", "restaurant store unavailable")
	return &RestaurantHandler{uc: uc, mapper: mapper}
}

// Register wires the restaurant routes onto the API group.
func (h *RestaurantHandler) Register(g *echo.Group, guard echo.MiddlewareFunc) {
	g.GET("/restaurant", h.get)
	if guard != nil {
		g.PUT("/restaurant", h.update, guard)
		return
	}
	g.PUT("/restaurant", h.update)
}

func (h *RestaurantHandler) get(c echo.Context) error {
	restaurant, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return h.fail(c, "restaurant get failed", err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) update(c echo.Context) error {
	// The body is taken as a raw document: historical clients sent the
	// hours/capacity sub-structures with the wrong types, and those shapes
	// are coerced rather than rejected.
	var doc map[string]any
	if err := c.Bind(&doc); err != nil {
		slog.Warn("restaurant update: malformed body", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, httputil.ErrorBody{Kind: "validation_error", Message: "invalid request body"})
	}

	updated, err := h.uc.Update(c.Request().Context(), doc)
	if err != nil {
		return h.fail(c, "restaurant update failed", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *RestaurantHandler) fail(c echo.Context, msg string, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error(msg, slog.String("path", c.Path()), slog.Any("error", err))
	} else {
		slog.Warn(msg, slog.String("path", c.Path()), slog.Any("error", err))
	}
	return c.JSON(info.Status, info.Body)
}
