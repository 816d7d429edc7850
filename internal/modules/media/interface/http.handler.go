package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"festProApi/internal/modules/media/application/port"
	"festProApi/internal/modules/media/application/usecase"
	"festProApi/internal/modules/media/domain"
	"festProApi/internal/shared/httputil"
)

type uploadImageRequest struct {
	Image string `json:"image"`
}

type uploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// MediaHandler exposes the image upload proxy.
type MediaHandler struct {
	uc     *usecase.UploadUseCase
	mapper *httputil.ErrorMapper
}

func NewMediaHandler(uc *usecase.UploadUseCase) *MediaHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrInvalidImage, http.StatusBadRequest, "upload_error", "").
		WithMapping(port.ErrUploadFailed, http.StatusInternalServerError, "upload_error", "image upload failed")
	return &MediaHandler{uc: uc, mapper: mapper}
}

// Register wires the upload route onto the API group. The guard middleware,
// when non-nil, protects the route.
func (h *MediaHandler) Register(g *echo.Group, guard echo.MiddlewareFunc) {
	if guard != nil {
		g.POST("/upload-image", h.upload, guard)
		return
	}
	g.POST("/upload-image", h.upload)
}

func (h *MediaHandler) upload(c echo.Context) error {
	var req uploadImageRequest
	if err := c.Bind(&req); err != nil {
		slog.Warn("image upload: malformed body", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, httputil.ErrorBody{Kind: "upload_error", Message: "invalid request body"})
	}

	url, err := h.uc.Upload(c.Request().Context(), req.Image)
	if err != nil {
		return h.fail(c, "image upload failed", err)
	}
	return c.JSON(http.StatusOK, uploadImageResponse{ImageURL: url})
}

func (h *MediaHandler) fail(c echo.Context, msg string, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error(msg, slog.String("path", c.Path()), slog.Any("error", err))
	} else {
		slog.Warn(msg, slog.String("path", c.Path()), slog.Any("error", err))
	}
	return c.JSON(info.Status, info.Body)
}
