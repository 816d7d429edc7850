package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"festProApi/internal/modules/media/application/port"
	"festProApi/internal/modules/media/domain"
)

// UploadUseCase proxies inline images to the asset host.
type UploadUseCase struct {
	host port.AssetHost
}

func NewUploadUseCase(host port.AssetHost) *UploadUseCase {
	return &UploadUseCase{host: host}
}

// Upload validates the submitted data URI and forwards it to the asset host.
// One synchronous round trip, no retries.
func (uc *UploadUseCase) Upload(ctx context.Context, raw string) (string, error) {
	image, err := domain.ParseDataURI(raw)
	if err != nil {
		return "", err
	}

	url, err := uc.host.Upload(ctx, image)
	if err != nil {
		if errors.Is(err, port.ErrUploadFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", port.ErrUploadFailed, err)
	}

	slog.Info("image uploaded",
		slog.String("content_type", image.ContentType),
		slog.Int("size", image.Size),
		slog.String("url", url))
	return url, nil
}
