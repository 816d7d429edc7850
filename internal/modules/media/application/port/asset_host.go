package port

import (
	"context"
	"errors"

	"festProApi/internal/modules/media/domain"
)

// ErrUploadFailed marks asset host failures. The caller maps it to a 5xx.
var ErrUploadFailed = errors.New("asset upload failed")

// AssetHost stores an image on the external asset service and returns the
// public URL to persist.
type AssetHost interface {
	Upload(ctx context.Context, image domain.Image) (string, error)
}
