package infrastructure

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"festProApi/internal/modules/media/application/port"
	"festProApi/internal/modules/media/domain"
)

// CloudinaryConfig carries the asset host account and the upload directives
// applied to every image.
type CloudinaryConfig struct {
	BaseURL        string
	CloudName      string
	APIKey         string
	APISecret      string
	Folder         string
	Transformation string
	Timeout        time.Duration
}

// CloudinaryClient implements AssetHost against the Cloudinary upload API.
type CloudinaryClient struct {
	rest *RESTClient
	cfg  CloudinaryConfig
	now  func() time.Time
}

func NewCloudinaryClient(cfg CloudinaryConfig, client *http.Client) *CloudinaryClient {
	if strings.TrimSpace(cfg.Folder) == "" {
		cfg.Folder = "fest"
	}
	if strings.TrimSpace(cfg.Transformation) == "" {
		cfg.Transformation = "w_1200,q_auto"
	}
	return &CloudinaryClient{
		rest: NewRESTClient(cfg.BaseURL, cfg.Timeout, client),
		cfg:  cfg,
		now:  time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Upload posts the data URI to {base}/{cloud}/image/upload as a signed
// multipart request and returns the hosted URL.
func (c *CloudinaryClient) Upload(ctx context.Context, image domain.Image) (string, error) {
	params := map[string]string{
		"timestamp":      strconv.FormatInt(c.now().Unix(), 10),
		"folder":         c.cfg.Folder,
		"transformation": c.cfg.Transformation,
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range params {
		if err := form.WriteField(key, value); err != nil {
			return "", fmt.Errorf("%w: build form: %v", port.ErrUploadFailed, err)
		}
	}
	if err := form.WriteField("api_key", c.cfg.APIKey); err != nil {
		return "", fmt.Errorf("%w: build form: %v", port.ErrUploadFailed, err)
	}
	if err := form.WriteField("signature", signParams(params, c.cfg.APISecret)); err != nil {
		return "", fmt.Errorf("%w: build form: %v", port.ErrUploadFailed, err)
	}
	if err := form.WriteField("file", image.Raw); err != nil {
		return "", fmt.Errorf("%w: build form: %v", port.ErrUploadFailed, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: build form: %v", port.ErrUploadFailed, err)
	}

	endpoint := fmt.Sprintf("/%s/image/upload", c.cfg.CloudName)
	req, err := c.rest.NewRequest(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", port.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("asset upload request error", slog.String("endpoint", endpoint), slog.Any("error", err))
		return "", fmt.Errorf("%w: %v", port.ErrUploadFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("asset upload unexpected status",
			slog.Int("status", res.StatusCode),
			slog.String("body", strings.TrimSpace(string(body))))
		return "", fmt.Errorf("%w: unexpected status %d", port.ErrUploadFailed, res.StatusCode)
	}

	var payload uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", port.ErrUploadFailed, err)
	}
	url := payload.SecureURL
	if url == "" {
		url = payload.URL
	}
	if url == "" {
		return "", fmt.Errorf("%w: response carried no asset url", port.ErrUploadFailed)
	}
	return url, nil
}

// signParams builds the request signature: the parameters sorted by key,
// joined as a query string, with the API secret appended, SHA-1 hex encoded.
// The file and api_key fields stay out of the signature.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

var _ port.AssetHost = (*CloudinaryClient)(nil)
