package infrastructure

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festProApi/internal/modules/media/application/port"
	"festProApi/internal/modules/media/domain"
)

func testImage(t *testing.T) domain.Image {
	t.Helper()
	img, err := domain.ParseDataURI("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("test image: %v", err)
	}
	return img
}

func newClient(baseURL string) *CloudinaryClient {
	client := NewCloudinaryClient(CloudinaryConfig{
		BaseURL:   baseURL,
		CloudName: "fest-cloud",
		APIKey:    "key123",
		APISecret: "secret456",
		Timeout:   2 * time.Second,
	}, nil)
	client.now = func() time.Time { return time.Unix(1700000000, 0) }
	return client
}

func TestUploadSendsSignedMultipartRequest(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotForm = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			gotForm[key] = values[0]
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://assets.example/fest/photo.png"}`))
	}))
	defer server.Close()

	url, err := newClient(server.URL).Upload(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://assets.example/fest/photo.png" {
		t.Fatalf("unexpected url %q", url)
	}
	if gotPath != "/fest-cloud/image/upload" {
		t.Fatalf("unexpected upload path %q", gotPath)
	}
	if gotForm["file"] != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("file field must carry the data URI, got %q", gotForm["file"])
	}
	if gotForm["folder"] != "fest" || gotForm["transformation"] != "w_1200,q_auto" {
		t.Fatalf("missing upload directives: %v", gotForm)
	}
	if gotForm["api_key"] != "key123" {
		t.Fatalf("missing api key: %v", gotForm)
	}

	signed := "folder=fest&timestamp=1700000000&transformation=w_1200,q_auto" + "secret456"
	sum := sha1.Sum([]byte(signed))
	if gotForm["signature"] != hex.EncodeToString(sum[:]) {
		t.Fatalf("signature mismatch: got %q", gotForm["signature"])
	}
}

func TestUploadMapsErrorStatusToUploadFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid Signature"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newClient(server.URL).Upload(context.Background(), testImage(t))
	if !errors.Is(err, port.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}

func TestUploadMapsTransportErrorToUploadFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newClient(server.URL).Upload(context.Background(), testImage(t))
	if !errors.Is(err, port.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}

func TestUploadRejectsResponseWithoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).Upload(context.Background(), testImage(t))
	if !errors.Is(err, port.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}
