package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
	"github.com/edupipe/edupipe/internal/pipeline"
	apperrors "github.com/edupipe/edupipe/pkg/errors"
)

type stubPipeline struct {
	manifest pipeline.Manifest
	err      error
	called   bool
}

func (s *stubPipeline) Run(ctx context.Context, inputPath string) (pipeline.Manifest, error) {
	s.called = true
	return s.manifest, s.err
}

func newTestServer(t *testing.T, pl pipeline.Pipeline) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Whisper: config.WhisperConfig{ModelPath: "m", BinaryPath: "b"},
		Paths: config.PathsConfig{
			Uploads: t.TempDir(),
			Results: t.TempDir(),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	return New(cfg, pl, logger.New("error"))
}

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("file content"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadSuccess(t *testing.T) {
	manifest := pipeline.Manifest{}
	manifest.Set(pipeline.SlotEditedVideo, "run-1/edited_video.mp4")
	manifest.SetAbsent(pipeline.SlotGeneratedVideo)

	stub := &stubPipeline{manifest: manifest}
	srv := newTestServer(t, stub)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, uploadRequest(t, "lecture.mp4"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if !stub.called {
		t.Error("pipeline was not invoked")
	}

	var resp struct {
		Status  string             `json:"status"`
		Results map[string]*string `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
	if p := resp.Results["edited_video"]; p == nil || *p != "run-1/edited_video.mp4" {
		t.Errorf("edited_video = %v", p)
	}
	if p, ok := resp.Results["generated_video"]; !ok || p != nil {
		t.Errorf("generated_video should be an explicit null, got %v (present: %v)", p, ok)
	}
}

func TestUploadUnsupportedExtension(t *testing.T) {
	stub := &stubPipeline{}
	srv := newTestServer(t, stub)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, uploadRequest(t, "song.mp3"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if stub.called {
		t.Error("pipeline must not run for unsupported formats")
	}

	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != apperrors.CodeUnsupportedFormat {
		t.Errorf("error code = %q, want %s", resp.Error, apperrors.CodeUnsupportedFormat)
	}
}

func TestUploadMissingFile(t *testing.T) {
	srv := newTestServer(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadPipelineErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"remote job failed", apperrors.RemoteJobFailed("video service", "boom"), http.StatusBadGateway, apperrors.CodeRemoteJobFailed},
		{"job timeout", apperrors.JobTimeout("slide service", 0), http.StatusGatewayTimeout, apperrors.CodeJobTimeout},
		{"conversion failed", apperrors.ConversionFailed(nil, 1), http.StatusInternalServerError, apperrors.CodeConversionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &stubPipeline{err: tt.err})

			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, uploadRequest(t, "lecture.mp4"))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp apperrors.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubPipeline{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
