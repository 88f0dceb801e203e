package remotejob

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
)

const (
	requestTimeout   = 30 * time.Second
	defaultMockDelay = 2 * time.Second
)

// Endpoint describes the shape of one remote generation service. The
// two vendors differ only in paths, field names, and poll cadence.
type Endpoint struct {
	Name          string
	BaseURL       string
	SubmitPath    string
	StatusPath    string // printf template taking the job id
	JobIDField    string
	DownloadField string
	PollInterval  time.Duration
	Timeout       time.Duration
	MockDelay     time.Duration
}

// PayloadFunc builds the vendor-specific submission body for a script.
type PayloadFunc func(text string) interface{}

type implClient struct {
	endpoint Endpoint
	payload  PayloadFunc
	apiKey   string
	mock     bool
	http     *resty.Client
	logger   logger.Logger
}

// New creates a Generator for one service endpoint.
func New(endpoint Endpoint, payload PayloadFunc, apiKey string, mock bool, log logger.Logger) Generator {
	if endpoint.MockDelay == 0 {
		endpoint.MockDelay = defaultMockDelay
	}

	client := resty.New().
		SetBaseURL(endpoint.BaseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(requestTimeout)

	return &implClient{
		endpoint: endpoint,
		payload:  payload,
		apiKey:   apiKey,
		mock:     mock,
		http:     client,
		logger:   log,
	}
}

// NewVideo configures the video generation service client.
func NewVideo(cfg *config.Config, log logger.Logger) Generator {
	svc := cfg.VideoService
	endpoint := Endpoint{
		Name:          "video service",
		BaseURL:       svc.BaseURL,
		SubmitPath:    "/video/create",
		StatusPath:    "/video/status/%s",
		JobIDField:    "jobId",
		DownloadField: "videoUrl",
		PollInterval:  time.Duration(svc.PollIntervalSeconds) * time.Second,
		Timeout:       time.Duration(svc.TimeoutSeconds) * time.Second,
	}

	payload := func(text string) interface{} {
		return videoPayload{
			VideoName:   "Automated lecture video",
			VideoType:   "script",
			Script:      text,
			AspectRatio: "16:9",
			Language:    svc.Language,
			VoiceOver: voiceOver{
				Enabled: true,
				Voice:   svc.Voice,
			},
			AutoHighlights: true,
			AutoBranding:   true,
		}
	}

	return New(endpoint, payload, cfg.Credentials.VideoAPIKey, cfg.Credentials.MockExternal, log)
}

// NewSlides configures the slide-deck generation service client.
func NewSlides(cfg *config.Config, log logger.Logger) Generator {
	svc := cfg.SlideService
	endpoint := Endpoint{
		Name:          "slide service",
		BaseURL:       svc.BaseURL,
		SubmitPath:    "/presentations",
		StatusPath:    "/presentations/%s",
		JobIDField:    "id",
		DownloadField: "download_url",
		PollInterval:  time.Duration(svc.PollIntervalSeconds) * time.Second,
		Timeout:       time.Duration(svc.TimeoutSeconds) * time.Second,
	}

	payload := func(text string) interface{} {
		return slidesPayload{
			Title:    "Automated summary deck",
			Language: svc.Language,
			Content:  text,
			Slides:   slideBounds{Min: 5, Max: 15},
			Style:    svc.Style,
		}
	}

	return New(endpoint, payload, cfg.Credentials.SlideAPIKey, cfg.Credentials.MockExternal, log)
}

func (c *implClient) Name() string {
	return c.endpoint.Name
}

func (c *implClient) statusURL(jobID string) string {
	return fmt.Sprintf(c.endpoint.StatusPath, jobID)
}
