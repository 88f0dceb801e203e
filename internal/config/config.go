package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server       ServerConfig      `yaml:"server"`
	Whisper      WhisperConfig     `yaml:"whisper"`
	FFmpeg       FFmpegConfig      `yaml:"ffmpeg"`
	Paths        PathsConfig       `yaml:"paths"`
	Logging      LoggingConfig     `yaml:"logging"`
	Performance  PerformanceConfig `yaml:"performance"`
	VideoService ServiceConfig     `yaml:"video_service"`
	SlideService ServiceConfig     `yaml:"slide_service"`
	Gemini       GeminiConfig      `yaml:"gemini"`

	// Credentials are read from the environment once at Load time and
	// never reloaded for the process lifetime.
	Credentials Credentials `yaml:"-"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	TargetWidth  int `yaml:"target_width"`
	TargetHeight int `yaml:"target_height"`
}

type PathsConfig struct {
	Uploads string `yaml:"uploads"`
	Results string `yaml:"results"`
	Input   string `yaml:"input"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ServiceConfig struct {
	BaseURL             string `yaml:"base_url"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
	Language            string `yaml:"language"`
	Voice               string `yaml:"voice"`
	Style               string `yaml:"style"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

// Credentials holds the per-service API keys and the mock toggle.
// Absence of a key means the corresponding pipeline branch is skipped.
type Credentials struct {
	VideoAPIKey   string
	SlideAPIKey   string
	GeminiAPIKeys []string
	MockExternal  bool
}

// Load reads the YAML config file, applies defaults, and captures the
// external-service credentials from the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Credentials = loadCredentials()
	return &cfg, nil
}

func loadCredentials() Credentials {
	creds := Credentials{
		VideoAPIKey:  os.Getenv("PICTORY_API_KEY"),
		SlideAPIKey:  os.Getenv("PPTAI_API_KEY"),
		MockExternal: strings.EqualFold(os.Getenv("USE_MOCK_APIS"), "true"),
	}

	if keys := os.Getenv("GEMINI_API_KEY"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				creds.GeminiAPIKeys = append(creds.GeminiAPIKeys, k)
			}
		}
	}

	return creds
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Uploads == "" {
		return fmt.Errorf("paths.uploads is required")
	}
	if c.Paths.Results == "" {
		return fmt.Errorf("paths.results is required")
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.TargetWidth == 0 {
		c.FFmpeg.TargetWidth = 1280
	}
	if c.FFmpeg.TargetHeight == 0 {
		c.FFmpeg.TargetHeight = 720
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.VideoService.BaseURL == "" {
		c.VideoService.BaseURL = "https://api.pictory.ai/v1"
	}
	if c.VideoService.PollIntervalSeconds == 0 {
		c.VideoService.PollIntervalSeconds = 10
	}
	if c.VideoService.TimeoutSeconds == 0 {
		c.VideoService.TimeoutSeconds = 600
	}
	if c.VideoService.Language == "" {
		c.VideoService.Language = "es"
	}
	if c.VideoService.Voice == "" {
		c.VideoService.Voice = "es-ES-AlvaroNeural"
	}

	if c.SlideService.BaseURL == "" {
		c.SlideService.BaseURL = "https://api.ppt.ai/v1"
	}
	if c.SlideService.PollIntervalSeconds == 0 {
		c.SlideService.PollIntervalSeconds = 5
	}
	if c.SlideService.TimeoutSeconds == 0 {
		c.SlideService.TimeoutSeconds = 300
	}
	if c.SlideService.Language == "" {
		c.SlideService.Language = "es"
	}
	if c.SlideService.Style == "" {
		c.SlideService.Style = "education"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
