package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Uploads: "data/uploads",
					Results: "data/results",
				},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Uploads: "data/uploads",
					Results: "data/results",
				},
			},
			wantErr: true,
		},
		{
			name: "missing binary path",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath: "models/test.bin",
				},
				Paths: PathsConfig{
					Uploads: "data/uploads",
					Results: "data/results",
				},
			},
			wantErr: true,
		},
		{
			name: "missing results path",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Uploads: "data/uploads",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/test.bin",
			BinaryPath: "./whisper",
		},
		Paths: PathsConfig{
			Uploads: "data/uploads",
			Results: "data/results",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Language != "auto" {
		t.Errorf("whisper.language default = %q, want auto", cfg.Whisper.Language)
	}
	if cfg.FFmpeg.TargetWidth != 1280 || cfg.FFmpeg.TargetHeight != 720 {
		t.Errorf("ffmpeg target defaults = %dx%d, want 1280x720", cfg.FFmpeg.TargetWidth, cfg.FFmpeg.TargetHeight)
	}
	if cfg.VideoService.PollIntervalSeconds != 10 {
		t.Errorf("video poll interval default = %d, want 10", cfg.VideoService.PollIntervalSeconds)
	}
	if cfg.SlideService.PollIntervalSeconds != 5 {
		t.Errorf("slide poll interval default = %d, want 5", cfg.SlideService.PollIntervalSeconds)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("max_concurrent default = %d, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("PICTORY_API_KEY", "pictory-key")
	t.Setenv("PPTAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "key-a, key-b")
	t.Setenv("USE_MOCK_APIS", "TRUE")

	creds := loadCredentials()

	if creds.VideoAPIKey != "pictory-key" {
		t.Errorf("VideoAPIKey = %q", creds.VideoAPIKey)
	}
	if creds.SlideAPIKey != "" {
		t.Errorf("SlideAPIKey = %q, want empty", creds.SlideAPIKey)
	}
	if len(creds.GeminiAPIKeys) != 2 || creds.GeminiAPIKeys[1] != "key-b" {
		t.Errorf("GeminiAPIKeys = %v", creds.GeminiAPIKeys)
	}
	if !creds.MockExternal {
		t.Error("MockExternal = false, want true")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
paths:
  uploads: "data/uploads"
  results: "data/results"
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server.port default = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}
