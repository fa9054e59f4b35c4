package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Scene defaults match the stock animation
	if cfg.Scene.FOVDegrees != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Scene.FOVDegrees)
	}
	if cfg.Scene.Near != 0.1 || cfg.Scene.Far != 100 {
		t.Errorf("expected clip planes 0.1/100, got %v/%v", cfg.Scene.Near, cfg.Scene.Far)
	}
	if cfg.Scene.Distance != -12 {
		t.Errorf("expected distance -12, got %v", cfg.Scene.Distance)
	}
	if cfg.Scene.BounceStep != [2]float64{0.02, 0.02} {
		t.Errorf("expected bounce step 0.02, got %v", cfg.Scene.BounceStep)
	}
	if cfg.Scene.BounceBounds != [2]float64{8.5, 3.5} {
		t.Errorf("expected bounce bounds (8.5, 3.5), got %v", cfg.Scene.BounceBounds)
	}
	if cfg.Scene.RotationRates != [3]float32{0.3, 0.7, 0} {
		t.Errorf("expected rotation rates (0.3, 0.7, 0), got %v", cfg.Scene.RotationRates)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSceneSettings(t *testing.T) {
	cfg := Default()
	cfg.Scene.BounceStep = [2]float64{0.05, 0.01}
	cfg.Scene.RotationRates = [3]float32{1, 2, 3}

	sc := cfg.SceneSettings()
	if sc.StepX != 0.05 || sc.StepY != 0.01 {
		t.Errorf("steps = (%v, %v), want (0.05, 0.01)", sc.StepX, sc.StepY)
	}
	if sc.BoundX != 8.5 || sc.BoundY != 3.5 {
		t.Errorf("bounds = (%v, %v), want (8.5, 3.5)", sc.BoundX, sc.BoundY)
	}
	if sc.Rates.X != 1 || sc.Rates.Y != 2 || sc.Rates.Z != 3 {
		t.Errorf("rates = %+v, want {1 2 3}", sc.Rates)
	}
	if sc.Camera.Distance != -12 || sc.Camera.FOVDegrees != 45 {
		t.Errorf("camera = %+v", sc.Camera)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"fov too wide", func(c *Config) { c.Scene.FOVDegrees = 180 }, "fov_degrees"},
		{"near behind camera", func(c *Config) { c.Scene.Near = 0 }, "clip planes"},
		{"far before near", func(c *Config) { c.Scene.Far = 0.05 }, "clip planes"},
		{"negative step", func(c *Config) { c.Scene.BounceStep[1] = -0.02 }, "bounce_step y"},
		{"zero bound", func(c *Config) { c.Scene.BounceBounds[0] = 0 }, "bounce_bounds x"},
		{"unknown screenshot format", func(c *Config) { c.Debug.ScreenshotFormat = "gif" }, "screenshot format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = -1
	cfg.Scene.BounceStep = [2]float64{0, 0}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"window", "bounce_step x", "bounce_step y"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "Cube"
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  fov_degrees: 60
  distance: -20
  bounce_step: [0.04, 0.01]
  bounce_bounds: [10, 5]
  rotation_rates: [0.3, 0.7, 0.2]

logging:
  level: "debug"
  log_file: "cube.log"

debug:
  screenshot_dir: "/tmp/shots"
  log_fps: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "Cube" {
		t.Errorf("expected title Cube, got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Scene.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Scene.FOVDegrees)
	}
	if cfg.Scene.Distance != -20 {
		t.Errorf("expected distance -20, got %v", cfg.Scene.Distance)
	}
	// Keys absent from the file keep their defaults
	if cfg.Scene.Near != 0.1 {
		t.Errorf("expected near 0.1 to survive, got %v", cfg.Scene.Near)
	}
	if cfg.Scene.BounceStep != [2]float64{0.04, 0.01} {
		t.Errorf("expected bounce step [0.04 0.01], got %v", cfg.Scene.BounceStep)
	}
	if cfg.Scene.BounceBounds != [2]float64{10, 5} {
		t.Errorf("expected bounce bounds [10 5], got %v", cfg.Scene.BounceBounds)
	}
	if cfg.Scene.RotationRates[2] != 0.2 {
		t.Errorf("expected z rate 0.2, got %v", cfg.Scene.RotationRates[2])
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cube.log" {
		t.Errorf("expected log file 'cube.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Debug.ScreenshotDir != "/tmp/shots" || !cfg.Debug.LogFPS {
		t.Errorf("unexpected debug config %+v", cfg.Debug)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Fatal("expected error loading invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "invalid.yaml") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 800
	cfg.Scene.BounceBounds = [2]float64{4, 2}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", loaded.Window.Width)
	}
	if loaded.Scene.BounceBounds != [2]float64{4, 2} {
		t.Errorf("expected bounds [4 2], got %v", loaded.Scene.BounceBounds)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Dir(DefaultPath()) != dir {
		t.Errorf("DefaultPath %s is not inside %s", DefaultPath(), dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.LogFPS {
					t.Error("expected log_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  near: 200\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject near plane beyond far plane")
	}
}
