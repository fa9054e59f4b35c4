// Package app wires the desktop demo together and runs its main loop.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/bouncecube/internal/config"
	"github.com/Faultbox/bouncecube/internal/engine/debug"
	"github.com/Faultbox/bouncecube/internal/engine/gldevice"
	"github.com/Faultbox/bouncecube/internal/engine/input"
	"github.com/Faultbox/bouncecube/internal/engine/shader"
	"github.com/Faultbox/bouncecube/internal/engine/window"
	"github.com/Faultbox/bouncecube/internal/frame"
	"github.com/Faultbox/bouncecube/internal/logger"
	"github.com/Faultbox/bouncecube/internal/mesh"
	"github.com/Faultbox/bouncecube/internal/scene"
	"github.com/Faultbox/bouncecube/internal/scene/shaders"
)

// App is the desktop demo instance.
type App struct {
	cfg         *config.Config
	window      *window.Window
	device      *gldevice.Device
	program     scene.ProgramInfo
	renderer    *scene.Renderer
	driver      *frame.Driver
	input       *input.Input
	screenshots *debug.ScreenshotCapture

	screenshotPending bool
}

// New opens the window, builds the GPU resources and prepares the renderer.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing demo",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{cfg: cfg}

	// Window first: it also creates the OpenGL context
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := a.initGraphics(); err != nil {
		a.Close()
		return nil, err
	}

	a.driver = frame.NewDriver(a.renderer, cfg.Debug.LogFPS)
	a.input = input.New()
	format, err := debug.ParseFormat(cfg.Debug.ScreenshotFormat)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.screenshots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "cube", format)

	logger.Info("demo initialized successfully")
	return a, nil
}

func (a *App) initGraphics() error {
	var err error
	a.device, err = gldevice.New()
	if err != nil {
		return err
	}

	a.program, err = shader.Build(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to build cube shader: %w", err)
	}
	logger.Debug("cube program linked",
		zap.Uint32("program", uint32(a.program.Program)),
		zap.Any("attribs", a.program.Attribs),
		zap.Any("uniforms", a.program.Uniforms),
	)

	buffers, err := a.device.UploadMesh(mesh.Cube())
	if err != nil {
		return fmt.Errorf("failed to upload cube: %w", err)
	}

	a.renderer = scene.NewRenderer(a.cfg.SceneSettings(), a.device, a.window, a.program, buffers)
	return nil
}

// Run drives frames until the window is closed, Escape is pressed or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting render loop")

	err := frame.Run(ctx, frame.NewClock(), a.driver, frame.Hooks{
		BeforeTick: a.pollInput,
		AfterTick:  a.present,
	})

	s := a.driver.Stats()
	logger.Info("render loop stopped",
		zap.Uint64("frames", s.Frames),
		zap.Float64("rotation", s.Rotation),
	)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput handles window events and reports whether to quit.
func (a *App) pollInput() bool {
	quit := a.input.Update()

	for _, ev := range a.input.Events() {
		if ev.Type == input.EventWindowResize {
			logger.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		}
	}
	if a.input.Requested(input.ActionScreenshot) {
		a.screenshotPending = true
	}

	return quit
}

// present saves a pending screenshot from the back buffer, then swaps.
func (a *App) present() {
	if a.screenshotPending {
		a.screenshotPending = false
		a.captureScreenshot()
	}
	a.window.SwapBuffers()
}

func (a *App) captureScreenshot() {
	w, h := a.window.Size()
	pixels := a.device.ReadPixels(w, h)

	path, err := a.screenshots.CaptureFromPixels(pixels, w, h, a.driver.Stats().Frames)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window in reverse creation order.
func (a *App) Close() {
	logger.Info("closing demo")

	if a.device != nil {
		if a.program.Program != 0 {
			a.device.DeleteProgram(a.program.Program)
		}
		a.device.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
