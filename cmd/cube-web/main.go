//go:build js && wasm

// Package main is the browser build of the cube demo. It expects a
// <canvas id="glcanvas"> on the page.
package main

import (
	"errors"
	"os"
	"syscall/js"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/bouncecube/internal/engine/webgl"
	"github.com/Faultbox/bouncecube/internal/frame"
	"github.com/Faultbox/bouncecube/internal/logger"
	"github.com/Faultbox/bouncecube/internal/mesh"
	"github.com/Faultbox/bouncecube/internal/scene"
	"github.com/Faultbox/bouncecube/internal/scene/shaders"
)

func main() {
	// os.Stdout is the browser console under wasm
	logger.InitConsole("info", zapcore.AddSync(os.Stdout))

	device, err := webgl.New("#glcanvas")
	if err != nil {
		if errors.Is(err, webgl.ErrUnavailable) {
			js.Global().Call("alert", err.Error())
		}
		logger.Error("failed to create WebGL device", zap.Error(err))
		return
	}

	// Blank the canvas before anything else is set up
	device.ClearColor(0, 0, 0, 1)
	device.Clear(scene.ClearColorBit)

	program, err := device.BuildProgram(shaders.CubeVertexShaderES, shaders.CubeFragmentShaderES)
	if err != nil {
		js.Global().Call("alert", err.Error())
		logger.Error("failed to build cube shader", zap.Error(err))
		return
	}

	buffers, err := device.UploadMesh(mesh.Cube())
	if err != nil {
		logger.Error("failed to upload cube", zap.Error(err))
		return
	}

	renderer := scene.NewRenderer(scene.DefaultConfig(), device, device, program, buffers)
	driver := frame.NewDriver(renderer, false)

	logger.Info("starting animation")
	webgl.RunAnimationFrames(driver)
}
