//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/Faultbox/bouncecube/internal/frame"
)

// RunAnimationFrames ticks t from requestAnimationFrame, converting the
// millisecond timestamp to seconds. It never returns.
func RunAnimationFrames(t frame.Ticker) {
	var render js.Func
	render = js.FuncOf(func(this js.Value, args []js.Value) any {
		t.Tick(args[0].Float() * 0.001)
		js.Global().Call("requestAnimationFrame", render)
		return nil
	})
	js.Global().Call("requestAnimationFrame", render)

	select {}
}
