// Package webgl implements the scene device and surface on a browser
// canvas through syscall/js. The byte and location helpers also build
// outside js/wasm.
package webgl

import (
	"encoding/binary"
	"math"
)

// float32Bytes encodes data little-endian, the byte order of typed arrays
// on every WebGL host.
func float32Bytes(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, f := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// uint16Bytes encodes data little-endian.
func uint16Bytes(data []uint16) []byte {
	out := make([]byte, len(data)*2)
	for i, v := range data {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}
