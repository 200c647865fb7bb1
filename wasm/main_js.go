//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/voxelsplace/terravox/api"
)

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

func fromUint8Array(v js.Value) []byte {
	b := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(b, v)
	return b
}

// generateWorld(seed, sx, sy, sz) -> Uint8Array of TVOX snapshot bytes.
func generateWorld(this js.Value, args []js.Value) any {
	if len(args) < 4 {
		return js.ValueOf("usage: generateWorld(seed, sx, sy, sz)")
	}
	seed := uint64(args[0].Float())
	out, err := api.GenerateWorld(seed, args[1].Int(), args[2].Int(), args[3].Int())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

// world2glb(snapshotBytes) -> Uint8Array of binary glTF.
func world2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing snapshot bytes")
	}
	out, err := api.WorldToGLB(fromUint8Array(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

// world2map(snapshotBytes) -> terrain map text.
func world2map(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing snapshot bytes")
	}
	out, err := api.WorldToTerrainMap(fromUint8Array(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(string(out))
}

// worldFingerprint(snapshotBytes) -> 16-hex-digit content hash string.
func worldFingerprint(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing snapshot bytes")
	}
	sum, err := api.WorldFingerprint(fromUint8Array(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(fmt.Sprintf("%016x", sum))
}

func main() {
	js.Global().Set("generateWorld", js.FuncOf(generateWorld))
	js.Global().Set("world2glb", js.FuncOf(world2glb))
	js.Global().Set("world2map", js.FuncOf(world2map))
	js.Global().Set("worldFingerprint", js.FuncOf(worldFingerprint))
	select {}
}
