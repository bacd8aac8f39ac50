//go:build js && wasm

// Command wasm exposes the motion profile engine to the browser via WebAssembly.
// After loading, it registers a global JavaScript function:
//
//	runProfile(jsonString) -> jsonString
//
// The input and output are JSON-encoded SimulationInput and SimulationLog,
// the same contract used by the CLI. The log is written in metres and seconds.
package main

import (
	"syscall/js"

	"github.com/cxd309/units/internal/engine"
)

func main() {
	js.Global().Set("runProfile", js.FuncOf(runProfile))
	select {} // keep the WASM module alive until the page is closed
}

func runProfile(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := engine.RunJSON(args[0].String(), engine.DefaultOptions())
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
