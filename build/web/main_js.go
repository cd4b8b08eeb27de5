//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"

	"github.com/gosuda/algofr"
	"github.com/gosuda/algofr/parser"
	aruntime "github.com/gosuda/algofr/runtime"
)

const abortSentinel = "__ALGOFR_ABORT__"

type inputRequestPayload struct {
	Variable string `json:"variable"`
	Line     int    `json:"line"`
}

// nextInput asks the page for a value. ok is false when no provider is
// installed or the page declined.
func nextInput(res aruntime.Result) (string, bool) {
	fn := js.Global().Get("algofrInputNext")
	if fn.Type() != js.TypeFunction {
		return "", false
	}
	b, _ := json.Marshal(inputRequestPayload{Variable: res.PendingVariable, Line: res.Line})
	v := fn.Invoke(string(b))
	if v.IsUndefined() || v.IsNull() {
		return "", false
	}
	out := v.String()
	if strings.TrimSpace(out) == abortSentinel {
		return "", false
	}
	return out, true
}

func encode(rep algofr.Report) string {
	b, _ := json.Marshal(rep)
	return string(b)
}

// runAlgo(source, inputsJSON) runs the program, pulling further values from
// algofrInputNext while it suspends.
func runAlgo(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return encode(algofr.Report{Error: "algofrRun requires source text"})
	}
	var queued []string
	if len(args) > 1 && strings.TrimSpace(args[1].String()) != "" {
		if err := json.Unmarshal([]byte(args[1].String()), &queued); err != nil {
			return encode(algofr.Report{Error: fmt.Sprintf("invalid inputs json: %v", err)})
		}
	}

	program, err := parser.ParseSource(args[0].String())
	if err != nil {
		return encode(algofr.NewReport(aruntime.Result{}, err))
	}
	vm := aruntime.New()
	for _, in := range queued {
		vm.ProvideInput(in)
	}
	res, err := vm.Run(program)
	for err == nil && res.Suspended {
		in, ok := nextInput(res)
		if !ok {
			break
		}
		vm.ProvideInput(in)
		res, err = vm.Run(nil)
	}
	return encode(algofr.NewReport(res, err))
}

func main() {
	js.Global().Set("algofrRun", js.FuncOf(runAlgo))
	select {}
}
