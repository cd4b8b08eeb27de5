package mobile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuda/algofr"
	aruntime "github.com/gosuda/algofr/runtime"
)

// Run executes pseudocode source and returns a JSON report.
// inputsJSON format: ["Alice","42", ...]
// When the program reads more values than given, the report is suspended and
// names the pending variable; call Run again with one more input.
func Run(source, inputsJSON string) string {
	var queued []string
	if strings.TrimSpace(inputsJSON) != "" {
		if err := json.Unmarshal([]byte(inputsJSON), &queued); err != nil {
			return encode(algofr.Report{Error: fmt.Sprintf("invalid inputs json: %v", err)})
		}
	}
	if strings.TrimSpace(source) == "" {
		return encode(algofr.Report{Error: "no source provided"})
	}
	res, err := algofr.Run(source, queued)
	return encode(algofr.NewReport(res, err))
}

// RunLimited is Run with an explicit statement budget.
func RunLimited(source, inputsJSON string, maxSteps int) string {
	var queued []string
	if strings.TrimSpace(inputsJSON) != "" {
		if err := json.Unmarshal([]byte(inputsJSON), &queued); err != nil {
			return encode(algofr.Report{Error: fmt.Sprintf("invalid inputs json: %v", err)})
		}
	}
	res, err := algofr.Run(source, queued, aruntime.WithMaxSteps(maxSteps))
	return encode(algofr.NewReport(res, err))
}

func encode(rep algofr.Report) string {
	b, _ := json.Marshal(rep)
	return string(b)
}
