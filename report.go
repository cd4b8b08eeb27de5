package algofr

import (
	aruntime "github.com/gosuda/algofr/runtime"
)

// Variable is one entry of a Report variable table.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Report is the JSON shape returned by the mobile and web bridges.
type Report struct {
	Outputs         []string   `json:"outputs"`
	Variables       []Variable `json:"variables"`
	Suspended       bool       `json:"suspended"`
	PendingVariable string     `json:"pending_variable,omitempty"`
	Completed       bool       `json:"completed"`
	Line            int        `json:"line,omitempty"`
	Error           string     `json:"error,omitempty"`
	ErrorLine       int        `json:"error_line,omitempty"`
}

// NewReport flattens a result and an optional error. Variables come out
// sorted by name.
func NewReport(res aruntime.Result, err error) Report {
	rep := Report{
		Outputs:         make([]string, 0, len(res.Output)),
		Variables:       make([]Variable, 0, len(res.Variables)),
		Suspended:       res.Suspended,
		PendingVariable: res.PendingVariable,
		Completed:       res.Completed,
		Line:            res.Line,
	}
	for _, v := range res.Output {
		rep.Outputs = append(rep.Outputs, v.String())
	}
	for _, b := range aruntime.SortedBindings(res.Variables) {
		rep.Variables = append(rep.Variables, Variable{Name: b.Name, Value: b.Value.String(), Type: b.Value.Kind().String()})
	}
	if err != nil {
		rep.Error = err.Error()
		rep.ErrorLine = aruntime.ErrorLine(err)
	}
	return rep
}
