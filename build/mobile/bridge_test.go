package mobile

import (
	"encoding/json"
	"testing"

	"github.com/gosuda/algofr"
)

func decode(t *testing.T, s string) algofr.Report {
	t.Helper()
	var rep algofr.Report
	if err := json.Unmarshal([]byte(s), &rep); err != nil {
		t.Fatalf("invalid json %q: %v", s, err)
	}
	return rep
}

func TestRunSuspendsThenCompletes(t *testing.T) {
	src := "Début\nLire nom\nÉcrire \"Bonjour \" + nom\nFin"
	rep := decode(t, Run(src, ""))
	if !rep.Suspended || rep.PendingVariable != "nom" {
		t.Fatalf("expected suspension, got %+v", rep)
	}
	rep = decode(t, Run(src, `["Alice"]`))
	if !rep.Completed || len(rep.Outputs) != 1 || rep.Outputs[0] != "Bonjour Alice" {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestRunRejectsBadInputs(t *testing.T) {
	if rep := decode(t, Run("Début\nFin", "{")); rep.Error == "" {
		t.Fatalf("expected an error for malformed inputs")
	}
	if rep := decode(t, Run("  ", "")); rep.Error == "" {
		t.Fatalf("expected an error for empty source")
	}
}

func TestRunLimited(t *testing.T) {
	rep := decode(t, RunLimited("Début\nTantQue 1\nx ← 1\nFinTantQue\nFin", "", 10))
	if rep.Error == "" || rep.ErrorLine == 0 {
		t.Fatalf("expected a limit error with a line, got %+v", rep)
	}
}
