package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gosuda/algofr/store"
	"github.com/stretchr/testify/require"
)

type scriptedPrompter struct {
	answers []string
	prompts []string
	history []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

const maxSource = `Début
Lire A
Lire B
Écrire "avant"
Si A > B Alors
 Écrire "Le maximum est: " + A
Sinon
 Écrire "Le maximum est: " + B
FinSi
Fin`

func TestDrivePlainPrintsEachLineOnce(t *testing.T) {
	s := newSession(source{name: "max", code: maxSource}, 0)
	p := &scriptedPrompter{answers: []string{"10", "5"}}
	var out bytes.Buffer

	require.NoError(t, drivePlain(s, p, &out, true))
	require.Equal(t, []string{"A ? ", "B ? "}, p.prompts)
	require.Equal(t, []string{"10", "5"}, p.history)
	require.Equal(t, "avant\nLe maximum est: 10\n--\nA = 10\nB = 5\n", out.String())
}

func TestDrivePlainStopsWhenInputEnds(t *testing.T) {
	s := newSession(source{name: "max", code: maxSource}, 0)
	p := &scriptedPrompter{answers: []string{"10"}}

	err := drivePlain(s, p, io.Discard, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ligne 3")
}

func TestDrivePlainReportsRuntimeError(t *testing.T) {
	src := "Début\nÉcrire \"x\"\nÉcrire 5 / 0\nFin"
	s := newSession(source{name: "div", code: src}, 0)
	var out bytes.Buffer

	err := drivePlain(s, &scriptedPrompter{}, &out, false)
	require.Error(t, err)
	require.Equal(t, 3, s.errorLine())
	require.Equal(t, "x\n", out.String())
}

func TestSessionStepModeResumesInsideLoop(t *testing.T) {
	src := `Début
somme ← 0
Pour i ← 1 ≤ 3
  Lire x
  somme ← somme + x
  Écrire "somme " + somme
FinPour
Fin`
	s := newSession(source{name: "loop", code: src}, 0)

	require.NoError(t, s.step())
	require.Equal(t, 1, s.last.StepCursor)
	require.NoError(t, s.step())
	require.True(t, s.last.Suspended)
	require.Equal(t, "x", s.last.PendingVariable)

	require.NoError(t, s.provide("1"))
	require.True(t, s.last.Suspended)
	require.NoError(t, s.provide("2"))
	require.NoError(t, s.provide("3"))
	require.False(t, s.last.Suspended)
	require.Equal(t, 2, s.last.StepCursor)
	require.True(t, s.last.Completed)

	got := make([]string, 0, len(s.last.Output))
	for _, v := range s.last.Output {
		got = append(got, v.String())
	}
	require.Equal(t, []string{"somme 1", "somme 3", "somme 6"}, got)
}

func TestSessionResetKeepsSeededInputs(t *testing.T) {
	s := newSession(source{name: "greet", code: "Début\nLire nom\nÉcrire nom\nFin", inputs: []string{"Alice"}}, 0)
	require.NoError(t, s.run())
	require.True(t, s.last.Completed)

	s.reset()
	require.NoError(t, s.run())
	require.True(t, s.last.Completed)
	require.Equal(t, "Alice", s.last.Output[0].String())
}

func TestParseFlagsWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "algofr.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store: "+filepath.Join(dir, "s.yaml")+"\nmax_steps: 50\nplain: true\n"), 0o644))

	cfg, err := parseFlags([]string{"-config", cfgPath, "-max-steps", "7", "-inputs", "10, 5", "prog.algo"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "s.yaml"), cfg.storePath)
	require.Equal(t, 7, cfg.maxSteps, "flag wins over file")
	require.True(t, cfg.plain)
	require.Equal(t, []string{"10", "5"}, cfg.inputs)
	require.Equal(t, "prog.algo", cfg.file)
}

func TestParseFlagsRejectsUnknownConfigKeys(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "algofr.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("colour: red\n"), 0o644))

	_, err := parseFlags([]string{"-config", cfgPath}, io.Discard)
	require.Error(t, err)
}

func TestStoreCommandsAndLoad(t *testing.T) {
	dir := t.TempDir()
	st := store.Open(filepath.Join(dir, "algorithms.yaml"))
	file := filepath.Join(dir, "bonjour.algo")
	require.NoError(t, os.WriteFile(file, []byte("Début\nÉcrire \"Bonjour\"\nFin"), 0o644))

	var out bytes.Buffer
	handled, err := runStoreCommand(appConfig{file: file, save: "bonjour"}, st, &out)
	require.NoError(t, err)
	require.True(t, handled)
	require.Contains(t, out.String(), "enregistré")

	out.Reset()
	handled, err = runStoreCommand(appConfig{file: file, save: "bonjour"}, st, &out)
	require.NoError(t, err)
	require.True(t, handled)
	require.Contains(t, out.String(), "mis à jour")

	out.Reset()
	_, err = runStoreCommand(appConfig{list: true}, st, &out)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "bonjour"))

	src, err := resolveSource(appConfig{load: "bonjour"}, st)
	require.NoError(t, err)
	require.Contains(t, src.code, "Bonjour")

	handled, err = runStoreCommand(appConfig{deleteID: 1}, st, &out)
	require.NoError(t, err)
	require.True(t, handled)
	_, err = resolveSource(appConfig{load: "bonjour"}, st)
	require.True(t, errors.Is(err, store.ErrNotFound))
}

func TestResolveExampleWithSampleInputs(t *testing.T) {
	st := store.Open(filepath.Join(t.TempDir(), "algorithms.yaml"))
	src, err := resolveSource(appConfig{example: "maximum", sample: true}, st)
	require.NoError(t, err)
	require.Equal(t, []string{"10", "5"}, src.inputs)

	_, err = resolveSource(appConfig{example: "nope"}, st)
	require.Error(t, err)

	_, err = resolveSource(appConfig{}, st)
	require.Error(t, err)
}
