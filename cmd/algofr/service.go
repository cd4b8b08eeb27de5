package main

import (
	"strings"

	"github.com/gosuda/algofr"
	"github.com/gosuda/algofr/ast"
	aruntime "github.com/gosuda/algofr/runtime"
)

// session drives one VM for a front end. The VM never blocks, so both the
// line mode and the terminal UI call it synchronously.
type session struct {
	src     source
	lines   []string
	program *ast.Program
	vm      *aruntime.VM
	mode    runMode
	last    aruntime.Result
	err     error
}

func newSession(src source, maxSteps int) *session {
	s := &session{
		src:   src,
		lines: strings.Split(strings.ReplaceAll(src.code, "\r\n", "\n"), "\n"),
		vm:    aruntime.New(aruntime.WithMaxSteps(maxSteps)),
	}
	s.seedInputs()
	return s
}

func (s *session) seedInputs() {
	for _, in := range s.src.inputs {
		s.vm.ProvideInput(in)
	}
}

func (s *session) parse() error {
	if s.program != nil {
		return nil
	}
	program, err := algofr.Parse(s.src.code)
	if err != nil {
		return err
	}
	s.program = program
	return nil
}

func (s *session) record(res aruntime.Result, err error) error {
	s.last = res
	s.err = err
	if err != nil || (res.Completed && !res.Suspended) {
		s.mode = modeIdle
	}
	return err
}

// run restarts from the top, replaying every answer given so far.
func (s *session) run() error {
	if err := s.parse(); err != nil {
		return s.record(aruntime.Result{}, err)
	}
	s.mode = modeRun
	return s.record(s.vm.Run(s.program))
}

func (s *session) step() error {
	if err := s.parse(); err != nil {
		return s.record(aruntime.Result{}, err)
	}
	s.mode = modeStep
	return s.record(s.vm.Step(s.program))
}

// provide answers the pending Lire and continues in the current mode.
func (s *session) provide(raw string) error {
	s.vm.ProvideInput(raw)
	if s.mode == modeStep {
		return s.step()
	}
	return s.run()
}

// reset drops the answers too; seeded inputs are queued again.
func (s *session) reset() {
	s.vm.Reset()
	s.seedInputs()
	s.mode = modeIdle
	s.last = aruntime.Result{}
	s.err = nil
}

func (s *session) errorLine() int {
	return aruntime.ErrorLine(s.err)
}
