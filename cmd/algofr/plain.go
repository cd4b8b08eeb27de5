package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".algofr_history"

// prompter asks for one answer; liner backs it outside of tests.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runPlain(cfg appConfig, src source, w io.Writer) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return drivePlain(newSession(src, cfg.maxSteps), ln, w, cfg.showVars)
}

// drivePlain runs to completion, asking for each pending Lire. Output is
// printed once: a rerun replays the same prefix, only the new tail is shown.
func drivePlain(s *session, p prompter, w io.Writer, showVars bool) error {
	printed := 0
	err := s.run()
	for {
		for ; printed < len(s.last.Output); printed++ {
			fmt.Fprintln(w, s.last.Output[printed].String())
		}
		if err != nil {
			return err
		}
		if !s.last.Suspended {
			break
		}
		line, perr := p.Prompt(fmt.Sprintf("%s ? ", s.last.PendingVariable))
		if perr != nil {
			if errors.Is(perr, liner.ErrPromptAborted) || errors.Is(perr, io.EOF) {
				return fmt.Errorf("entrée interrompue (ligne %d)", s.last.Line)
			}
			return perr
		}
		if strings.TrimSpace(line) != "" {
			p.AppendHistory(line)
		}
		err = s.provide(line)
	}
	if showVars {
		fmt.Fprintln(w, "--")
		for _, b := range s.vm.Bindings() {
			fmt.Fprintf(w, "%s = %s\n", b.Name, b.Value)
		}
	}
	return nil
}
