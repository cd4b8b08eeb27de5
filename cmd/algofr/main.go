package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	aruntime "github.com/gosuda/algofr/runtime"
	"github.com/gosuda/algofr/store"
)

func parseFlags(args []string, stderr io.Writer) (appConfig, error) {
	fs := flag.NewFlagSet("algofr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "pseudocode source file")
	example := fs.String("example", "", "run a built-in example by slug")
	load := fs.String("load", "", "run a saved algorithm by name")
	save := fs.String("save", "", "save -file into the store under this name")
	list := fs.Bool("list", false, "list saved algorithms")
	listExamples := fs.Bool("examples", false, "list built-in examples")
	del := fs.Int64("delete", 0, "delete the saved algorithm with this id")
	storePath := fs.String("store", store.DefaultPath(), "saved algorithms file")
	configPath := fs.String("config", "", "optional YAML configuration file")
	plain := fs.Bool("plain", false, "line mode instead of the terminal UI")
	inputs := fs.String("inputs", "", "comma separated answers for Lire, in order")
	sample := fs.Bool("sample", false, "answer Lire with the example's sample inputs")
	maxSteps := fs.Int("max-steps", aruntime.DefaultMaxSteps, "statement budget per run (0 disables)")
	showVars := fs.Bool("vars", false, "print variables when a plain run ends")
	if err := fs.Parse(args); err != nil {
		return appConfig{}, err
	}

	cfg := appConfig{
		file:      strings.TrimSpace(*file),
		example:   strings.TrimSpace(*example),
		load:      strings.TrimSpace(*load),
		save:      strings.TrimSpace(*save),
		list:      *list,
		examples:  *listExamples,
		deleteID:  *del,
		storePath: *storePath,
		plain:     *plain,
		inputs:    splitInputs(*inputs),
		sample:    *sample,
		maxSteps:  *maxSteps,
		showVars:  *showVars,
	}
	if *configPath != "" {
		fc, err := loadConfigFile(*configPath)
		if err != nil {
			return appConfig{}, fmt.Errorf("config: %w", err)
		}
		applyFileConfig(&cfg, fc, fs)
	}
	if fs.NArg() > 0 && cfg.file == "" {
		cfg.file = fs.Arg(0)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	st := store.Open(cfg.storePath)
	handled, err := runStoreCommand(cfg, st, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	if handled {
		return
	}

	src, err := resolveSource(cfg, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if cfg.plain {
		if err := runPlain(cfg, src, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(newModel(cfg, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}
