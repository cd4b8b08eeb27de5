package main

type appConfig struct {
	file     string
	example  string
	load     string
	save     string
	list     bool
	examples bool
	deleteID int64

	storePath string
	plain     bool
	inputs    []string
	sample    bool
	maxSteps  int
	showVars  bool
}

// source is a program ready to be run, with where it came from.
type source struct {
	name   string
	code   string
	inputs []string
}

type runMode int

const (
	modeIdle runMode = iota
	modeRun
	modeStep
)
