package flags

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/vinser/sbokena/internal/floor"
)

// Env holds the defaults read from the environment. Command-line flags take
// precedence over them.
type Env struct {
	Seed   int64 `env:"SBOKENA_SEED"`
	Width  int   `env:"SBOKENA_WIDTH"  envDefault:"21"`
	Height int   `env:"SBOKENA_HEIGHT" envDefault:"15"`
	Exits  bool  `env:"SBOKENA_EXITS"`
}

// envFlag maps environment variables to the flag they stand in for.
var envFlag = map[string]string{
	"SBOKENA_SEED":   "seed",
	"SBOKENA_WIDTH":  "width",
	"SBOKENA_HEIGHT": "height",
	"SBOKENA_EXITS":  "exits",
}

// Flags stores the parsed command-line options
type Flags struct {
	Seed   int64
	Width  int
	Height int
	Exits  bool
	Hint   bool
	Reset  bool

	set map[string]bool
}

// IsSet reports whether the option was given on the command line or through
// the environment rather than left at its default.
func (f *Flags) IsSet(name string) bool {
	return f.set[name]
}

// LoadEnv reads the environment defaults and records which of them were
// actually present.
func LoadEnv() (Env, map[string]bool, error) {
	var e Env
	present := make(map[string]bool)
	err := env.ParseWithOptions(&e, env.Options{
		OnSet: func(tag string, value any, isDefault bool) {
			if _, ok := os.LookupEnv(tag); ok && !isDefault {
				present[envFlag[tag]] = true
			}
		},
	})
	if err != nil {
		return Env{}, nil, fmt.Errorf("parse env: %w", err)
	}
	return e, present, nil
}

// Parse parses args (without the program name) on top of the environment
// defaults. Usage and errors go to out.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	defaults, present, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	f := &Flags{set: present}
	fs := NewFlagSetWithVisit(name, out)

	fs.Int64Var(&f.Seed, "seed", "s", defaults.Seed, "Maze seed, 0 picks a new one")
	fs.IntVar(&f.Width, "width", "x", defaults.Width, "Maze width in cells, odd")
	fs.IntVar(&f.Height, "height", "y", defaults.Height, "Maze height in cells, odd")
	fs.BoolVar(&f.Exits, "exits", "e", defaults.Exits, "Start with the exits view on")
	fs.BoolVar(&f.Hint, "hint", "", false, "Show the shortest path")
	fs.BoolVar(&f.Reset, "reset", "r", false, "Reset saved progress and settings")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, opt := range []string{"seed", "width", "height", "exits", "hint", "reset"} {
		if fs.IsCustom(opt) {
			f.set[opt] = true
		}
	}

	if err := floor.ValidateSize(f.Width, f.Height); err != nil {
		fmt.Fprintf(out, "Invalid maze size: %v\n", err)
		fs.Usage()
		return nil, err
	}
	return f, nil
}
