// Package interp is the seam between the launcher front end and the
// interpreter core. Bootstrap turns a resolved configuration into the
// concrete launch plan the core consumes: effective hash seed, final
// module search path, and the program's argv.
package interp

import (
	"fmt"
	"log/slog"

	"github.com/ppiankov/quill/internal/options"
)

// Plan is everything the interpreter core needs to start executing. It is
// derived once per launch; the Random hash-seed mode is collapsed into a
// concrete seed here.
type Plan struct {
	Seed       uint32
	Randomized bool
	SearchPath []string
	Argv       []string
	Mode       string
}

// Bootstrap derives the launch plan from a resolved configuration.
func Bootstrap(cfg *options.Config) (*Plan, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("bootstrap: configuration has no source")
	}

	plan := &Plan{
		Seed:       cfg.HashSeed.Value(),
		Randomized: cfg.HashSeed.Randomized(),
		SearchPath: append([]string(nil), cfg.SearchPath...),
		Argv:       cfg.Source.Argv(),
	}

	switch src := cfg.Source.(type) {
	case options.FileSource:
		plan.Mode = "file"
	case options.ModuleSource:
		plan.Mode = "module"
	case options.CommandSource:
		plan.Mode = "command"
	case options.StdinSource:
		plan.Mode = "stdin"
	default:
		return nil, fmt.Errorf("bootstrap: unsupported source %T", src)
	}

	slog.Debug("launch plan ready",
		"mode", plan.Mode,
		"argv0", plan.Argv[0],
		"hash_randomized", plan.Randomized)
	return plan, nil
}
