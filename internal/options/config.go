// Package options resolves command-line arguments and an environment
// snapshot into the canonical runtime configuration consumed by the
// interpreter bootstrap. Resolution is a pure, single-pass transformation:
// it reads nothing but its inputs and either returns a fully valid Config
// or the first error encountered.
package options

import (
	"crypto/rand"
	"encoding/binary"

	"gopkg.in/yaml.v3"
)

// Config is the canonical runtime configuration. It is built once per
// resolution pass and never mutated afterwards; concurrent resolutions are
// safe because each call allocates its own output.
type Config struct {
	Debug             bool `yaml:"debug"`
	Inspect           bool `yaml:"inspect"`
	Interactive       bool `yaml:"interactive"`
	OptimizeLevel     int  `yaml:"optimize"`
	DontWriteBytecode bool `yaml:"dont_write_bytecode"`
	NoUserSite        bool `yaml:"no_user_site"`
	NoSite            bool `yaml:"no_site"`
	IgnoreEnvironment bool `yaml:"ignore_environment"`
	VerboseLevel      int  `yaml:"verbose"`
	BytesWarning      int  `yaml:"bytes_warning"`
	Quiet             bool `yaml:"quiet"`
	Isolated          bool `yaml:"isolated"`

	HashSeed HashSeed `yaml:"hash_seed"`

	// WarnOptions holds warning filters in application order: entries from
	// QUILLWARNINGS first (already comma-split), then -W occurrences in
	// encounter order. CLI entries are never comma-split.
	WarnOptions []string `yaml:"warn_options"`

	// SearchPath is the ordered module search path. The first entry is
	// always "" (the current-directory marker), followed by QUILLPATH
	// entries left to right, then any install directories.
	SearchPath []string `yaml:"search_path"`

	Source Source `yaml:"-"`
}

// Dump renders the configuration as YAML for diagnostic logging.
func (c *Config) Dump() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	return string(out)
}

// HashSeed governs the process-wide hash perturbation. The zero value is
// Fixed(0), which disables hash randomization entirely; Random draws a
// fresh seed per call to Value.
type HashSeed struct {
	Random bool   `yaml:"random"`
	Seed   uint32 `yaml:"seed"`
}

// RandomSeed is the hash-seed mode that draws a fresh seed per process.
var RandomSeed = HashSeed{Random: true}

// FixedSeed returns a deterministic hash-seed mode. FixedSeed(0) disables
// randomization; any other value perturbs hashing with that exact seed.
func FixedSeed(seed uint32) HashSeed {
	return HashSeed{Seed: seed}
}

// Value returns the effective seed. Fixed mode always returns the same
// seed; Random mode draws fresh entropy on every call, so two launches
// under Random mode do not agree.
func (h HashSeed) Value() uint32 {
	if !h.Random {
		return h.Seed
	}
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms
		panic("options: reading hash seed entropy: " + err.Error())
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// Randomized reports whether hashing is perturbed at all. Only the
// explicit Fixed(0) mode turns it off.
func (h HashSeed) Randomized() bool {
	return h.Random || h.Seed != 0
}

// Source identifies what the runtime will execute. Exactly one variant is
// produced per resolution: a script file, a named module, an inline code
// string, or standard input.
type Source interface {
	// Argv is the program's visible argument list. The first element is
	// the source designator (file path, module name, "-c", or "-").
	Argv() []string

	sourceMode()
}

// FileSource runs a script file.
type FileSource struct {
	Path string
	Args []string
}

// ModuleSource locates and runs a named module from the search path.
type ModuleSource struct {
	Name string
	Args []string
}

// CommandSource runs an inline code string.
type CommandSource struct {
	Code string
	Args []string
}

// StdinSource reads the program from standard input.
type StdinSource struct {
	Args []string
}

func (s FileSource) Argv() []string    { return s.Args }
func (s ModuleSource) Argv() []string  { return s.Args }
func (s CommandSource) Argv() []string { return s.Args }
func (s StdinSource) Argv() []string   { return s.Args }

func (FileSource) sourceMode()    {}
func (ModuleSource) sourceMode()  {}
func (CommandSource) sourceMode() {}
func (StdinSource) sourceMode()   {}
