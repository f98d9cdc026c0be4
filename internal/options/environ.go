package options

import (
	"errors"
	"strconv"
	"strings"
)

// Environment variables consulted during resolution. They are read from an
// explicit snapshot, never from the live process environment, so tests and
// embedders control exactly what the resolver sees.
const (
	EnvHashSeed = "QUILLHASHSEED"
	EnvPath     = "QUILLPATH"
	EnvWarnings = "QUILLWARNINGS"
)

// Snapshot converts an os.Environ-style "KEY=VALUE" list into the map
// form Resolve consumes. Malformed entries without "=" are skipped.
func Snapshot(environ []string) map[string]string {
	snap := make(map[string]string, len(environ))
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		snap[name] = value
	}
	return snap
}

// contribution is the environment reader's partial configuration. It is
// merged into the resolved Config only when the environment is consulted
// at all (not isolated, not -E).
type contribution struct {
	hashSeed    HashSeed
	searchPath  []string
	warnOptions []string
}

// readEnviron parses the recognized variables out of the snapshot.
// Unparseable variables are reported together in one aggregate error so a
// single diagnostic names every offender.
func readEnviron(environ map[string]string) (contribution, error) {
	con := contribution{hashSeed: RandomSeed}
	var errs []error

	if raw, ok := environ[EnvHashSeed]; ok {
		seed, err := parseHashSeed(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			con.hashSeed = seed
		}
	}

	if raw, ok := environ[EnvPath]; ok && raw != "" {
		con.searchPath = strings.Split(raw, ":")
	}

	if raw, ok := environ[EnvWarnings]; ok && raw != "" {
		con.warnOptions = strings.Split(raw, ",")
	}

	if len(errs) > 0 {
		return contribution{}, errors.Join(errs...)
	}
	return con, nil
}

// parseHashSeed parses the QUILLHASHSEED value: "random" keeps per-process
// randomization, a decimal integer in [0, 2^32-1] pins the seed. Zero
// disables randomization entirely.
func parseHashSeed(raw string) (HashSeed, error) {
	if raw == "random" {
		return RandomSeed, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return HashSeed{}, &InvalidEnvError{Var: EnvHashSeed, Value: raw}
	}
	return FixedSeed(uint32(seed)), nil
}
