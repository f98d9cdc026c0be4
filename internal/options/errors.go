package options

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Resolve when -h or --help was given. No
// configuration is produced; the caller prints usage and exits cleanly.
var ErrHelp = errors.New("help requested")

// ErrVersion is returned by Resolve when -V or --version was given.
var ErrVersion = errors.New("version requested")

// UnknownFlagError reports an argument that looks like a flag but is not
// recognized. Token is the offending argv token verbatim.
type UnknownFlagError struct {
	Token string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Token)
}

// MissingValueError reports a value-taking flag at the end of argv with
// nothing left to consume.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argument expected for the %s option", e.Flag)
}

// InvalidEnvError reports an environment variable whose value could not
// be parsed.
type InvalidEnvError struct {
	Var   string
	Value string
}

func (e *InvalidEnvError) Error() string {
	return fmt.Sprintf("invalid %s value: %q", e.Var, e.Value)
}

// ConflictingSourceError reports that more than one program source was
// selected, e.g. both -c and -m.
type ConflictingSourceError struct {
	First  string
	Second string
}

func (e *ConflictingSourceError) Error() string {
	return fmt.Sprintf("cannot specify both %s and %s", e.First, e.Second)
}
