package options

import "log/slog"

// Resolve merges command-line arguments and an environment snapshot into
// one Config. It is a pure function of its inputs: no partial Config is
// ever returned, and the first error encountered aborts the whole pass.
//
// installDirs are runtime-provided module directories appended after the
// environment-derived search path entries.
func Resolve(args []string, environ map[string]string, installDirs []string) (*Config, error) {
	events, positionals, err := tokenize(args)
	if err != nil {
		return nil, err
	}

	cfg := &Config{HashSeed: RandomSeed}
	var (
		selector byte
		selValue string
		cliWarn  []string
	)

	for _, ev := range events {
		switch ev.flag {
		case 'h':
			return nil, ErrHelp
		case 'V':
			return nil, ErrVersion
		case 'd':
			cfg.Debug = true
		case 'i':
			// inspect and interactive travel as a pair
			cfg.Inspect = true
			cfg.Interactive = true
		case 'I':
			cfg.Isolated = true
		case 'O':
			cfg.OptimizeLevel++
		case 'B':
			cfg.DontWriteBytecode = true
		case 's':
			cfg.NoUserSite = true
		case 'S':
			cfg.NoSite = true
		case 'E':
			cfg.IgnoreEnvironment = true
		case 'v':
			cfg.VerboseLevel++
		case 'q':
			cfg.Quiet = true
		case 'b':
			cfg.BytesWarning++
		case 't':
			// compatibility no-op
		case 'W':
			// -W values are kept whole even when they contain commas;
			// only the environment list is comma-split
			cliWarn = append(cliWarn, ev.value)
		case 'c', 'm':
			if selector != 0 {
				return nil, &ConflictingSourceError{
					First:  "-" + string(selector),
					Second: "-" + string(ev.flag),
				}
			}
			selector = ev.flag
			selValue = ev.value
		}
	}

	if cfg.Isolated {
		cfg.IgnoreEnvironment = true
		cfg.NoUserSite = true
	}

	con := contribution{hashSeed: RandomSeed}
	if !cfg.IgnoreEnvironment {
		con, err = readEnviron(environ)
		if err != nil {
			return nil, err
		}
	}

	cfg.HashSeed = con.hashSeed
	cfg.WarnOptions = append(con.warnOptions, cliWarn...)

	cfg.SearchPath = append([]string{""}, con.searchPath...)
	cfg.SearchPath = append(cfg.SearchPath, installDirs...)

	cfg.Source = selectSource(selector, selValue, positionals)

	slog.Debug("runtime configuration resolved",
		"source", cfg.Source.Argv()[0],
		"isolated", cfg.Isolated,
		"search_path_entries", len(cfg.SearchPath))
	return cfg, nil
}

// selectSource picks exactly one source variant. An explicit -c or -m wins
// over a bare positional; a remaining positional is a file path ("-" means
// stdin); with nothing at all the program is read from standard input.
func selectSource(selector byte, selValue string, positionals []string) Source {
	switch selector {
	case 'c':
		return CommandSource{
			Code: selValue,
			Args: append([]string{"-c"}, positionals...),
		}
	case 'm':
		return ModuleSource{
			Name: selValue,
			Args: append([]string{selValue}, positionals...),
		}
	}
	if len(positionals) == 0 {
		return StdinSource{Args: []string{""}}
	}
	if positionals[0] == "-" {
		return StdinSource{Args: positionals}
	}
	return FileSource{Path: positionals[0], Args: positionals}
}
