package options

import "strings"

// event is one occurrence of a flag. Grouped short options emit one event
// per letter, so counting flags like -OO fall out of plain accumulation.
type event struct {
	flag  byte
	value string
}

// simpleFlags take no value. Each letter in a cluster is one independent
// occurrence; O, v, and b accumulate into levels downstream.
var simpleFlags = map[byte]bool{
	'd': true, // debug
	'i': true, // inspect + interactive after run
	'I': true, // isolated mode
	'O': true, // optimize level (counting)
	'B': true, // don't write bytecode
	's': true, // no user site
	'S': true, // no site
	'E': true, // ignore environment
	'v': true, // verbose level (counting)
	'q': true, // quiet
	't': true, // accepted and ignored, kept for compatibility
	'b': true, // bytes warning level (counting)
	'h': true, // help
	'V': true, // version
}

// valueFlags consume the rest of their token, or the next token when
// nothing is attached.
var valueFlags = map[byte]bool{
	'W': true, // warning filter
	'c': true, // inline code
	'm': true, // module name
}

var longFlags = map[string]byte{
	"--help":    'h',
	"--version": 'V',
}

// tokenize splits argv into flag events and residual positional arguments.
// Scanning ends at the first token that is neither a flag nor a flag
// value; that token and everything after it pass through verbatim.
func tokenize(args []string) ([]event, []string, error) {
	var events []event
	for i := 0; i < len(args); i++ {
		tok := args[i]

		// A lone dash is the stdin designator, not a flag.
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			return events, args[i:], nil
		}

		if strings.HasPrefix(tok, "--") {
			flag, ok := longFlags[tok]
			if !ok {
				return nil, nil, &UnknownFlagError{Token: tok}
			}
			events = append(events, event{flag: flag})
			continue
		}

		cluster := tok[1:]
		for j := 0; j < len(cluster); j++ {
			ch := cluster[j]
			switch {
			case simpleFlags[ch]:
				events = append(events, event{flag: ch})
			case valueFlags[ch]:
				value := cluster[j+1:]
				if value == "" {
					i++
					if i >= len(args) {
						return nil, nil, &MissingValueError{Flag: "-" + string(ch)}
					}
					value = args[i]
				}
				events = append(events, event{flag: ch, value: value})
				j = len(cluster)
			default:
				return nil, nil, &UnknownFlagError{Token: tok}
			}
		}
	}
	return events, nil, nil
}
