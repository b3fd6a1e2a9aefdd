package main

import (
	"flag"
	"strings"
)

// boolFlag matches flag.Value implementations that take no argument.
type boolFlag interface {
	IsBoolFlag() bool
}

// splitFlags separates the leading options in argv from the positional
// arguments. Options end at the first token that does not name a flag
// defined on flags, so a negative minimum such as "-5" is positional.
// Unknown double-dash options stay on the flag side and fail to parse.
func splitFlags(flags *flag.FlagSet, argv []string) (options, positional []string) {
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if tok == "--" {
			return argv[:i], argv[i+1:]
		}
		if len(tok) < 2 || tok[0] != '-' {
			return argv[:i], argv[i:]
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		if name == "h" || name == "help" {
			continue
		}

		f := flags.Lookup(name)
		if f == nil {
			if strings.HasPrefix(tok, "--") {
				continue
			}
			return argv[:i], argv[i:]
		}

		if bf, ok := f.Value.(boolFlag); ok && bf.IsBoolFlag() {
			continue
		}
		if !hasValue {
			i++
		}
	}
	return argv, nil
}
