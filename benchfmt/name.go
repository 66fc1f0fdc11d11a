// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"strconv"
	"strings"
)

// A Name is a parsed benchmark run name.
//
// A run name has the form
//
//	Base[<T1, T2, ...>][/part]...
//
// Each part is either a positional argument or a modifier appended by
// the benchmark runner, such as "min_time:0.5", "repeats:3",
// "threads:4" or "real_time". Modifiers are not arguments, but runs
// that differ only by their modifiers are distinct runs.
type Name struct {
	Base      string
	Templates []string
	Arguments []string
	Modifiers []string
	Threads   int
}

var modifierPrefixes = []string{
	"min_time:",
	"min_warmup_time:",
	"iterations:",
	"repeats:",
	"threads:",
}

var modifiers = map[string]bool{
	"real_time":    true,
	"process_time": true,
	"manual_time":  true,
}

// ParseName parses a benchmark run name.
func ParseName(name string) Name {
	n := Name{Threads: 1}

	rest := name
	slash := strings.IndexByte(name, '/')
	lt := strings.IndexByte(name, '<')
	switch {
	case lt >= 0 && (slash < 0 || lt < slash):
		n.Base = name[:lt]
		gt := matchAngle(name, lt)
		if gt < 0 {
			// Unbalanced: keep the whole thing as a single
			// template parameter.
			n.Templates = splitTop(name[lt+1:])
			return n
		}
		n.Templates = splitTop(name[lt+1 : gt])
		rest = name[gt+1:]
	case slash >= 0:
		n.Base, rest = name[:slash], name[slash:]
	default:
		n.Base, rest = name, ""
	}

	for _, part := range strings.Split(rest, "/") {
		if part == "" {
			continue
		}
		if modifiers[part] {
			n.Modifiers = append(n.Modifiers, part)
			continue
		}
		if isModifier(part) {
			n.Modifiers = append(n.Modifiers, part)
			if strings.HasPrefix(part, "threads:") {
				if th, err := strconv.Atoi(part[len("threads:"):]); err == nil {
					n.Threads = th
				}
			}
			continue
		}
		n.Arguments = append(n.Arguments, part)
	}
	return n
}

func isModifier(part string) bool {
	for _, p := range modifierPrefixes {
		if strings.HasPrefix(part, p) {
			return true
		}
	}
	return false
}

// matchAngle returns the index of the '>' closing the '<' at s[open],
// or -1.
func matchAngle(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTop splits a template parameter list on commas that are not
// nested inside <>, () or [] and trims the resulting parameters.
func splitTop(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(out) > 0 {
		out = append(out, last)
	}
	return out
}
