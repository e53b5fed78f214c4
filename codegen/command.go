// This file is part of hackvm - https://github.com/db47h/hackvm
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codegen

import (
	"strconv"
	"strings"
)

// Kind identifies a VM command.
type Kind int

// VM command kinds.
const (
	Add Kind = iota
	Sub
	Neg
	Eq
	Gt
	Lt
	And
	Or
	Not
	Push
	Pop
)

var kinds = [...]string{
	"add",
	"sub",
	"neg",
	"eq",
	"gt",
	"lt",
	"and",
	"or",
	"not",
	"push",
	"pop",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k]
}

// IsArithmetic returns true for the arithmetic and logical commands, the ones
// that take no arguments.
func (k Kind) IsArithmetic() bool {
	return k >= Add && k <= Not
}

// Segment identifies a memory segment.
type Segment int

// Memory segments.
const (
	Argument Segment = iota
	Local
	This
	That
	Static
	Constant
	Pointer
	Temp
)

var segments = [...]string{
	"argument",
	"local",
	"this",
	"that",
	"static",
	"constant",
	"pointer",
	"temp",
}

func (s Segment) String() string {
	if s < 0 || int(s) >= len(segments) {
		return "Segment(" + strconv.Itoa(int(s)) + ")"
	}
	return segments[s]
}

var (
	kindIndex    = make(map[string]Kind)
	segmentIndex = make(map[string]Segment)
)

func init() {
	for i, v := range kinds {
		kindIndex[v] = Kind(i)
	}
	for i, v := range segments {
		segmentIndex[v] = Segment(i)
	}
}

// Command is a classified VM command. Segment and Index are only meaningful
// for Push and Pop.
type Command struct {
	Kind    Kind
	Segment Segment
	Index   int
	Text    string // raw command text
}

func (c Command) String() string {
	if c.Kind.IsArithmetic() {
		return c.Kind.String()
	}
	return c.Kind.String() + " " + c.Segment.String() + " " + strconv.Itoa(c.Index)
}

// Parse classifies a single command. Tokens are separated by white space.
//
// Commands with two tokens (label, goto, if-goto) are reserved for program
// flow and are reported as unsupported.
func Parse(text string) (Command, error) {
	c := Command{Text: text}
	f := strings.Fields(text)
	switch len(f) {
	case 1:
		k, ok := kindIndex[f[0]]
		if !ok || !k.IsArithmetic() {
			return c, syntaxError(text, f[0], "unknown arithmetic or logical command")
		}
		c.Kind = k
	case 2:
		switch k, ok := kindIndex[f[0]]; {
		case !ok:
			return c, syntaxError(text, f[0], "unsupported command")
		case k.IsArithmetic():
			return c, syntaxError(text, f[1], "unexpected argument")
		default:
			return c, syntaxError(text, "", "missing segment or index")
		}
	case 3:
		k, ok := kindIndex[f[0]]
		if !ok || k != Push && k != Pop {
			return c, syntaxError(text, f[0], "expected push or pop, got")
		}
		s, ok := segmentIndex[f[1]]
		if !ok {
			return c, syntaxError(text, f[1], "unknown segment")
		}
		if k == Pop && s == Constant {
			return c, syntaxError(text, f[1], "cannot pop to segment")
		}
		idx, err := parseIndex(f[2])
		if err != nil {
			return c, syntaxError(text, f[2], "invalid index")
		}
		c.Kind, c.Segment, c.Index = k, s, idx
	default:
		return c, syntaxError(text, "", "wrong number of tokens: "+strconv.Itoa(len(f)))
	}
	return c, nil
}

// parseIndex accepts non-negative base 10 literals only.
func parseIndex(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
