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

import "github.com/pkg/errors"

// Generator translates the commands of one translation unit. A Generator is
// not safe for concurrent use.
type Generator struct {
	unit   string
	err    error
	labels labels
}

// New returns a new Generator for the translation unit unit. The unit name is
// used as a prefix for static variables and labels.
// If unit is not a valid assembler symbol, Translate and Generate fail with
// the error returned by ValidUnit.
func New(unit string) *Generator {
	return &Generator{
		unit:   unit,
		err:    ValidUnit(unit),
		labels: labels{unit: unit},
	}
}

// ValidUnit checks that unit can be used as a symbol prefix in Hack assembly:
// a non-empty sequence of letters, digits, '_', '.', '$' and ':' that does
// not start with a digit.
func ValidUnit(unit string) error {
	if unit == "" {
		return errors.New("empty unit name")
	}
	if unit[0] >= '0' && unit[0] <= '9' {
		return errors.Errorf("invalid unit name %q: starts with a digit", unit)
	}
	for _, c := range unit {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '$', c == ':':
		default:
			return errors.Errorf("invalid unit name %q: illegal character %q", unit, c)
		}
	}
	return nil
}

// Unit returns the translation unit name.
func (g *Generator) Unit() string {
	return g.unit
}

// Generate translates all commands in order and returns the concatenated
// assembly. It stops at the first malformed command and returns no output.
// The cause of the returned error is a *SyntaxError, unless the unit name
// itself is invalid.
func (g *Generator) Generate(cmds []string) ([]string, error) {
	var out []string
	for n, cmd := range cmds {
		lines, err := g.Translate(cmd)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: command %d", g.unit, n+1)
		}
		out = append(out, lines...)
	}
	return out, nil
}

// Translate translates a single command.
func (g *Generator) Translate(cmd string) ([]string, error) {
	if g.err != nil {
		return nil, g.err
	}
	c, err := Parse(cmd)
	if err != nil {
		return nil, err
	}
	return g.TranslateCommand(c), nil
}

// TranslateCommand translates an already classified command. The first line
// of the output is a comment echoing the command. The unit name is not
// checked.
func (g *Generator) TranslateCommand(c Command) []string {
	out := code{"// " + c.String()}
	switch c.Kind {
	case Push:
		g.push(&out, c.Segment, c.Index)
	case Pop:
		g.pop(&out, c.Segment, c.Index)
	case Add, Sub, And, Or:
		binary(&out, c.Kind)
	case Neg, Not:
		unary(&out, c.Kind)
	case Eq, Gt, Lt:
		g.compare(&out, c.Kind)
	default:
		panic("unhandled command kind " + c.Kind.String())
	}
	return out
}

// code is an append only sequence of assembly lines.
type code []string

func (c *code) emit(lines ...string) {
	*c = append(*c, lines...)
}
