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

package asm

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/hackvm/vm"
)

const maxErrors = 10

// ErrAsm is the error type returned by Assemble. Each entry points to the
// offending source position.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for n, err := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

var predefined = map[string]int{
	"SP":     vm.SP,
	"LCL":    vm.LCL,
	"ARG":    vm.ARG,
	"THIS":   vm.THIS,
	"THAT":   vm.THAT,
	"SCREEN": vm.SCREEN,
	"KBD":    vm.KBD,
}

func init() {
	for r := 0; r < 16; r++ {
		predefined["R"+strconv.Itoa(r)] = r
	}
}

// first RAM address available for variables.
const varBase = 16

// '/' is excluded so that end of line comments need not be preceded by white
// space.
func isIdentRune(ch rune, i int) bool {
	return ch >= 0 && ch != '/' && !unicode.IsSpace(ch)
}

func isSymbol(s string) bool {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '$', c == ':':
		default:
			return false
		}
	}
	return true
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type parser struct {
	rom    []vm.Word
	s      scanner.Scanner
	labels map[string]labelSite
	uses   map[string][]labelSite
	order  []string // symbols in order of first use
	line   bytes.Buffer
	pos    scanner.Position // position of the first token on the current line
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]labelSite),
		uses:   make(map[string][]labelSite),
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) write(v uint16) {
	p.rom = append(p.rom, vm.Word(v))
}

func (p *parser) useSymbol(name string) {
	if _, ok := p.uses[name]; !ok {
		p.order = append(p.order, name)
	}
	p.uses[name] = append(p.uses[name], labelSite{p.pos, len(p.rom)})
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents | scanner.ScanComments | scanner.SkipComments
	p.s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	p.s.Filename = name

	// Hack ignores white space within an instruction, so all tokens on a
	// line are glued together before being compiled.
	for tok := p.s.Scan(); ; tok = p.s.Scan() {
		switch tok {
		case scanner.Ident:
			if p.line.Len() == 0 {
				p.pos = p.s.Position
			}
			p.line.WriteString(p.s.TokenText())
			continue
		case '\n', scanner.EOF:
			if p.line.Len() > 0 {
				p.instruction(p.line.String())
				p.line.Reset()
			}
		default:
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
		}
		if tok == scanner.EOF {
			break
		}
	}

	p.resolve()

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}

func (p *parser) instruction(s string) {
	switch s[0] {
	case '(':
		if len(s) < 2 || s[len(s)-1] != ')' {
			p.error(p.pos, "malformed label declaration "+s)
			return
		}
		n := s[1 : len(s)-1]
		if !isSymbol(n) {
			p.error(p.pos, "invalid label name "+n)
			return
		}
		if _, ok := predefined[n]; ok {
			p.error(p.pos, "label redefinition: "+n+" is a predefined symbol")
			return
		}
		if l, ok := p.labels[n]; ok {
			p.error(p.pos, "label redefinition: "+n+", previous definition here: "+l.pos.String())
			return
		}
		p.labels[n] = labelSite{p.pos, len(p.rom)}
	case '@':
		v := s[1:]
		if v == "" {
			p.error(p.pos, "missing A-instruction argument")
			return
		}
		if v[0] >= '0' && v[0] <= '9' {
			n, err := strconv.ParseUint(v, 10, 16)
			if err != nil || n > vm.MaxA {
				p.error(p.pos, "invalid constant "+v)
				return
			}
			p.write(uint16(n))
			return
		}
		if !isSymbol(v) {
			p.error(p.pos, "invalid symbol "+v)
			return
		}
		p.useSymbol(v)
		p.write(0)
	default:
		p.compute(s)
	}
}

// compute compiles a C-instruction dest=comp;jump.
func (p *parser) compute(s string) {
	var dest, jump uint16
	if n := strings.IndexByte(s, '='); n >= 0 {
		d, ok := destIndex[s[:n]]
		if !ok || n == 0 {
			p.error(p.pos, "invalid destination "+s[:n])
			return
		}
		dest = d
		s = s[n+1:]
	}
	if n := strings.IndexByte(s, ';'); n >= 0 {
		j, ok := jumpIndex[s[n+1:]]
		if !ok || n == len(s)-1 {
			p.error(p.pos, "invalid jump "+s[n+1:])
			return
		}
		jump = j
		s = s[:n]
	}
	c, ok := compIndex[s]
	if !ok {
		p.error(p.pos, "invalid computation "+strconv.Quote(s))
		return
	}
	p.write(vm.InsC | c<<vm.CompShift | dest<<vm.DestShift | jump)
}

// resolve patches A-instructions referencing symbols. Symbols that are
// neither predefined nor labels are variables, allocated in RAM from address
// 16 in order of first use.
func (p *parser) resolve() {
	next := varBase
	for _, n := range p.order {
		var v int
		if a, ok := predefined[n]; ok {
			v = a
		} else if l, ok := p.labels[n]; ok {
			v = l.address
		} else {
			v = next
			next++
			if v > vm.MaxA {
				p.error(p.uses[n][0].pos, "out of variable space: "+n)
				continue
			}
		}
		for _, u := range p.uses[n] {
			p.rom[u.address] = vm.Word(v)
		}
	}
}
