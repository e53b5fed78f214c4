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

import "strconv"

// Fixed RAM windows of the pointer and temp segments.
const (
	pointerBase = 3
	tempBase    = 5
)

// scratch is only valid within a single command.
const scratch = "@R13"

// base registers of the indirect segments.
var baseRegisters = [...]string{
	Argument: "@ARG",
	Local:    "@LCL",
	This:     "@THIS",
	That:     "@THAT",
}

func at(n int) string {
	return "@" + strconv.Itoa(n)
}

// direct returns the A-instruction addressing element index of a segment with
// a fixed address, or "" for indirect segments.
func (g *Generator) direct(s Segment, index int) string {
	switch s {
	case Static:
		return "@" + g.unit + ".static." + strconv.Itoa(index)
	case Pointer:
		return at(pointerBase + index)
	case Temp:
		return at(tempBase + index)
	}
	return ""
}

// pushD pushes the value in D.
func pushD(c *code) {
	c.emit(
		"@SP",
		"A=M",
		"M=D",
		"@SP",
		"M=M+1",
	)
}

func (g *Generator) push(c *code, s Segment, index int) {
	switch s {
	case Argument, Local, This, That:
		c.emit(
			baseRegisters[s],
			"D=M",
			at(index),
			"A=D+A",
			"D=M",
		)
	case Static, Pointer, Temp:
		c.emit(
			g.direct(s, index),
			"D=M",
		)
	case Constant:
		c.emit(
			at(index),
			"D=A",
		)
	default:
		panic("unhandled segment " + s.String())
	}
	pushD(c)
}

// pop computes the destination address first, then moves the top of the stack
// there and only then decrements SP.
func (g *Generator) pop(c *code, s Segment, index int) {
	switch s {
	case Argument, Local, This, That:
		c.emit(
			baseRegisters[s],
			"D=M",
			at(index),
			"D=D+A",
			scratch,
			"M=D",
			"@SP",
			"A=M-1",
			"D=M",
			scratch,
			"A=M",
			"M=D",
		)
	case Static, Pointer, Temp:
		c.emit(
			"@SP",
			"A=M-1",
			"D=M",
			g.direct(s, index),
			"M=D",
		)
	default:
		// Parse rejects pop constant
		panic("cannot pop to segment " + s.String())
	}
	c.emit(
		"@SP",
		"M=M-1",
	)
}
