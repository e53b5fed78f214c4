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

var operators = map[Kind]string{
	Add: "D=D+M",
	Sub: "D=D-M",
	And: "D=D&M",
	Or:  "D=D|M",
	Neg: "M=-M",
	Not: "M=!M",
}

var conditions = map[Kind]string{
	Eq: "D;JEQ",
	Gt: "D;JGT",
	Lt: "D;JLT",
}

// operands pops y into the scratch cell, then loads x, the new top of stack,
// into D. M is left pointing at y.
func operands(c *code) {
	c.emit(
		"@SP",
		"A=M-1",
		"D=M",
		scratch,
		"M=D",
		"@SP",
		"M=M-1",
		"@SP",
		"A=M-1",
		"D=M",
		scratch,
	)
}

// top points A at the top of the stack.
func top(c *code) {
	c.emit(
		"@SP",
		"A=M-1",
	)
}

func binary(c *code, k Kind) {
	operands(c)
	c.emit(operators[k])
	top(c)
	c.emit("M=D")
}

func unary(c *code, k Kind) {
	top(c)
	c.emit(operators[k])
}

// compare computes D = x - y and replaces x with -1 if the condition holds, 0
// otherwise.
func (g *Generator) compare(c *code, k Kind) {
	onTrue, end := g.labels.next(k)
	operands(c)
	c.emit(
		"D=D-M",
		"@"+onTrue,
		conditions[k],
	)
	top(c)
	c.emit(
		"M=0",
		"@"+end,
		"0;JMP",
		"("+onTrue+")",
	)
	top(c)
	c.emit(
		"M=-1",
		"("+end+")",
	)
}
