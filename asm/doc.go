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

// Package asm provides utility functions to assemble and disassemble Hack
// machine code.
//
// Instructions:
//
// Each line holds at most one instruction. White space within a line is
// ignored, so "D = M ; JGT" is the same as "D=M;JGT".
//
//	@value		A-instruction: A = value, 0 <= value <= 32767
//	@symbol		A-instruction: A = address of symbol
//	dest=comp;jump	C-instruction, either of dest= or ;jump may be omitted
//	(LABEL)		declares LABEL as the address of the next instruction
//
//	dest	M D MD A AM AD AMD (register order does not matter)
//	jump	JGT JEQ JGE JLT JNE JLE JMP
//	comp	0 1 -1 D A !D !A -D -A D+1 A+1 D-1 A-1 D+A D-A A-D D&A D|A
//		M !M -M M+1 M-1 D+M D-M M-D D&M D|M
//
// Commutative operations may be written with their operands swapped (A+D, M&D,
// 1+M, ...).
//
// Comments:
//
// Comments start with // and run to the end of the line. C style /* */
// comments are accepted as well.
//
// Symbols:
//
// A symbol is any sequence of letters, digits, underscore (_), dot (.), dollar
// sign ($) and colon (:) that does not begin with a digit. Predefined symbols
// are:
//
//	SP LCL ARG THIS THAT	0 1 2 3 4
//	R0 - R15		0 - 15
//	SCREEN			16384
//	KBD			24576
//
// Symbols that are neither predefined nor declared as labels anywhere in the
// source are variables. Variables are allocated RAM addresses from 16 upwards,
// in order of first appearance.
package asm
