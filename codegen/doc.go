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

// Package codegen translates stack VM commands into Hack assembly.
//
// Supported commands:
//
//	command		stack	description
//	-------		-----	-----------------------------------------------
//	add		xy-z	z = x + y
//	sub		xy-z	z = x - y
//	neg		x-z	z = -x
//	eq		xy-b	b = x == y
//	gt		xy-b	b = x > y
//	lt		xy-b	b = x < y
//	and		xy-z	z = x & y (bitwise)
//	or		xy-z	z = x | y (bitwise)
//	not		x-z	z = ^x (bitwise)
//	push seg i	-x	push the value of segment seg at index i
//	pop seg i	x-	pop the top of the stack into segment seg at index i
//
// Booleans are encoded as 0 (false) and -1 (true, all bits set).
//
// eq, gt and lt compare the sign of x - y computed on 16 bits. When the
// subtraction overflows, the result is wrong: push constant 32767, push
// constant 1, neg, gt yields false.
//
// Segments:
//
//	segment		address of element i
//	-------		--------------------
//	argument	RAM[ARG] + i
//	local		RAM[LCL] + i
//	this		RAM[THIS] + i
//	that		RAM[THAT] + i
//	pointer		3 + i
//	temp		5 + i
//	static		the variable {unit}.static.{i}
//	constant	none: push constant i pushes the value i, pop is illegal
//
// Indices are not range checked. The assembler only accepts constants up to
// 32767, so push constant i with i > 32767, and pointer or temp indices that
// take the address past 32767, produce assembly that cannot be assembled.
//
// Register usage:
//
// The stack pointer lives in RAM[SP] and addresses the cell just above the top
// of the stack. R13 is used as a scratch cell within a single command. Its
// content is undefined between commands. R14 and R15 are not used.
//
// Labels:
//
// Each comparison command allocates a pair of labels {unit}.{EQ,GT,LT}.true.{n}
// and {unit}.{EQ,GT,LT}.end.{n}, with one counter per comparison kind and per
// Generator. Static variables and labels are prefixed with the translation
// unit name, so that the output of several generators with distinct unit
// names can be concatenated.
//
// Function calls and program flow (label, goto, if-goto, function, call,
// return) are not supported and rejected with a SyntaxError.
package codegen
