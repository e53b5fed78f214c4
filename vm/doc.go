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

// Package vm implements an emulator for the Hack computer.
//
// The Hack CPU has two 16 bits registers, A and D, and a program counter. The
// program lives in a read-only instruction memory (ROM), data lives in RAM.
// Any instruction that references M reads or writes RAM[A].
//
// There are only two kinds of instructions:
//
//	0vvv vvvv vvvv vvvv	A-instruction: load the 15 bits value v into A.
//	111a cccc ccdd djjj	C-instruction: compute comp, store it in the
//				destinations dest and optionally jump to ROM[A].
//
// The comp field is made of the a bit (select M instead of A as the second ALU
// operand) and the six ALU control bits zx, nx, zy, ny, f and no. The emulator
// implements the ALU from these bits rather than from a table of mnemonics, so
// that any bit combination yields the same result as the hardware.
//
// The emulator does not implement the screen or keyboard memory maps beyond
// plain RAM cells. Execution stops when the program counter runs past the end
// of the ROM.
package vm
