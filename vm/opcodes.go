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

package vm

// Hack instruction fields.
const (
	InsC      uint16 = 0xE000 // C-instruction prefix (111)
	InsA      uint16 = 0x8000 // set for any C-instruction, clear for A-instructions
	ABit      uint16 = 0x1000 // comp reads M instead of A
	CompShift        = 6
	DestShift        = 3
	CompMask  uint16 = 0x7F << CompShift // a bit + ALU control bits
	DestMask  uint16 = 0x7 << DestShift
	JumpMask  uint16 = 0x7
	MaxA             = 0x7FFF // largest A-instruction literal
)

// Destination bits.
const (
	DestM uint16 = 1 << iota
	DestD
	DestA
)

// Jump bits.
const (
	JumpGT uint16 = 1 << iota
	JumpEQ
	JumpLT
)

// ALU control bits, as found in the comp field once shifted by CompShift.
const (
	aluNo uint16 = 1 << iota
	aluF
	aluNy
	aluZy
	aluNx
	aluZx
)

// Well known RAM addresses.
const (
	SP     = 0
	LCL    = 1
	ARG    = 2
	THIS   = 3
	THAT   = 4
	SCREEN = 0x4000
	KBD    = 0x6000
)

// alu computes the output of the Hack ALU for inputs x, y and control bits c.
func alu(x, y Word, c uint16) Word {
	if c&aluZx != 0 {
		x = 0
	}
	if c&aluNx != 0 {
		x = ^x
	}
	if c&aluZy != 0 {
		y = 0
	}
	if c&aluNy != 0 {
		y = ^y
	}
	var out Word
	if c&aluF != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if c&aluNo != 0 {
		out = ^out
	}
	return out
}

func jump(out Word, j uint16) bool {
	return j&JumpLT != 0 && out < 0 ||
		j&JumpEQ != 0 && out == 0 ||
		j&JumpGT != 0 && out > 0
}
