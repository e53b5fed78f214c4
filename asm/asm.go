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
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/hackvm/internal/iox"
	"github.com/db47h/hackvm/vm"
)

// comp mnemonics, indexed by the 7 bits a+c1..c6 field.
var comps = map[uint16][]string{
	0x2A: {"0"},
	0x3F: {"1"},
	0x3A: {"-1"},
	0x0C: {"D"},
	0x30: {"A"},
	0x0D: {"!D"},
	0x31: {"!A"},
	0x0F: {"-D"},
	0x33: {"-A"},
	0x1F: {"D+1", "1+D"},
	0x37: {"A+1", "1+A"},
	0x0E: {"D-1"},
	0x32: {"A-1"},
	0x02: {"D+A", "A+D"},
	0x13: {"D-A"},
	0x07: {"A-D"},
	0x00: {"D&A", "A&D"},
	0x15: {"D|A", "A|D"},
	0x70: {"M"},
	0x71: {"!M"},
	0x73: {"-M"},
	0x77: {"M+1", "1+M"},
	0x72: {"M-1"},
	0x42: {"D+M", "M+D"},
	0x53: {"D-M"},
	0x47: {"M-D"},
	0x40: {"D&M", "M&D"},
	0x55: {"D|M", "M|D"},
}

var dests = [...]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}

var jumps = [...]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

var (
	compIndex = make(map[string]uint16)
	destIndex = make(map[string]uint16)
	jumpIndex = make(map[string]uint16)
)

func init() {
	for c, ms := range comps {
		for _, m := range ms {
			compIndex[m] = c
		}
	}
	for i, d := range dests {
		destIndex[d] = uint16(i)
	}
	// accept any permutation of the destination registers
	destIndex["DM"] = vm.DestD | vm.DestM
	destIndex["MA"] = vm.DestA | vm.DestM
	destIndex["DA"] = vm.DestA | vm.DestD
	for _, d := range []string{"ADM", "MAD", "MDA", "DAM", "DMA"} {
		destIndex[d] = vm.DestA | vm.DestD | vm.DestM
	}
	for i, j := range jumps {
		jumpIndex[j] = uint16(i)
	}
}

// Assemble compiles Hack assembly read from the supplied io.Reader and returns
// the resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]vm.Word, error) {
	p := newParser()
	err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return p.rom, nil
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(rom []vm.Word, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*iox.ErrWriter)
	if ew == nil {
		ew = iox.NewErrWriter(w)
	}

	ins := uint16(rom[pc])
	switch {
	case ins&vm.InsA == 0:
		io.WriteString(ew, "@")
		io.WriteString(ew, strconv.Itoa(int(ins)))
	case ins&vm.InsC != vm.InsC:
		fmt.Fprintf(ew, "??? %016b", ins)
	default:
		c, ok := comps[(ins&vm.CompMask)>>vm.CompShift]
		if !ok {
			fmt.Fprintf(ew, "??? %016b", ins)
			break
		}
		if d := dests[(ins&vm.DestMask)>>vm.DestShift]; d != "" {
			io.WriteString(ew, d)
			ew.Write([]byte{'='})
		}
		io.WriteString(ew, c[0])
		if j := jumps[ins&vm.JumpMask]; j != "" {
			ew.Write([]byte{';'})
			io.WriteString(ew, j)
		}
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given slice
// to the specified io.Writer. The base argument specifies the real address of
// the first instruction (rom[0]). It will return any write error.
func DisassembleAll(rom []vm.Word, base int, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := 0; pc < len(rom); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(rom, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
