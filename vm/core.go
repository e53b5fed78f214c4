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

import "github.com/pkg/errors"

// ErrCycleLimit is returned (wrapped) by Run when the limit set with the
// MaxCycles option has been reached.
var ErrCycleLimit = errors.New("cycle limit reached")

// Run starts execution of the program at the current PC.
//
// Execution stops without error when the PC runs past the end of the ROM. If
// an error occurs, the PC will point to the instruction that triggered the
// error.
//
// Memory accesses out of the RAM bounds are reported as errors. Note that a
// C-instruction only accesses RAM[A] if its comp field reads M or its dest
// field writes M, so that A may hold any value when used as a jump address.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, A=%d, D=%d", i.PC, len(i.ROM), i.A, i.D)
			default:
				panic(e)
			}
		}
	}()
	i.cycles = 0
	for i.PC >= 0 && i.PC < len(i.ROM) {
		if i.maxCycles > 0 && i.cycles >= i.maxCycles {
			return errors.Wrapf(ErrCycleLimit, "@pc=%d", i.PC)
		}
		ins := uint16(i.ROM[i.PC])
		if ins&InsA == 0 {
			i.A = Word(ins)
			i.PC++
			i.cycles++
			continue
		}
		if ins&InsC != InsC {
			return errors.Errorf("illegal instruction %016b @pc=%d", ins, i.PC)
		}
		addr := int(uint16(i.A))
		y := i.A
		if ins&ABit != 0 {
			y = i.RAM[addr]
		}
		out := alu(i.D, y, (ins&CompMask)>>CompShift)
		dest := (ins & DestMask) >> DestShift
		if dest&DestM != 0 {
			i.RAM[addr] = out
		}
		if dest&DestD != 0 {
			i.D = out
		}
		if dest&DestA != 0 {
			i.A = out
		}
		if jump(out, ins&JumpMask) {
			i.PC = addr
		} else {
			i.PC++
		}
		i.cycles++
	}
	return nil
}
