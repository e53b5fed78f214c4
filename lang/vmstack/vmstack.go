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

// Package vmstack provides utility functions and types that enable running
// translated stack VM programs on the Hack emulator.
package vmstack

import (
	"strings"

	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/codegen"
	"github.com/db47h/hackvm/vm"
	"github.com/pkg/errors"
)

// StackBase is the RAM address of the bottom of the stack.
const StackBase = 256

// Bases holds the initial values of the stack pointer and segment base
// registers.
type Bases struct {
	SP, LCL, ARG, THIS, THAT vm.Word
}

// DefaultBases are the register values used when none are specified.
var DefaultBases = Bases{
	SP:   StackBase,
	LCL:  300,
	ARG:  400,
	THIS: 3000,
	THAT: 3010,
}

// Set sets the register for the given segment or register name. Accepted names
// are sp, local, argument, this and that, or their register names SP, LCL,
// ARG, THIS and THAT.
func (b *Bases) Set(name string, v vm.Word) error {
	switch name {
	case "sp", "SP":
		b.SP = v
	case "local", "LCL":
		b.LCL = v
	case "argument", "ARG":
		b.ARG = v
	case "this", "THIS":
		b.THIS = v
	case "that", "THAT":
		b.THAT = v
	default:
		return errors.Errorf("unknown segment or register %q", name)
	}
	return nil
}

// Setup returns a vm.Option that initializes the stack pointer and segment
// base registers.
func Setup(b Bases) vm.Option {
	return func(i *vm.Instance) error {
		return i.SetOptions(
			vm.Poke(vm.SP, b.SP),
			vm.Poke(vm.LCL, b.LCL),
			vm.Poke(vm.ARG, b.ARG),
			vm.Poke(vm.THIS, b.THIS),
			vm.Poke(vm.THAT, b.THAT),
		)
	}
}

// Stack returns the stack, bottom first. Note that value changes will be
// reflected in the instance's RAM.
func Stack(i *vm.Instance) []vm.Word {
	sp := int(i.RAM[vm.SP])
	if sp <= StackBase || sp > len(i.RAM) {
		return nil
	}
	return i.RAM[StackBase:sp]
}

// Push pushes v on top of the stack. It fails if SP does not address a RAM
// cell.
func Push(i *vm.Instance, v vm.Word) error {
	sp := int(i.RAM[vm.SP])
	if sp < 0 || sp >= len(i.RAM) {
		return errors.Errorf("stack pointer out of range: %d", sp)
	}
	i.RAM[sp] = v
	i.RAM[vm.SP] = vm.Word(sp + 1)
	return nil
}

// Assemble translates the commands of the translation unit unit and assembles
// the result.
func Assemble(unit string, cmds []string) ([]vm.Word, error) {
	lines, err := codegen.New(unit).Generate(cmds)
	if err != nil {
		return nil, err
	}
	rom, err := asm.Assemble(unit, strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return nil, errors.Wrap(err, "assembly failed")
	}
	return rom, nil
}

// Exec translates, assembles and runs the given commands. Options are applied
// after the default bases have been set, so that a Setup option will override
// them.
func Exec(unit string, cmds []string, opts ...vm.Option) (*vm.Instance, error) {
	rom, err := Assemble(unit, cmds)
	if err != nil {
		return nil, err
	}
	i, err := vm.New(rom, append([]vm.Option{Setup(DefaultBases)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return i, i.Run()
}
