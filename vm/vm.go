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

// Word is the raw type stored in a RAM or ROM location.
type Word int16

const (
	ramSize = KBD + 1
	romSize = MaxA + 1
)

// Instance represents a Hack CPU with its RAM and ROM.
type Instance struct {
	PC        int    // Program Counter
	A         Word   // Address register
	D         Word   // Data register
	RAM       []Word // Data memory
	ROM       []Word // Instruction memory
	maxCycles int64
	cycles    int64
}

// Option interface
type Option func(*Instance) error

// RAMSize sets the RAM size in words. Existing content is preserved up to the
// new size. The default is 24577 words (up to and including the keyboard
// register).
func RAMSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 || size > romSize {
			return errors.Errorf("invalid RAM size %d", size)
		}
		if size <= len(i.RAM) {
			i.RAM = i.RAM[:size]
		} else {
			t := make([]Word, size)
			copy(t, i.RAM)
			i.RAM = t
		}
		return nil
	}
}

// MaxCycles limits the number of instructions executed by a single call to
// Run. Run returns an error wrapping ErrCycleLimit when the limit is reached.
// A value <= 0 means no limit, which is the default.
func MaxCycles(n int64) Option {
	return func(i *Instance) error {
		i.maxCycles = n
		return nil
	}
}

// Poke sets RAM[addr] to v.
func Poke(addr int, v Word) Option {
	return func(i *Instance) error {
		if addr < 0 || addr >= len(i.RAM) {
			return errors.Errorf("poke: address %d out of range", addr)
		}
		i.RAM[addr] = v
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Hack CPU instance that will execute the given program.
//
// The rom slice is used as is, not copied. Options will be set by calling
// SetOptions, in order. This means that a Poke following a RAMSize option
// applies to the resized RAM.
func New(rom []Word, opts ...Option) (*Instance, error) {
	if len(rom) > romSize {
		return nil, errors.Errorf("program too large: %d words", len(rom))
	}
	i := &Instance{
		ROM: rom,
		RAM: make([]Word, ramSize),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Cycles returns the number of instructions executed by the last call to Run.
func (i *Instance) Cycles() int64 {
	return i.cycles
}

// Peek returns the content of RAM at address addr.
func (i *Instance) Peek(addr int) Word {
	return i.RAM[addr]
}
