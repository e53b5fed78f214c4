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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read reads a program in the .hack text format: one instruction per line,
// written as 16 binary digits. Blank lines are ignored.
func Read(r io.Reader) ([]Word, error) {
	var rom []Word
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			continue
		}
		if len(t) != 16 {
			return nil, errors.Errorf("line %d: expected 16 binary digits, got %q", line, t)
		}
		v, err := strconv.ParseUint(t, 2, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(rom) >= romSize {
			return nil, errors.Errorf("line %d: program too large", line)
		}
		rom = append(rom, Word(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return rom, nil
}

// Write writes a program in the .hack text format.
func Write(w io.Writer, rom []Word) error {
	bw := bufio.NewWriter(w)
	b := make([]byte, 0, 17)
	for _, v := range rom {
		b = b[:0]
		for bit := 15; bit >= 0; bit-- {
			b = append(b, '0'+byte(uint16(v)>>uint(bit)&1))
		}
		b = append(b, '\n')
		if _, err := bw.Write(b); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

// Load loads a program from the .hack file fileName.
func Load(fileName string) ([]Word, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	rom, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return rom, nil
}

// Save saves a program to the .hack file fileName.
func Save(fileName string, rom []Word) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
	}()
	return Write(f, rom)
}
