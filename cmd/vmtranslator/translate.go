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

package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/hackvm/codegen"
	"github.com/pkg/errors"
)

const ext = ".vm"

// sources expands directories in args to the .vm files they contain, in
// lexical order.
func sources(args []string) ([]string, error) {
	var files []string
	for _, a := range args {
		st, err := os.Stat(a)
		if err != nil {
			return nil, errors.Wrap(err, "stat failed")
		}
		if !st.IsDir() {
			files = append(files, a)
			continue
		}
		entries, err := os.ReadDir(a)
		if err != nil {
			return nil, errors.Wrap(err, "readdir failed")
		}
		n := len(files)
		for _, e := range entries {
			if !e.IsDir() && filepath.Ext(e.Name()) == ext {
				files = append(files, filepath.Join(a, e.Name()))
			}
		}
		if len(files) == n {
			return nil, errors.Errorf("%s: no %s files found", a, ext)
		}
	}
	return files, nil
}

// defaultOutput returns foo.asm for foo.vm and dir/dir.asm for a directory.
func defaultOutput(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("-o is required with multiple inputs")
	}
	a := filepath.Clean(args[0])
	st, err := os.Stat(a)
	if err != nil {
		return "", errors.Wrap(err, "stat failed")
	}
	if st.IsDir() {
		abs, err := filepath.Abs(a)
		if err != nil {
			return "", errors.Wrap(err, "abs failed")
		}
		return filepath.Join(a, filepath.Base(abs)+".asm"), nil
	}
	return strings.TrimSuffix(a, filepath.Ext(a)) + ".asm", nil
}

// unitName returns the file name without directory and extension.
func unitName(fileName string) string {
	b := filepath.Base(fileName)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

// translate translates the commands read from r with a fresh generator.
// Comments (// to end of line) and blank lines are skipped.
func translate(name, unit string, r io.Reader) ([]string, error) {
	if err := codegen.ValidUnit(unit); err != nil {
		return nil, errors.Wrap(err, name)
	}
	var out []string
	g := codegen.New(unit)
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		cmd := s.Text()
		if n := strings.Index(cmd, "//"); n >= 0 {
			cmd = cmd[:n]
		}
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}
		lines, err := g.Translate(cmd)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, line)
		}
		out = append(out, lines...)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return out, nil
}

func translateFiles(files []string) ([]string, error) {
	var out []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "open failed")
		}
		lines, err := translate(name, unitName(name), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}
