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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/hackvm/codegen"
	"github.com/db47h/hackvm/lang/vmstack"
	"github.com/pkg/errors"
)

func TestTranslate(t *testing.T) {
	src := `// adds two numbers

push constant 7   // x
	push constant 5
add
`
	lines, err := translate("test.vm", "Test", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	var cmds []string
	for _, l := range lines {
		if strings.HasPrefix(l, "// ") {
			cmds = append(cmds, l[3:])
		}
	}
	if strings.Join(cmds, ",") != "push constant 7,push constant 5,add" {
		t.Errorf("unexpected commands: %q", cmds)
	}

	_, err = translate("test.vm", "Test", strings.NewReader("push constant 1\n\npop constant 2\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "test.vm:3: ") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, ok := errors.Cause(err).(*codegen.SyntaxError); !ok {
		t.Errorf("expected *codegen.SyntaxError, got %T", errors.Cause(err))
	}
}

func TestTranslateFiles_badUnit(t *testing.T) {
	name := filepath.Join(t.TempDir(), "my-prog.vm")
	if err := os.WriteFile(name, []byte("push constant 1\npop static 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := translateFiles([]string{name})
	if err == nil {
		t.Fatal("expected error for file my-prog.vm")
	}
	if !strings.HasPrefix(err.Error(), name+": invalid unit name") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnitName(t *testing.T) {
	for _, s := range [][2]string{
		{"Foo.vm", "Foo"},
		{"dir/Bar.vm", "Bar"},
		{"Baz", "Baz"},
	} {
		if n := unitName(s[0]); n != s[1] {
			t.Errorf("%s: expected %q, got %q", s[0], s[1], n)
		}
	}
}

func TestSources(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Prog")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"B.vm", "A.vm", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("add\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := sources([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "A.vm" || filepath.Base(files[1]) != "B.vm" {
		t.Errorf("unexpected files: %v", files)
	}
	out, err := defaultOutput([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if exp := filepath.Join(dir, "Prog.asm"); out != exp {
		t.Errorf("expected %s, got %s", exp, out)
	}
	out, err = defaultOutput([]string{files[0]})
	if err != nil {
		t.Fatal(err)
	}
	if exp := filepath.Join(dir, "A.asm"); out != exp {
		t.Errorf("expected %s, got %s", exp, out)
	}
	if _, err = defaultOutput(files); err == nil {
		t.Error("expected error with multiple inputs")
	}

	empty := t.TempDir()
	if _, err = sources([]string{empty}); err == nil {
		t.Error("expected error for directory without .vm files")
	}
}

func TestBaseList(t *testing.T) {
	b := baseList(vmstack.DefaultBases)
	for _, s := range []string{"sp=261", "local=1000", "THAT=2048"} {
		if err := b.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	exp := "sp=261,local=1000,argument=400,this=3000,that=2048"
	if s := b.String(); s != exp {
		t.Errorf("expected %s, got %s", exp, s)
	}
	for _, s := range []string{"sp", "static=16", "sp=40000", "sp=x"} {
		if err := b.Set(s); err == nil {
			t.Errorf("%s: expected error", s)
		}
	}
}
