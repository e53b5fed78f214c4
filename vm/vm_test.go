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

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/hackvm/vm"
)

func TestReadWrite(t *testing.T) {
	rom := []vm.Word{2, -1024, 0x7FFF, -0x8000}
	var b bytes.Buffer
	if err := vm.Write(&b, rom); err != nil {
		t.Fatal(err)
	}
	expected := "0000000000000010\n1111110000000000\n0111111111111111\n1000000000000000\n"
	if b.String() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, b.String())
	}
	got, err := vm.Read(strings.NewReader(b.String() + "\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rom) {
		t.Fatalf("expected %d words, got %d", len(rom), len(got))
	}
	for n := range rom {
		if got[n] != rom[n] {
			t.Errorf("word %d: expected %d, got %d", n, rom[n], got[n])
		}
	}
}

func TestRead_errors(t *testing.T) {
	for _, s := range []string{
		"000000000000001\n",
		"0000000000000012\n",
		"0000000000000010\n00000000000000100\n",
	} {
		if _, err := vm.Read(strings.NewReader(s)); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}
