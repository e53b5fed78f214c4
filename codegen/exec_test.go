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

package codegen_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/codegen"
	"github.com/db47h/hackvm/lang/vmstack"
	"github.com/db47h/hackvm/vm"
)

type W []vm.Word

func exec(t *testing.T, name string, cmds []string, opts ...vm.Option) *vm.Instance {
	i, err := vmstack.Exec(name, cmds, opts...)
	if err != nil {
		t.Fatalf("%s: %+v", name, err)
	}
	return i
}

func checkStack(t *testing.T, name string, i *vm.Instance, expected W) {
	stk := vmstack.Stack(i)
	diff := len(stk) != len(expected)
	if !diff {
		for n := range expected {
			if stk[n] != expected[n] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%s: stack error: expected %d, got %d\n%s", name, expected, stk, spew.Sdump(i.RAM[:16]))
	}
}

var tests = [...]struct {
	name  string
	code  string
	stack W
}{
	{"push", "push constant 7 push constant 32767", W{7, 32767}},
	{"add", "push constant 7 push constant 5 add", W{12}},
	{"sub", "push constant 7 push constant 5 sub", W{2}},
	{"sub negative", "push constant 5 push constant 7 sub", W{-2}},
	{"neg", "push constant 5 neg push constant 0 neg", W{-5, 0}},
	{"and", "push constant 12 push constant 10 and", W{8}},
	{"or", "push constant 12 push constant 10 or", W{14}},
	{"not", "push constant 0 not push constant 5 not", W{-1, -6}},
	{"eq true", "push constant 5 push constant 5 eq", W{-1}},
	{"eq false", "push constant 5 push constant 3 eq", W{0}},
	{"gt true", "push constant 5 push constant 3 gt", W{-1}},
	{"gt false", "push constant 3 push constant 5 gt", W{0}},
	{"gt equal", "push constant 5 push constant 5 gt", W{0}},
	{"lt true", "push constant 3 push constant 5 lt", W{-1}},
	{"lt false", "push constant 5 push constant 3 lt", W{0}},
	{"lt negative", "push constant 5 neg push constant 3 lt", W{-1}},
	{"gt overflow", "push constant 32767 push constant 1 neg gt", W{0}},
	{"bool and", "push constant 1 push constant 1 eq push constant 2 push constant 1 gt and", W{-1}},
	{"bool or", "push constant 1 push constant 2 eq push constant 2 push constant 1 lt or", W{0}},
	{"bool not", "push constant 1 push constant 1 eq not", W{0}},
	{"static", "push constant 42 pop static 3 push constant 1 push static 3", W{1, 42}},
	{"temp", "push constant 42 pop temp 6 push temp 6 push constant 1 pop temp 0 push temp 0", W{42, 1}},
	{"pointer", "push constant 5000 pop pointer 0 push constant 17 pop this 2 push pointer 0 push this 2", W{5000, 17}},
	{"that", "push constant 6000 pop pointer 1 push constant 9 pop that 1 push that 1", W{9}},
	{"local", "push constant 11 pop local 0 push constant 22 pop local 1 push local 0 push local 1 sub", W{-11}},
	{"argument", "push constant 8 pop argument 3 push argument 3 push argument 3 add", W{16}},
	{"many", "push constant 1 push constant 2 push constant 3 push constant 4 add add add", W{10}},
}

func commands(code string) []string {
	f := strings.Fields(code)
	var cmds []string
	for n := 0; n < len(f); n++ {
		if f[n] == "push" || f[n] == "pop" {
			cmds = append(cmds, strings.Join(f[n:n+3], " "))
			n += 2
		} else {
			cmds = append(cmds, f[n])
		}
	}
	return cmds
}

func TestExec(t *testing.T) {
	for _, test := range tests {
		i := exec(t, strings.Replace(test.name, " ", "_", -1), commands(test.code))
		checkStack(t, test.name, i, test.stack)
	}
}

// push local 2 followed by pop argument 2 copies RAM[302] to RAM[402] without
// touching any other local or argument slot.
func TestExec_segments(t *testing.T) {
	const v = 1234
	var opts []vm.Option
	for n := 0; n < 8; n++ {
		opts = append(opts, vm.Poke(300+n, vm.Word(100+n)), vm.Poke(400+n, vm.Word(200+n)))
	}
	opts = append(opts, vm.Poke(302, v))
	i := exec(t, "Segments", []string{"push local 2", "pop argument 2"}, opts...)
	if i.RAM[402] != v {
		t.Errorf("expected RAM[402] = %d, got %d", v, i.RAM[402])
	}
	for n := 0; n < 8; n++ {
		if n != 2 && i.RAM[300+n] != vm.Word(100+n) {
			t.Errorf("local %d perturbed: %d", n, i.RAM[300+n])
		}
		if n != 2 && i.RAM[400+n] != vm.Word(200+n) {
			t.Errorf("argument %d perturbed: %d", n, i.RAM[400+n])
		}
	}
	if i.RAM[302] != v {
		t.Errorf("local 2 perturbed: %d", i.RAM[302])
	}
	if sp := i.RAM[vm.SP]; sp != vmstack.StackBase {
		t.Errorf("expected SP = %d, got %d", vmstack.StackBase, sp)
	}
}

func TestExec_argumentIndex(t *testing.T) {
	i := exec(t, "Args", []string{"push constant 9", "pop argument 1"}, vm.Poke(402, 77))
	if i.RAM[401] != 9 {
		t.Errorf("expected RAM[401] = 9, got %d", i.RAM[401])
	}
	if i.RAM[402] != 77 {
		t.Errorf("argument 2 perturbed: %d", i.RAM[402])
	}
}

func TestExec_bases(t *testing.T) {
	b := vmstack.DefaultBases
	b.LCL = 1000
	i := exec(t, "Bases", []string{"push constant 3", "pop local 4"}, vmstack.Setup(b))
	if i.RAM[1004] != 3 {
		t.Errorf("expected RAM[1004] = 3, got %d", i.RAM[1004])
	}
}

// Static variables of distinct units live in distinct RAM cells when their
// code is concatenated.
func TestExec_units(t *testing.T) {
	foo, err := codegen.New("Foo").Generate([]string{"push constant 1", "pop static 0"})
	if err != nil {
		t.Fatal(err)
	}
	bar, err := codegen.New("Bar").Generate([]string{"push constant 2", "pop static 0", "push static 0", "push constant 2", "eq"})
	if err != nil {
		t.Fatal(err)
	}
	baz, err := codegen.New("Baz").Generate([]string{"push constant 2", "push constant 2", "eq", "push static 0"})
	if err != nil {
		t.Fatal(err)
	}
	code := strings.Join(append(append(foo, bar...), baz...), "\n")
	rom, err := asm.Assemble("units", strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(rom, vmstack.Setup(vmstack.DefaultBases))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	// Foo.static.0 and Bar.static.0 are the first two variables
	if i.RAM[16] != 1 || i.RAM[17] != 2 {
		t.Errorf("bad statics: %d, %d", i.RAM[16], i.RAM[17])
	}
	checkStack(t, "units", i, W{-1, -1, 0})
}

// effect returns the net stack pointer delta of a command.
func effect(cmd string) int {
	switch {
	case strings.HasPrefix(cmd, "push"):
		return 1
	case strings.HasPrefix(cmd, "pop"):
		return -1
	case cmd == "neg" || cmd == "not":
		return 0
	}
	return -1
}

func TestExec_stackDepth(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	binary := []string{"add", "sub", "and", "or", "eq", "gt", "lt"}
	unary := []string{"neg", "not"}
	segs := []string{"argument", "local", "this", "that", "static", "pointer", "temp"}
	for run := 0; run < 20; run++ {
		var cmds []string
		depth := 0
		for n := 0; n < 100; n++ {
			var cmd string
			switch k := r.Intn(4); {
			case depth < 2 || k == 0:
				seg := segs[r.Intn(len(segs))]
				if r.Intn(2) == 0 {
					seg = "constant"
				}
				cmd = "push " + seg + " " + strconv.Itoa(r.Intn(2))
			case k == 1:
				// pointer is not written to so that this/that keep pointing
				// at a safe place.
				seg := segs[r.Intn(len(segs))]
				if seg == "pointer" {
					seg = "temp"
				}
				cmd = "pop " + seg + " " + strconv.Itoa(r.Intn(2))
			case k == 2:
				cmd = binary[r.Intn(len(binary))]
			default:
				cmd = unary[r.Intn(len(unary))]
			}
			cmds = append(cmds, cmd)
			depth += effect(cmd)
		}
		i := exec(t, "Depth"+strconv.Itoa(run), cmds)
		if got := int(i.RAM[vm.SP]) - vmstack.StackBase; got != depth {
			t.Errorf("run %d: expected stack depth %d, got %d\n%s", run, depth, got, strings.Join(cmds, "\n"))
		}
	}
}

func TestExec_badUnit(t *testing.T) {
	if _, err := vmstack.Exec("my-prog", []string{"push constant 1", "pop static 0"}); err == nil {
		t.Fatal("expected error for unit my-prog")
	}
}
