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
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/internal/iox"
	"github.com/db47h/hackvm/lang/vmstack"
	"github.com/db47h/hackvm/vm"
	"github.com/pkg/errors"
)

// baseList collects -base segment=address flags.
type baseList vmstack.Bases

func (b *baseList) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("sp=%d,local=%d,argument=%d,this=%d,that=%d", b.SP, b.LCL, b.ARG, b.THIS, b.THAT)
}

func (b *baseList) Set(s string) error {
	n := strings.IndexByte(s, '=')
	if n < 0 {
		return errors.Errorf("expected segment=address, got %q", s)
	}
	v, err := strconv.ParseInt(s[n+1:], 10, 16)
	if err != nil {
		return err
	}
	return (*vmstack.Bases)(b).Set(s[:n], vm.Word(v))
}

func (b *baseList) Get() interface{} { return vmstack.Bases(*b) }

var (
	debug        bool
	dump         bool
	run          bool
	list         bool
	outFileName  string
	hackFileName string
	cycles       int64
	bases        = baseList(vmstack.DefaultBases)
)

// machine state dumped in debug mode.
type state struct {
	PC     int
	A, D   vm.Word
	Cycles int64
	Stack  []vm.Word
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		spew.Fdump(os.Stderr, state{i.PC, i.A, i.D, i.Cycles(), vmstack.Stack(i)})
	}
	os.Exit(1)
}

func writeAsm(fileName string, lines []string) (err error) {
	var w io.Writer = os.Stdout
	if fileName != "-" {
		f, e := os.Create(fileName)
		if e != nil {
			return errors.Wrap(e, "create failed")
		}
		defer func() {
			if e := f.Close(); err == nil && e != nil {
				err = errors.Wrap(e, "close failed")
			}
		}()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err = iox.NewErrWriter(bw).WriteLines(lines); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.vm|dir ...\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var err error
	var i *vm.Instance

	defer func() {
		atExit(i, err)
	}()

	flag.Usage = usage
	flag.StringVar(&outFileName, "o", "", "write assembly to `filename` (- for stdout)")
	flag.StringVar(&hackFileName, "hack", "", "assemble the output and save the binary to `filename`")
	flag.BoolVar(&run, "run", false, "assemble and run the output on the Hack emulator")
	flag.BoolVar(&list, "list", false, "print a disassembly listing of the assembled output")
	flag.BoolVar(&dump, "dump", false, "dump stack and registers after -run")
	flag.Var(&bases, "base", "initial `segment=address` for -run (sp, local, argument, this, that; can be specified multiple times)")
	flag.Int64Var(&cycles, "cycles", 1000000, "maximum number of instructions executed by -run (0 for no limit)")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	files, err := sources(flag.Args())
	if err != nil {
		return
	}
	if outFileName == "" {
		if outFileName, err = defaultOutput(flag.Args()); err != nil {
			return
		}
	}
	lines, err := translateFiles(files)
	if err != nil {
		return
	}
	if err = writeAsm(outFileName, lines); err != nil {
		return
	}

	if !run && !list && hackFileName == "" {
		return
	}
	rom, err := asm.Assemble(outFileName, strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return
	}
	if hackFileName != "" {
		if err = vm.Save(hackFileName, rom); err != nil {
			return
		}
	}
	if list {
		if err = asm.DisassembleAll(rom, 0, os.Stdout); err != nil {
			return
		}
	}
	if !run {
		return
	}
	i, err = vm.New(rom, vmstack.Setup(vmstack.Bases(bases)), vm.MaxCycles(cycles))
	if err != nil {
		return
	}
	if err = i.Run(); err != nil {
		return
	}
	if dump {
		err = dumpVM(i, os.Stdout)
	}
}
