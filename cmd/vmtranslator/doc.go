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

// The vmtranslator command translates stack VM programs into Hack assembly,
// using the package github.com/db47h/hackvm/codegen.
//
// Usage:
//
//	vmtranslator [options] file.vm|dir ...
//
//	-base segment=address
//		  initial segment=address for -run (sp, local, argument, this,
//		  that; can be specified multiple times)
//	-cycles int
//		  maximum number of instructions executed by -run (0 for no
//		  limit) (default 1000000)
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump stack and registers after -run
//	-hack filename
//		  assemble the output and save the binary to filename
//	-list
//		  print a disassembly listing of the assembled output
//	-o filename
//		  write assembly to filename (- for stdout)
//	-run
//		  assemble and run the output on the Hack emulator
//
// Each .vm file is a translation unit named after the file (without directory
// and extension). Directories are expanded to the .vm files they contain, in
// lexical order. The output of all units is concatenated in order of
// appearance.
//
// Without -o, foo.vm is translated to foo.asm and a directory dir to
// dir/dir.asm. With several inputs, -o is mandatory.
//
// Comments (from // to the end of the line) and blank lines are ignored.
//
// -run: assembles the output and runs it on the Hack emulator until the
// program counter runs past the end of the program. SP, LCL, ARG, THIS and THAT
// are initialized to 256, 300, 400, 3000 and 3010 unless overridden with
// -base.
//
// -dump: after -run, dumps the stack, the SP, LCL, ARG, THIS and THAT registers
// and the temp segment to stdout. If stdout is a terminal, the output is
// formatted for humans. Otherwise each section is prefixed with a control
// character (0x1C for the stack, 0x1D for the others) for use by test scripts.
//
// -debug: will print a full stacktrace on errors, and the CPU state if the
// emulator was running.
package main
