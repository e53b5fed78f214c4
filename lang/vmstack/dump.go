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

package vmstack

import (
	"io"
	"strconv"

	"github.com/db47h/hackvm/internal/iox"
	"github.com/db47h/hackvm/vm"
)

const tempBase, tempSize = 5, 8

func dumpSlice(w io.Writer, prefix byte, a []vm.Word) error {
	var err error
	l := len(a) - 1
	b := make([]byte, 0, 8)
	b = append(b, prefix)
	if l >= 0 {
		for i := 0; i < l; i++ {
			b = strconv.AppendInt(b, int64(a[i]), 10)
			b = append(b, ' ')
			_, err = w.Write(b)
			if err != nil {
				return err
			}
			b = b[:0]
		}
		b = strconv.AppendInt(b, int64(a[l]), 10)
	}
	_, err = w.Write(b)
	return err
}

// Dump dumps the stack, the SP, LCL, ARG, THIS and THAT registers and the temp
// segment to the specified io.Writer. Each section is preceded by a control
// character (0x1C for the stack, 0x1D for the others) so that the output can
// easily be split by test harnesses.
func Dump(i *vm.Instance, w io.Writer) error {
	err := dumpSlice(w, '\x1C', Stack(i))
	if err != nil {
		return err
	}
	err = dumpSlice(w, '\x1D', i.RAM[vm.SP:vm.THAT+1])
	if err != nil {
		return err
	}
	return dumpSlice(w, '\x1D', i.RAM[tempBase:tempBase+tempSize])
}

// Format writes a human readable view of the stack and registers to w, wrapping
// lines at width columns. A width <= 0 means no wrapping.
func Format(i *vm.Instance, w io.Writer, width int) error {
	ew := iox.NewErrWriter(w)
	section := func(name string, a []vm.Word) {
		io.WriteString(ew, name)
		col := len(name)
		for _, v := range a {
			s := strconv.Itoa(int(v))
			if width > 0 && col+1+len(s) > width {
				io.WriteString(ew, "\n       ")
				col = 7
			}
			io.WriteString(ew, " ")
			io.WriteString(ew, s)
			col += 1 + len(s)
		}
		ew.Write([]byte{'\n'})
	}
	section("stack:", Stack(i))
	io.WriteString(ew, "SP: "+strconv.Itoa(int(i.RAM[vm.SP])))
	io.WriteString(ew, " LCL: "+strconv.Itoa(int(i.RAM[vm.LCL])))
	io.WriteString(ew, " ARG: "+strconv.Itoa(int(i.RAM[vm.ARG])))
	io.WriteString(ew, " THIS: "+strconv.Itoa(int(i.RAM[vm.THIS])))
	io.WriteString(ew, " THAT: "+strconv.Itoa(int(i.RAM[vm.THAT]))+"\n")
	section("temp: ", i.RAM[tempBase:tempBase+tempSize])
	return ew.Err
}
