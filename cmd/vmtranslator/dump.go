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

	"github.com/db47h/hackvm/lang/vmstack"
	"github.com/db47h/hackvm/vm"
)

// dumpVM writes the stack and registers to f. On a terminal the output is
// formatted for humans, otherwise it uses the separator based format of
// vmstack.Dump.
func dumpVM(i *vm.Instance, f *os.File) error {
	if !isTerminal(f) {
		return vmstack.Dump(i, f)
	}
	w, _ := consoleSize(f)
	return vmstack.Format(i, f, w)
}
