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

package codegen

import (
	"strconv"
	"strings"
)

// labels allocates branch labels for comparisons.
type labels struct {
	unit string
	eq   int
	gt   int
	lt   int
}

// next returns a fresh label pair for comparison k and advances its counter.
func (l *labels) next(k Kind) (onTrue, end string) {
	var n *int
	switch k {
	case Eq:
		n = &l.eq
	case Gt:
		n = &l.gt
	case Lt:
		n = &l.lt
	default:
		panic("no labels for command " + k.String())
	}
	prefix := l.unit + "." + strings.ToUpper(k.String()) + "."
	suffix := "." + strconv.Itoa(*n)
	*n++
	return prefix + "true" + suffix, prefix + "end" + suffix
}
