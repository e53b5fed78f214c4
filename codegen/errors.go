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

import "strconv"

// SyntaxError is the only error kind reported for malformed commands.
type SyntaxError struct {
	Cmd   string // raw command text
	Token string // offending token, empty if the whole command is at fault
	Msg   string
}

func (e *SyntaxError) Error() string {
	s := "syntax error at command " + strconv.Quote(e.Cmd) + ": " + e.Msg
	if e.Token != "" {
		s += " " + strconv.Quote(e.Token)
	}
	return s
}

func syntaxError(cmd, token, msg string) error {
	return &SyntaxError{Cmd: cmd, Token: token, Msg: msg}
}
