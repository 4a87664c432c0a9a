// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/edienergy/ediguide/raw"
)

// ErrSyntax is a sentinel error returned (wrapped) by Parse whenever the
// lexical grammar of §4.2 rejects the input. It never carries a partial
// tree: Parse either returns a complete *raw.Interchange and a nil error, or
// a nil *raw.Interchange and a non-nil *ParseError wrapping ErrSyntax.
var ErrSyntax = errors.New("edifact: syntax error")

// ParseError is the single structural failure the lexical parser can report.
// It carries the source position at which parsing failed and the set of
// tokens that would have been accepted there.
type ParseError struct {
	Pos      raw.Position
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s, expected %s", e.Pos, ErrSyntax, strings.Join(e.Expected, " or "))
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// GetPosition reports where parsing failed, satisfying reporter.ErrorWithPos.
func (e *ParseError) GetPosition() raw.Position {
	return e.Pos
}

func newParseError(pos raw.Position, expected ...string) *ParseError {
	return &ParseError{Pos: pos, Expected: expected}
}
