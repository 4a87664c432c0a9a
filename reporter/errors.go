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

// Package reporter holds the closed CONTRL syntax-error catalogue (§4.4) and
// the error-tree types the structural matcher accumulates into (§3, §7).
package reporter

import (
	"errors"
	"fmt"

	"github.com/edienergy/ediguide/raw"
)

// ErrInvalidInterchange is a sentinel error returned alongside an
// InterchangeError aggregate when matching fails. It mirrors
// reporter.ErrInvalidSource in the teacher: a stable value for errors.Is
// checks regardless of which leaf errors the tree actually contains.
var ErrInvalidInterchange = errors.New("edifact: interchange does not match description")

// ErrorWithPos is an error about raw input that adds the source position
// that caused it.
type ErrorWithPos interface {
	error
	GetPosition() raw.Position
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos raw.Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos using a formatted message.
func Errorf(pos raw.Position, format string, args ...interface{}) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        raw.Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() raw.Position { return e.pos }
func (e errorWithPos) Unwrap() error             { return e.underlying }

var _ ErrorWithPos = errorWithPos{}
