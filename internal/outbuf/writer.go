// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

// Package outbuf wraps the machine's output sink so EMIT can write either a
// literal character or, when the output-digit sentinel is seen, the decimal
// digits of the value on top of it on the stack, without the control unit
// needing to know anything about io.Writer error bookkeeping.
package outbuf

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Writer tracks the first write error and refuses to write again once one
// has occurred, the way a stuck output device would.
type Writer struct {
	w   io.Writer
	Err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// EmitChar writes a single character, as EMIT does for an ordinary cell
// value.
func (w *Writer) EmitChar(r rune) error {
	_, err := w.Write([]byte(string(r)))
	return err
}

// EmitDigits writes v as decimal digits, as EMIT does for the top of the
// stack when it sees the output-digit sentinel in the cell beneath it.
func (w *Writer) EmitDigits(v int) error {
	_, err := w.Write([]byte(strconv.Itoa(v)))
	return err
}
