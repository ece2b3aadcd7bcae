// Copyright (c) 2024 aerth
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// radixerr package provides the error kinds returned by package radix.
//
// Every error carries a Kind, so callers can test with errors.Is:
//
//	if errors.Is(err, radixerr.InvalidDigit) { ... }
//
// Formatting with %+v adds the function that produced the error.
package radixerr

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind is a stable error identifier. It is comparable and implements error.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	InvalidBase  Kind = "invalid base"
	NullNumeral  Kind = "null numeral"
	InvalidDigit Kind = "invalid digit"
	Overflow     Kind = "overflow"

	Unknown Kind = "error" // not from this package
)

// Error is a Kind plus the numeral and base that caused it.
type Error struct {
	Kind    Kind
	Numeral string
	Base    uint32
	Pos     int // index of the offending glyph, -1 if none
	St      FuncCallerInfo
}

var _ error = (*Error)(nil)

// New error of kind k. St names the function that called New.
func New(k Kind, numeral string, base uint32, pos int) *Error {
	return &Error{Kind: k, Numeral: numeral, Base: base, Pos: pos, St: GetFuncCallerInfo()}
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidBase:
		return "base " + strconv.FormatUint(uint64(e.Base), 10) + " is out of range 2..36"
	case NullNumeral:
		return "number is null"
	case InvalidDigit:
		if e.Pos >= 0 && e.Pos < len(e.Numeral) {
			return fmt.Sprintf("number %q is invalid in base %d (digit %q at %d)", e.Numeral, e.Base, e.Numeral[e.Pos], e.Pos)
		}
		return fmt.Sprintf("number %q is invalid in base %d", e.Numeral, e.Base)
	case Overflow:
		return fmt.Sprintf("number %q in base %d overflows 64 bits", e.Numeral, e.Base)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Stack() FuncCallerInfo { return e.St }

func (e *Error) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		if f.Flag('+') {
			fmt.Fprint(f, e.Error())
			fmt.Fprintf(f, "\n\tfrom %s", e.St.String())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(f, e.Error())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	}
}

// Of extracts the Kind from err. nil has no kind ("").
func Of(err error) Kind {
	if err == nil {
		return ""
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return Unknown
}
