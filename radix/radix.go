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

// radix package converts unsigned numerals between bases 2 through 36.
//
// Digits are '0'-'9' then 'A'-'Z'. Only upper case letters are digits.
//
//	radix.Convert("11Z", 36, 2) // "10101010111", nil
//	radix.Decode("ABC", 16)     // 2748, nil
//	radix.Encode(uint64(5), 2)  // "101", nil
package radix

import (
	"reflect"
	"strings"

	"github.com/aerth/radix/radixerr"
)

// Digits is the glyph for each digit value. Base N uses Digits[:N].
const Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinBase = 2
	MaxBase = uint32(len(Digits))
)

// Numeral is anything that can hold a number's glyphs.
// A nil []byte is a null numeral.
type Numeral interface {
	~string | ~[]byte
}

// CheckBase returns an InvalidBase error unless 2 <= base <= 36.
func CheckBase(base uint32) error {
	if base < MinBase || base > MaxBase {
		return radixerr.New(radixerr.InvalidBase, "", base, -1)
	}
	return nil
}

// digitValue is c's index in the full alphabet, or -1.
func digitValue(c byte) int {
	return strings.IndexByte(Digits, c)
}

func isNull[N Numeral](numeral N) bool {
	v := reflect.ValueOf(numeral)
	return v.Kind() == reflect.Slice && v.IsNil()
}
