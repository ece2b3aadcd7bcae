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

package radix

import "github.com/aerth/radix/radixerr"

// Validate checks that every glyph of numeral is one of the first base digits.
//
//	Validate("FFF", 16) // nil
//	Validate("10", 2)   // nil
//	Validate("FFF", 10) // InvalidDigit
//	Validate("abc", 16) // InvalidDigit, lower case is not a digit
//	Validate("100", 37) // InvalidBase
//
// An empty numeral is valid.
func Validate[N Numeral](numeral N, base uint32) error {
	if err := CheckBase(base); err != nil {
		return err
	}
	if isNull(numeral) {
		return radixerr.New(radixerr.NullNumeral, "", base, -1)
	}
	for i := 0; i < len(numeral); i++ {
		v := digitValue(numeral[i])
		if v < 0 || uint32(v) >= base {
			return radixerr.New(radixerr.InvalidDigit, string(numeral), base, i)
		}
	}
	return nil
}
