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

import "golang.org/x/exp/constraints"

// Codec holds encoding choices. The zero value is what the package funcs use.
type Codec struct {
	// EmptyZero encodes the value 0 as "" instead of "0".
	EmptyZero bool
}

// Encode value in base, most significant digit first.
//
//	Encode(uint64(1367), 36) // "11Z"
//	Encode(uint8(5), 2)      // "101"
//	Encode(uint(0), 10)      // "0"
func Encode[T constraints.Unsigned](value T, base uint32) (string, error) {
	return Codec{}.Encode(uint64(value), base)
}

func (c Codec) Encode(value uint64, base uint32) (string, error) {
	if err := CheckBase(base); err != nil {
		return "", err
	}
	if value == 0 {
		if c.EmptyZero {
			return "", nil
		}
		return Digits[:1], nil
	}
	b := uint64(base)
	var digits []byte // least significant first
	for value != 0 {
		digits = append(digits, Digits[value%b])
		value /= b
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}
