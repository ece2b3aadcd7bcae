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

import (
	"math/bits"

	"github.com/aerth/radix/radixerr"
)

// Decode a numeral in base to its value.
//
// Values past 2^64-1 wrap around silently, see DecodeChecked.
//
//	Decode("11Z", 36) // 1367
//	Decode("101", 2)  // 5
//	Decode("ABC", 16) // 2748
func Decode[N Numeral](numeral N, base uint32) (uint64, error) {
	if err := Validate(numeral, base); err != nil {
		return 0, err
	}
	var (
		result uint64
		place  uint64 = 1
	)
	for i := len(numeral); i > 0; i-- {
		result += uint64(digitValue(numeral[i-1])) * place
		place *= uint64(base)
	}
	return result, nil
}

// DecodeChecked is Decode, but returns an Overflow error instead of wrapping.
func DecodeChecked[N Numeral](numeral N, base uint32) (uint64, error) {
	if err := Validate(numeral, base); err != nil {
		return 0, err
	}
	var result uint64
	for i := 0; i < len(numeral); i++ {
		hi, lo := bits.Mul64(result, uint64(base))
		sum, carry := bits.Add64(lo, uint64(digitValue(numeral[i])), 0)
		if hi != 0 || carry != 0 {
			return 0, radixerr.New(radixerr.Overflow, string(numeral), base, i)
		}
		result = sum
	}
	return result, nil
}
