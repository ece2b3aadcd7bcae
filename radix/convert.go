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

// Convert numeral from base from to base to.
//
//	Convert("11Z", 36, 2)  // "10101010111"
//	Convert("ABC", 16, 36) // "24C"
func Convert[N Numeral](numeral N, from, to uint32) (string, error) {
	return convert(Codec{}, numeral, from, to)
}

// Convert is the package Convert, encoding with c.
func (c Codec) Convert(numeral string, from, to uint32) (string, error) {
	return convert(c, numeral, from, to)
}

func convert[N Numeral](c Codec, numeral N, from, to uint32) (string, error) {
	if err := CheckBase(to); err != nil {
		return "", err
	}
	n, err := Decode(numeral, from) // validates
	if err != nil {
		return "", err
	}
	return c.Encode(n, to)
}
