// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.


package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// keys are big endian so bbolt's byte order is recording order
var keyorder = binary.BigEndian

var Json = toJson

func toJson(a any) []byte {
	b, _ := json.Marshal(a)
	return b
}

// ErrZeroLength 404 not found
var ErrZeroLength = fmt.Errorf("cannot decode zero length")

func DecodeJson[T any](b []byte) (T, error) {
	var v T
	if len(b) == 0 {
		return v, ErrZeroLength
	}
	err := json.Unmarshal(b, &v)
	return v, err
}

// n2b sequence number to key
func n2b(n uint64) []byte {
	var buf = make([]byte, 8)
	keyorder.PutUint64(buf, n)
	return buf
}

// b2n key to sequence number
func b2n(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return keyorder.Uint64(b)
}
