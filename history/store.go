// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.


// history package keeps a log of conversions in a bbolt database.
package history

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go.etcd.io/bbolt"
)

// Bucket holding one JSON Entry per sequence key.
const Bucket = "conversions"

var ErrNotFound = errors.New("history: entry not found")

// Debug logs every read and write with log.Printf
var Debug = false

type Entry struct {
	ID      uint64 `json:"id"`
	Input   string `json:"input"`
	From    uint32 `json:"from"`
	To      uint32 `json:"to"`
	Output  string `json:"output"`
	Value   uint64 `json:"value"`
	Request string `json:"request,omitempty"` // request id, if served over http
	At      Stamp  `json:"at"`
}

type Store struct {
	db *bbolt.DB
}

// Open (or create) the database at path. Fails after a second if another process holds it.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(Bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record e under the next sequence number, returned as e's ID. Zero At is set to now.
func (s *Store) Record(e Entry) (uint64, error) {
	if e.At.IsZero() {
		e.At = Now()
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bu := tx.Bucket([]byte(Bucket))
		if bu == nil {
			return bbolt.ErrBucketNotFound
		}
		id, err := bu.NextSequence()
		if err != nil {
			return err
		}
		e.ID = id
		return storeTx(tx, Bucket, n2b(id), e)
	})
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *Store) Get(id uint64) (Entry, error) {
	var e Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		e, err = fetchTx[Entry](tx, Bucket, n2b(id))
		return err
	})
	if errors.Is(err, ErrZeroLength) {
		return e, ErrNotFound
	}
	return e, err
}

// List entries in recording order. keep may be nil.
func (s *Store) List(keep func(Entry) bool) ([]Entry, error) {
	var out []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		bu := tx.Bucket([]byte(Bucket))
		if bu == nil {
			return bbolt.ErrBucketNotFound
		}
		return bu.ForEach(func(k, v []byte) error {
			e, err := DecodeJson[Entry](v)
			if err != nil {
				return fmt.Errorf("history: entry %d: %w", b2n(k), err)
			}
			out = append(out, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if keep != nil {
		out = filterInPlace(out, keep)
	}
	return out, nil
}

// Clear removes all entries. Sequence numbers keep counting.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bu := tx.Bucket([]byte(Bucket))
		if bu == nil {
			return bbolt.ErrBucketNotFound
		}
		var keys [][]byte
		if err := bu.ForEach(func(k, _ []byte) error {
			keys = append(keys, append([]byte(nil), k...))
			return nil
		}); err != nil {
			return err
		}
		for _, k := range keys {
			if err := bu.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

func fetchTx[T any](tx *bbolt.Tx, bucket string, key []byte) (T, error) {
	var v T
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return v, bbolt.ErrBucketNotFound
	}
	if len(key) == 0 {
		return v, fmt.Errorf("empty key?")
	}
	if Debug {
		log.Printf("history: read %s %x", bucket, key)
	}
	return DecodeJson[T](bu.Get(key))
}

func storeTx(tx *bbolt.Tx, bucket string, key []byte, val any) error {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return bbolt.ErrBucketNotFound
	}
	if Debug {
		log.Printf("history: write %s %x", bucket, key)
	}
	return bu.Put(key, Json(val))
}

// filterInPlace keeps the elements passing keepfn, reusing a's backing array.
func filterInPlace[S ~[]T, T any](a S, keepfn func(a T) bool) S {
	good := 0
	for i := range a {
		if keepfn(a[i]) {
			if i != good {
				a[good] = a[i]
			}
			good++
		}
	}
	return a[:good]
}
