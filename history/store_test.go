package history

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordGet(t *testing.T) {
	s := openTest(t)
	id, err := s.Record(Entry{Input: "11Z", From: 36, To: 2, Output: "10101010111", Value: 1367})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id != 1 {
		t.Fatalf("first id = %d", id)
	}
	e, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.ID != id || e.Output != "10101010111" || e.Value != 1367 {
		t.Fatalf("Get = %+v", e)
	}
	if e.At.IsZero() {
		t.Fatalf("At not set")
	}
	if _, err := s.Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(99) = %v", err)
	}
}

func TestListOrderAndFilter(t *testing.T) {
	s := openTest(t)
	// more than 255 entries, so little endian keys would sort wrong
	for i := 0; i < 300; i++ {
		to := uint32(2)
		if i%3 == 0 {
			to = 16
		}
		if _, err := s.Record(Entry{Value: uint64(i), To: to}); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}
	all, err := s.List(nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 300 {
		t.Fatalf("len = %d", len(all))
	}
	for i, e := range all {
		if e.Value != uint64(i) || e.ID != uint64(i+1) {
			t.Fatalf("entry %d out of order: %+v", i, e)
		}
	}
	hex, err := s.List(func(e Entry) bool { return e.To == 16 })
	if err != nil {
		t.Fatalf("List filter: %v", err)
	}
	if len(hex) != 100 {
		t.Fatalf("filtered len = %d", len(hex))
	}
}

func TestClear(t *testing.T) {
	s := openTest(t)
	s.Record(Entry{Value: 1})
	s.Record(Entry{Value: 2})
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	all, _ := s.List(nil)
	if len(all) != 0 {
		t.Fatalf("after clear: %d", len(all))
	}
	id, _ := s.Record(Entry{Value: 3})
	if id != 3 {
		t.Fatalf("sequence should continue, got %d", id)
	}
}

func TestStampJSON(t *testing.T) {
	at := Stamp{time.Unix(1700000000, 0).UTC()}
	b, err := json.Marshal(at)
	if err != nil || string(b) != "1700000000" {
		t.Fatalf("Marshal = %s, %v", b, err)
	}
	var back Stamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(at.Time) {
		t.Fatalf("round trip %v != %v", back, at)
	}
	b, _ = json.Marshal(Stamp{})
	if string(b) != "0" {
		t.Fatalf("zero stamp = %s", b)
	}
	if err := json.Unmarshal([]byte("0"), &back); err != nil || !back.IsZero() {
		t.Fatalf("zero unmarshal = %v, %v", back, err)
	}
}
