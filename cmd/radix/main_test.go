package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aerth/radix/history"
	"github.com/aerth/radix/radix"
	"github.com/aerth/radix/radixerr"
)

func newApp() (*app, *bytes.Buffer) {
	var buf bytes.Buffer
	return &app{from: 10, to: 2, out: &buf, log: log.New(io.Discard, "", 0)}, &buf
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"validate", "FFF", "16"}, "ok"},
		{[]string{"decode", "11Z", "36"}, "1367"},
		{[]string{"encode", "2748", "16"}, "ABC"},
		{[]string{"encode", "0", "16"}, "0"},
		{[]string{"convert", "11Z", "36", "2"}, "10101010111"},
		{[]string{"convert", "5"}, "101"},
	} {
		a, buf := newApp()
		if err := a.run(tc.args); err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if got := strings.TrimSpace(buf.String()); got != tc.want {
			t.Fatalf("%v = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestRunEmptyZero(t *testing.T) {
	a, buf := newApp()
	a.codec = radix.Codec{EmptyZero: true}
	if err := a.run([]string{"encode", "0", "2"}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != "\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		kind radixerr.Kind
	}{
		{[]string{"validate", "FFF", "10"}, radixerr.InvalidDigit},
		{[]string{"validate", "abc", "16"}, radixerr.InvalidDigit},
		{[]string{"decode", "1", "37"}, radixerr.InvalidBase},
		{[]string{"encode", "5", "1"}, radixerr.InvalidBase},
		{[]string{"convert", "Z", "35", "2"}, radixerr.InvalidDigit},
	} {
		a, _ := newApp()
		if err := a.run(tc.args); !errors.Is(err, tc.kind) {
			t.Fatalf("%v = %v, want %s", tc.args, err, tc.kind)
		}
	}
	for _, args := range [][]string{nil, {"nope"}, {"decode", "1"}, {"convert", "1", "2"}} {
		a, _ := newApp()
		if err := a.run(args); !errors.Is(err, errUsage) {
			t.Fatalf("%v = %v, want usage", args, err)
		}
	}
}

func TestHistoryCommand(t *testing.T) {
	a, buf := newApp()
	if err := a.run([]string{"history"}); err == nil {
		t.Fatalf("history without -db should fail")
	}
	store, err := history.Open(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	a.store = store
	if err := a.run([]string{"convert", "ABC", "16", "36"}); err != nil {
		t.Fatalf("convert: %v", err)
	}
	buf.Reset()
	if err := a.run([]string{"history"}); err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(buf.String(), "ABC(16) -> 24C(36)") {
		t.Fatalf("history output: %q", buf.String())
	}
	if err := a.run([]string{"history", "clear"}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	buf.Reset()
	a.run([]string{"history"})
	if buf.Len() != 0 {
		t.Fatalf("after clear: %q", buf.String())
	}
}
