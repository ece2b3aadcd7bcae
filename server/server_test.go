package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aerth/radix/history"
	"github.com/aerth/radix/radix"
	"github.com/aerth/radix/radixerr"
	"github.com/aerth/radix/shutdown"
)

func newTest(t *testing.T, store *history.Store) *Server {
	t.Helper()
	return New(radix.Codec{}, store, log.New(io.Discard, "", 0))
}

func get(t *testing.T, s *Server, path string, code int, v any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != code {
		t.Fatalf("GET %s: status %d, want %d: %s", path, rec.Code, code, rec.Body.String())
	}
	if v != nil {
		if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
	}
	return rec
}

func TestConvert(t *testing.T) {
	s := newTest(t, nil)
	var resp ConvertResponse
	rec := get(t, s, "/v1/convert/11Z?from=36&to=2", http.StatusOK, &resp)
	if resp.Output != "10101010111" || resp.Value != 1367 {
		t.Fatalf("convert = %+v", resp)
	}
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("missing request id")
	}
}

func TestDecodeEncode(t *testing.T) {
	s := newTest(t, nil)
	var d DecodeResponse
	get(t, s, "/v1/decode/ABC?base=16", http.StatusOK, &d)
	if d.Value != 2748 {
		t.Fatalf("decode = %+v", d)
	}
	var e EncodeResponse
	get(t, s, "/v1/encode/2748?base=16", http.StatusOK, &e)
	if e.Output != "ABC" {
		t.Fatalf("encode = %+v", e)
	}
	get(t, s, "/v1/encode/0?base=2", http.StatusOK, &e)
	if e.Output != "0" {
		t.Fatalf("encode 0 = %+v", e)
	}
}

func TestErrors(t *testing.T) {
	s := newTest(t, nil)
	for _, tc := range []struct {
		path string
		kind radixerr.Kind
	}{
		{"/v1/validate/FFF?base=10", radixerr.InvalidDigit},
		{"/v1/validate/abc?base=16", radixerr.InvalidDigit},
		{"/v1/validate/1?base=37", radixerr.InvalidBase},
		{"/v1/convert/1?from=10&to=1", radixerr.InvalidBase},
		{"/v1/encode/5?base=0", radixerr.InvalidBase},
		{"/v1/decode/10000000000000000000000000000000000000000000000000000000000000000?base=2", radixerr.Overflow},
		{"/v1/encode/x?base=2", radixerr.Unknown},
		{"/v1/decode/1?base=ten", radixerr.Unknown},
	} {
		var resp errorResponse
		get(t, s, tc.path, http.StatusBadRequest, &resp)
		if resp.Kind != tc.kind {
			t.Fatalf("%s: kind %q, want %q (%s)", tc.path, resp.Kind, tc.kind, resp.Error)
		}
	}
	var valid map[string]bool
	get(t, s, "/v1/validate/ABC?base=16", http.StatusOK, &valid)
	if !valid["valid"] {
		t.Fatalf("ABC should be valid in base 16")
	}
	get(t, s, "/nope", http.StatusNotFound, nil)
	get(t, s, "/v1/history", http.StatusNotFound, nil)
}

func TestHistory(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	s := newTest(t, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/convert/ABC?from=16&to=36", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("convert: %d %s", rec.Code, rec.Body.String())
	}
	get(t, s, "/v1/convert/FFF?from=10&to=2", http.StatusBadRequest, nil) // not recorded

	var entries []history.Entry
	get(t, s, "/v1/history", http.StatusOK, &entries)
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if e := entries[0]; e.Output != "24C" || e.Request != "req-1" || e.From != 16 || e.To != 36 {
		t.Fatalf("entry = %+v", e)
	}
}

func TestListenAndServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	l.Close()

	mainctx := shutdown.New(context.Background())
	s := newTest(t, nil)
	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe(mainctx, addr) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/v1/encode/35?base=36")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var e EncodeResponse
	json.NewDecoder(resp.Body).Decode(&e)
	resp.Body.Close()
	if e.Output != "Z" {
		t.Fatalf("encode = %+v", e)
	}

	stop := errors.New("test done")
	mainctx.Cancel(stop)
	select {
	case err := <-errc:
		if !errors.Is(err, stop) {
			t.Fatalf("ListenAndServe = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
