package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aerth/radix/history"
	"github.com/aerth/radix/radix"
	"github.com/gorilla/mux"
)

type ConvertResponse struct {
	Input  string `json:"input"`
	From   uint32 `json:"from"`
	To     uint32 `json:"to"`
	Output string `json:"output"`
	Value  uint64 `json:"value"`
}

type DecodeResponse struct {
	Input string `json:"input"`
	Base  uint32 `json:"base"`
	Value uint64 `json:"value"`
}

type EncodeResponse struct {
	Value  uint64 `json:"value"`
	Base   uint32 `json:"base"`
	Output string `json:"output"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	numeral := mux.Vars(r)["numeral"]
	from, err := queryBase(r, "from", 10)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	to, err := queryBase(r, "to", 10)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	if err := radix.CheckBase(to); err != nil {
		s.serveError(w, r, err)
		return
	}
	value, err := radix.Decode(numeral, from)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	out, err := s.Codec.Encode(value, to)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	if s.History != nil {
		_, err := s.History.Record(history.Entry{
			Input: numeral, From: from, To: to, Output: out, Value: value,
			Request: RequestID(r.Context()),
		})
		if err != nil {
			s.Log.Printf("%s history: %v", RequestID(r.Context()), err)
		}
	}
	ServeJson(w, http.StatusOK, ConvertResponse{Input: numeral, From: from, To: to, Output: out, Value: value})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	numeral := mux.Vars(r)["numeral"]
	base, err := queryBase(r, "base", 10)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	value, err := radix.DecodeChecked(numeral, base)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	ServeJson(w, http.StatusOK, DecodeResponse{Input: numeral, Base: base, Value: value})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["value"]
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		s.serveError(w, r, fmt.Errorf("bad value: %q", raw))
		return
	}
	base, err := queryBase(r, "base", 10)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	out, err := s.Codec.Encode(value, base)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	ServeJson(w, http.StatusOK, EncodeResponse{Value: value, Base: base, Output: out})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	base, err := queryBase(r, "base", 10)
	if err != nil {
		s.serveError(w, r, err)
		return
	}
	if err := radix.Validate(mux.Vars(r)["numeral"], base); err != nil {
		s.serveError(w, r, err)
		return
	}
	ServeJson(w, http.StatusOK, map[string]bool{"valid": true})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		DefaultNotFoundHandler(w, r)
		return
	}
	entries, err := s.History.List(nil)
	if err != nil {
		s.Log.Printf("%s history: %v", RequestID(r.Context()), err)
		ServeJson(w, http.StatusInternalServerError, map[string]string{"error": "history unavailable"})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	ServeJson(w, http.StatusOK, entries)
}
