// server package serves radix conversions as JSON over http.
//
//	GET /v1/convert/{numeral}?from=36&to=2
//	GET /v1/decode/{numeral}?base=16
//	GET /v1/encode/{value}?base=16
//	GET /v1/validate/{numeral}?base=10
//	GET /v1/history
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/aerth/radix/history"
	"github.com/aerth/radix/radix"
	"github.com/aerth/radix/radixerr"
	"github.com/aerth/radix/shutdown"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const HeaderRequestID = "X-Request-Id"

type Server struct {
	*http.Server
	*mux.Router // at the bottom of all middleware

	Codec   radix.Codec
	History *history.Store // nil disables recording and /v1/history
	Log     *log.Logger
}

var IdleTimeout = time.Second * 2

// New server. store and logger may be nil.
func New(codec radix.Codec, store *history.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		Router:  mux.NewRouter(),
		Codec:   codec,
		History: store,
		Log:     logger,
	}
	s.Server = &http.Server{
		Handler:           s.Router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       IdleTimeout,
		MaxHeaderBytes:    1 << 20,
		ErrorLog:          logger,
	}
	s.Router.NotFoundHandler = http.HandlerFunc(DefaultNotFoundHandler)
	s.Router.HandleFunc("/v1/convert/{numeral}", s.handleConvert).Methods(http.MethodGet)
	s.Router.HandleFunc("/v1/decode/{numeral}", s.handleDecode).Methods(http.MethodGet)
	s.Router.HandleFunc("/v1/encode/{value}", s.handleEncode).Methods(http.MethodGet)
	s.Router.HandleFunc("/v1/validate/{numeral}", s.handleValidate).Methods(http.MethodGet)
	s.Router.HandleFunc("/v1/history", s.handleHistory).Methods(http.MethodGet)
	s.InsertMiddleware(withRequestID)
	return s
}

// InsertMiddleware wraps the current handler, last inserted runs first.
func (s *Server) InsertMiddleware(middleware ...func(http.Handler) http.Handler) {
	for _, m := range middleware {
		if m == nil {
			panic("InsertMiddleware: nil middleware provided")
		}
		s.Server.Handler = m(s.Server.Handler)
	}
}

// ServeHTTP through all middleware, not just the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Server.Handler.ServeHTTP(w, r)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), KRequestID, id)))
	})
}

// ListenAndServe on addr until mainctx is cancelled. Shuts down the server as mainctx's first deferred func.
func (s *Server) ListenAndServe(mainctx *shutdown.Main, addr string) error {
	if mainctx.Err() != nil {
		return fmt.Errorf("server: already cancelled: %v", context.Cause(mainctx))
	}
	s.Server.Addr = addr
	s.Server.BaseContext = func(net.Listener) context.Context { return mainctx }
	mainctx.DeferFirst(func() {
		ShutdownServer(s.Server, 5*time.Second)
	})
	s.Log.Printf("http server: starting http://%s", addr)
	err := s.Server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Log.Println("critical error http server:", err)
		mainctx.Cancel(err)
		return err
	}
	s.Log.Printf("http server: no longer listening: %v", context.Cause(mainctx))
	return context.Cause(mainctx)
}

func ShutdownServer(server *http.Server, timeout time.Duration) {
	short, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(short); err != nil && server.ErrorLog != nil {
		server.ErrorLog.Printf("http server shutdown error: %v", err)
	}
}

var DefaultNotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
	ServeJson(w, http.StatusNotFound, map[string]interface{}{
		"error": "not found",
		"code":  http.StatusNotFound,
	})
}

func ServeJson(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string        `json:"error"`
	Kind  radixerr.Kind `json:"kind"`
}

func (s *Server) serveError(w http.ResponseWriter, r *http.Request, err error) {
	s.Log.Printf("%s %s: %v", RequestID(r.Context()), r.URL.Path, err)
	ServeJson(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: radixerr.Of(err)})
}

// queryBase reads a base parameter. Range checks are left to package radix.
func queryBase(r *http.Request, name string, def uint32) (uint32, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad %s: %q", name, v)
	}
	return uint32(n), nil
}
