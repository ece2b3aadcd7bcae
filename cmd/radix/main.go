// radix - convert unsigned numbers between bases 2 through 36
//
// Usage:
//
//	radix [flags] validate NUMBER BASE    Check NUMBER is valid in BASE
//	radix [flags] decode NUMBER BASE      Print NUMBER (in BASE) in decimal
//	radix [flags] encode VALUE BASE       Print decimal VALUE in BASE
//	radix [flags] convert NUMBER [FROM TO] Convert NUMBER from base FROM to base TO
//	radix [flags] history [clear]         List (or clear) recorded conversions, needs -db
//	radix [flags] serve                   Serve the JSON api on -http
//
// Digits are 0-9 then A-Z (upper case only). Invalid input prints a
// diagnostic and exits with status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/aerth/radix/diag"
	"github.com/aerth/radix/flagpkg"
	"github.com/aerth/radix/history"
	"github.com/aerth/radix/radix"
	"github.com/aerth/radix/server"
	"github.com/aerth/radix/shutdown"
)

var errUsage = errors.New("usage")

type app struct {
	codec    radix.Codec
	store    *history.Store // nil unless -db
	from, to uint32         // convert defaults
	httpAddr string
	out      io.Writer
	log      *log.Logger
}

func main() {
	var (
		a = &app{out: os.Stdout}

		dbpath       string
		useSyslog    bool
		useJournald  bool
		remoteSyslog string
	)
	flag.StringVar(&dbpath, "db", "", "record conversions in this bbolt file")
	flag.StringVar(&a.httpAddr, "http", "127.0.0.1:8036", "listen address for serve")
	flag.BoolVar(&useSyslog, "syslog", false, "log to local syslog")
	flag.BoolVar(&useJournald, "journald", false, "log to the systemd journal")
	flag.StringVar(&remoteSyslog, "remote-syslog", "", "log to remote syslog (udp host:port)")
	flag.BoolVar(&a.codec.EmptyZero, "empty-zero", false, "encode 0 as an empty string")
	flagpkg.InverseBoolVar(nil, &a.codec.EmptyZero, "zero-glyph", false, "encode 0 as \"0\" (undoes -empty-zero)")
	flagpkg.BaseVar(nil, &a.from, "from", 10, "convert: default origin base")
	flagpkg.BaseVar(nil, &a.to, "to", 2, "convert: default destination base")
	flag.Usage = printUsage
	flag.Parse()

	w, err := diag.New(diag.Options{
		Priority:     diag.PriErr,
		Syslog:       useSyslog,
		Journald:     useJournald,
		RemoteSyslog: remoteSyslog,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "radix: diagnostics: %v\n", err)
	}
	a.log = diag.NewLogger(w, "radix: ")

	if dbpath != "" {
		a.store, err = history.Open(dbpath)
		if err != nil {
			diag.Fatal(w, err)
		}
	}
	err = a.run(flag.Args())
	if a.store != nil {
		a.store.Close()
	}
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		diag.Fatal(w, err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `radix - convert unsigned numbers between bases 2 through 36

Usage:
  radix [flags] validate NUMBER BASE
  radix [flags] decode NUMBER BASE
  radix [flags] encode VALUE BASE
  radix [flags] convert NUMBER [FROM TO]
  radix [flags] history [clear]
  radix [flags] serve

Flags:`)
	flag.PrintDefaults()
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "validate":
		if len(args) != 2 {
			return errUsage
		}
		base, err := flagpkg.ParseBase(args[1])
		if err != nil {
			return err
		}
		if err := radix.Validate(args[0], base); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "ok")
	case "decode":
		if len(args) != 2 {
			return errUsage
		}
		base, err := flagpkg.ParseBase(args[1])
		if err != nil {
			return err
		}
		n, err := radix.Decode(args[0], base)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, n)
	case "encode":
		if len(args) != 2 {
			return errUsage
		}
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", args[0], err)
		}
		base, err := flagpkg.ParseBase(args[1])
		if err != nil {
			return err
		}
		s, err := a.codec.Encode(n, base)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, s)
	case "convert":
		return a.convert(args)
	case "history":
		return a.history(args)
	case "serve":
		return a.serve()
	default:
		return errUsage
	}
	return nil
}

func (a *app) convert(args []string) error {
	from, to := a.from, a.to
	switch len(args) {
	case 1:
	case 3:
		var err error
		if from, err = flagpkg.ParseBase(args[1]); err != nil {
			return err
		}
		if to, err = flagpkg.ParseBase(args[2]); err != nil {
			return err
		}
	default:
		return errUsage
	}
	s, err := a.codec.Convert(args[0], from, to)
	if err != nil {
		return err
	}
	if a.store != nil {
		n, _ := radix.Decode(args[0], from) // already valid
		if _, err := a.store.Record(history.Entry{Input: args[0], From: from, To: to, Output: s, Value: n}); err != nil {
			a.log.Printf("history: %v", err)
		}
	}
	fmt.Fprintln(a.out, s)
	return nil
}

func (a *app) history(args []string) error {
	if a.store == nil {
		return errors.New("history: no -db given")
	}
	if len(args) == 1 && args[0] == "clear" {
		return a.store.Clear()
	}
	if len(args) != 0 {
		return errUsage
	}
	entries, err := a.store.List(nil)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%d\t%s\t%s(%d) -> %s(%d)\n", e.ID, e.At.Format(time.RFC3339), e.Input, e.From, e.Output, e.To)
	}
	return nil
}

func (a *app) serve() error {
	mainctx := shutdown.New(context.Background(), os.Interrupt, syscall.SIGTERM)
	srv := server.New(a.codec, a.store, a.log)
	err := srv.ListenAndServe(mainctx, a.httpAddr)
	<-mainctx.Finished()
	if errors.Is(err, shutdown.ErrSignal) {
		a.log.Println(err)
		return nil
	}
	return err
}
