// shutdown package provides a main context that is cancelled by a signal
// and then runs deferred funcs, such as stopping an http server.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"
)

var Log = log.Default()

// ErrSignal is the cancel cause (wrapped) when a signal arrives.
var ErrSignal = errors.New("caught sig")

var MakeSignalError = func(sig os.Signal) error {
	return fmt.Errorf("%w: %v", ErrSignal, sig)
}

// UseGoroutineDefer runs deferred funcs in goroutines, recovering panics.
// Each stage (first, the rest, last) still waits for the previous one.
var UseGoroutineDefer = true

// MaxWaitDuration bounds how long Wait waits for deferred funcs after cancel.
var MaxWaitDuration = time.Second * 5

// Main is a context.Context with defer funcs.
//
//	var mainctx = shutdown.New(context.Background(), os.Interrupt, syscall.SIGTERM)
//
//	func main() {
//	  mainctx.Defer(func() { srv.Close() })
//	  log.Println(mainctx.Wait())
//	}
type Main struct {
	context.Context
	cancel context.CancelCauseFunc

	mu                    sync.Mutex
	deferfuncs            []func()
	deferfirst, deferlast func()
	done                  chan struct{} // closed after deferred funcs ran
}

// New Main. Cancelled by the first of signals, Cancel, or parent.
func New(parent context.Context, signals ...os.Signal) *Main {
	ctx, cancel := context.WithCancelCause(parent)
	m := &Main{
		Context: ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	ch := make(chan os.Signal, 1)
	if len(signals) > 0 {
		signal.Notify(ch, signals...)
	}
	go func() {
		defer close(m.done)
		defer signal.Stop(ch)
		select {
		case <-m.Done(): // someone else cancelled the ctx
		case in := <-ch:
			m.Cancel(MakeSignalError(in))
		}
		m.rundeferred()
	}()
	return m
}

// Cancel with cause err. Deferred funcs run soon after.
func (m *Main) Cancel(err error) {
	m.cancel(err)
}

// Defer a function to run when the context is cancelled.
//
// Ordering: funcs added later are run first (see DeferLast for a single lastfunc)
func (m *Main) Defer(f ...func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.check()
	for _, ff := range f {
		m.deferfuncs = append([]func(){ff}, m.deferfuncs...)
	}
}

// DeferFirst is called first after context is finished.
func (m *Main) DeferFirst(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.check()
	if m.deferfirst != nil {
		panic("deferfirst already set")
	}
	m.deferfirst = f
}

// DeferLast is called after all other deferred funcs are finished.
func (m *Main) DeferLast(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.check()
	if m.deferlast != nil {
		panic("deferlast already set")
	}
	m.deferlast = f
}

func (m *Main) check() {
	if m.Err() != nil {
		panic("cannot defer after cancel")
	}
}

// Wait (blocks) for the context to be cancelled and deferred funcs to finish.
// Returns the cancel cause.
func (m *Main) Wait() error {
	<-m.Done()
	select {
	case <-m.done:
	case <-time.After(MaxWaitDuration):
		Log.Printf("warn: shutdown timed out after %s", MaxWaitDuration)
	}
	return context.Cause(m)
}

// Finished is closed once every deferred func has returned.
func (m *Main) Finished() <-chan struct{} {
	return m.done
}

func (m *Main) rundeferred() {
	m.mu.Lock()
	first, funcs, last := m.deferfirst, m.deferfuncs, m.deferlast
	m.deferfirst, m.deferfuncs, m.deferlast = nil, nil, nil
	m.mu.Unlock()

	var wg sync.WaitGroup
	caller := func(fn func()) {
		fn() // call directly
	}
	if UseGoroutineDefer {
		caller = func(fn func()) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						Log.Printf("error in deferred func (panic): %v", r)
					}
				}()
				fn()
			}()
		}
	}
	if first != nil {
		caller(first)
	}
	wg.Wait() // noop if not parallel
	for _, f := range funcs {
		caller(f)
	}
	wg.Wait()
	if last != nil {
		caller(last)
	}
	wg.Wait()
}
