// diag package chooses where radix tools write diagnostics
// (stderr, syslog, or the systemd journal) and provides the fatal exit path.
package diag

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/syslog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aerth/radix/radixerr"
)

type Options struct {
	Priority     Priority
	Syslog       bool
	Journald     bool
	RemoteSyslog string // udp host:port
	Tag          string // defaults to program name
}

var ErrNoJournal = errors.New("journal not enabled")

// New returns the writer for o. On error the returned writer is still usable (os.Stderr).
func New(o Options) (io.Writer, error) {
	tag := o.Tag
	if tag == "" {
		tag = filepath.Base(os.Args[0])
	}
	switch {
	case o.Syslog || o.RemoteSyslog != "":
		netw := ""
		if o.RemoteSyslog != "" {
			netw = "udp"
		}
		w, err := syslog.Dial(netw, o.RemoteSyslog, syslog.LOG_DEBUG|syslog.LOG_DAEMON, tag)
		if w == nil {
			return os.Stderr, err
		}
		return w, err
	case o.Journald:
		if !JournalEnabled() {
			return os.Stderr, ErrNoJournal
		}
		p := o.Priority
		if p == 0 {
			p = PriInfo
		}
		return JournalWriter{Priority: p, Fallback: os.Stderr, Fields: map[string]string{"SYSLOG_IDENTIFIER": tag}}, nil
	default:
		return os.Stderr, nil
	}
}

// NewLogger writes to w with date and time on each line.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags)
}

// Message is the one-line diagnostic for err, ending in a newline.
func Message(err error) string {
	msg := err.Error()
	if k := radixerr.Of(err); k != radixerr.Unknown && !strings.Contains(msg, string(k)) {
		msg = string(k) + ": " + msg
	}
	return msg + "\n"
}

// Exit is called by Fatal. Replaced in tests.
var Exit = os.Exit

// Fatal writes err to w and exits with status 1.
func Fatal(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprint(w, Message(err))
	Exit(1)
}
