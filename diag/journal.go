package diag

import (
	"io"
	"os"

	"github.com/coreos/go-systemd/journal"
)

type Priority = journal.Priority

const (
	PriErr   = journal.PriErr
	PriInfo  = journal.PriInfo
	PriDebug = journal.PriDebug
)

var _ io.Writer = (*JournalWriter)(nil) // compile-time interface check

// JournalWriter writes to the systemd journal, falling back to Fallback on failure.
// Use with log.New or log.SetOutput.
type JournalWriter struct {
	Priority // default 0 is 'Emergency' level

	// Fallback receives the error and the message when journal.Send fails.
	// If nil, write fails are silent.
	Fallback io.Writer

	// Fields are sent with every entry, eg. RADIX_COMMAND.
	Fields map[string]string
}

func (j JournalWriter) Write(b []byte) (int, error) {
	err := journal.Send(string(b), j.Priority, j.Fields)
	if err != nil {
		if j.Fallback != nil {
			j.Fallback.Write([]byte("journalwriter error: " + err.Error() + "\n"))
			j.Fallback.Write(b)
		}
		return 0, err
	}
	return len(b), nil
}

// JournalOrStderr returns a JournalWriter if the journal is available, else os.Stderr.
//
// If p is zero, uses INFO level
func JournalOrStderr(p Priority) io.Writer {
	if p == 0 {
		p = journal.PriInfo
	}
	if !JournalEnabled() {
		return os.Stderr
	}
	return JournalWriter{Priority: p, Fallback: os.Stderr}
}

// JournalEnabled checks whether the local systemd journal is available.
func JournalEnabled() bool {
	return journal.Enabled()
}
