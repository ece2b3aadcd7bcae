package history

import (
	"strconv"
	"time"
)

// Stamp is a time.Time that marshals to/from unix seconds in JSON.
type Stamp struct {
	time.Time
}

// Now, UTC, no monotonic clock, whole seconds.
func Now() Stamp {
	return Stamp{time.Now().UTC().Truncate(time.Second)}
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	if s.Time.After(zerotime) {
		return []byte(strconv.FormatInt(s.Unix(), 10)), nil
	}
	return []byte("0"), nil
}

func (s *Stamp) UnmarshalJSON(dat []byte) error {
	unix, err := strconv.ParseInt(string(dat), 10, 64)
	if err != nil {
		return err
	}
	if unix == 0 {
		s.Time = time.Time{}
		return nil
	}
	s.Time = time.Unix(unix, 0).UTC()
	return nil
}

var zerotime = time.Unix(0, 0)
