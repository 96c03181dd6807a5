package clock

import "time"

// Clock abstracts time.Now so time-window logic (rate limiting, cache TTLs,
// reservation deadlines) can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}
