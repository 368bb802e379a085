package clock

import "time"

// Clock is the only source of "now". Services read it once per request and
// pass the value down.
type Clock interface {
	Now() time.Time
}

type System struct {
	Loc *time.Location
}

func (s System) Now() time.Time {
	if s.Loc == nil {
		return time.Now()
	}
	return time.Now().In(s.Loc)
}

type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
