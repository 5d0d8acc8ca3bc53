package assetbook

import (
	"fmt"
	"time"
)

// SettledAtFormat is the format used for settlement dates in the holdings
// document.
const SettledAtFormat = "2006-01-02"

// settlementHour pins an imported settlement date, which carries no time of
// day, to a fixed instant: 13:00 UTC of that day.
const settlementHour = 13

// EpochMillis is a wall-clock instant in milliseconds since the Unix epoch.
type EpochMillis int64

// Now returns the current wall-clock time.
func Now() EpochMillis { return EpochMillis(time.Now().UnixMilli()) }

// FromTime converts a time.Time to EpochMillis.
func FromTime(t time.Time) EpochMillis { return EpochMillis(t.UnixMilli()) }

// Time returns the canonical time.Time for the instant, in UTC.
func (e EpochMillis) Time() time.Time { return time.UnixMilli(int64(e)).UTC() }

// Elapsed returns the milliseconds elapsed from e to now. It is negative when
// e lies in the future.
func (e EpochMillis) Elapsed(now EpochMillis) int64 { return int64(now) - int64(e) }

// String formats the instant in RFC3339.
func (e EpochMillis) String() string { return e.Time().Format(time.RFC3339) }

// ParseSettledAt parses a settlement date in "2006-01-02" form into the
// instant 13:00 UTC of that day.
func ParseSettledAt(str string) (EpochMillis, error) {
	day, err := time.Parse(SettledAtFormat, str)
	if err != nil {
		return 0, fmt.Errorf("invalid settlement date %q want format %q: %w", str, SettledAtFormat, err)
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), settlementHour, 0, 0, 0, time.UTC)
	return FromTime(at), nil
}
