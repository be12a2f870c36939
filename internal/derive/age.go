// Package derive computes display-only values from a player's raw profile.
// Every function is pure: the reference date is always passed in.
package derive

import (
	"strings"
	"time"

	"github.com/preston-bernstein/isoanalytics/internal/timeutil"
)

// Age returns whole years between birthDate (YYYY-MM-DD) and ref, counting the
// current year only once the birthday has passed. ok is false when the birth
// date is missing or unparseable.
func Age(birthDate string, ref time.Time) (age int, ok bool) {
	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		return 0, false
	}
	born, err := timeutil.ParseDate(birthDate)
	if err != nil {
		return 0, false
	}

	age = ref.Year() - born.Year()
	if ref.Month() < born.Month() || (ref.Month() == born.Month() && ref.Day() < born.Day()) {
		age--
	}
	return age, true
}

// Seasons returns lastYear - firstYear. ok is false when either bound is unknown.
func Seasons(firstYear, lastYear *int) (seasons int, ok bool) {
	if firstYear == nil || lastYear == nil {
		return 0, false
	}
	return *lastYear - *firstYear, true
}
