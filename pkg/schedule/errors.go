package schedule

import (
	"errors"
)

// YearWindow is the half-width of the accepted year range around the current
// year. Both bounds are exclusive: currentYear-20 and currentYear+20 are
// rejected, currentYear-19 and currentYear+19 are accepted.
const YearWindow = 20

// ErrInvalidYear is returned when the requested year falls outside the
// supported window around the current year.
var ErrInvalidYear = errors.New("year is out of the supported range")

// ValidateYear checks that year lies strictly between now-YearWindow and
// now+YearWindow.
func ValidateYear(now int, year int) error {
	if year <= now-YearWindow || year >= now+YearWindow {
		return ErrInvalidYear
	}
	return nil
}
