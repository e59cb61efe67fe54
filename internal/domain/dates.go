package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var birthDatePattern = regexp.MustCompile(`^(\d{2})-(\d{2})$`)

// referenceYear is a leap year, so 29-02 is accepted as a valid birth date.
const referenceYear = 2000

// ParseBirthDate validates a DD-MM string and returns its day and month.
func ParseBirthDate(value string) (day, month int, err error) {
	matches := birthDatePattern.FindStringSubmatch(value)
	if matches == nil {
		return 0, 0, ErrInvalidDate
	}

	day, _ = strconv.Atoi(matches[1])
	month, _ = strconv.Atoi(matches[2])

	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %02d is out of range", ErrInvalidDate, month)
	}

	daysInMonth := time.Date(referenceYear, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > daysInMonth {
		return 0, 0, fmt.Errorf("%w: %02d-%02d is not a real date", ErrInvalidDate, day, month)
	}

	return day, month, nil
}

// FormatBirthDate renders a day and month back to the DD-MM wire format.
func FormatBirthDate(day, month int) string {
	return fmt.Sprintf("%02d-%02d", day, month)
}

// DaysUntilNext returns the whole-day offset from now to the next occurrence
// of the given day-month in now's location. An occurrence earlier this year
// rolls over to next year, so the result is never negative. The subtraction
// is rounded to the nearest day to absorb DST shifts.
func DaysUntilNext(day, month int, now time.Time) int {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	next := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, loc)
	if next.Before(today) {
		next = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, loc)
	}

	return int(math.Round(next.Sub(today).Hours() / 24))
}
