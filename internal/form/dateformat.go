package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRole tells the date validator which field it is judging; the rules for
// departure and return dates differ.
type DateRole string

const (
	Departure DateRole = "Departure"
	Return    DateRole = "Return"
)

var (
	nonDigits  = regexp.MustCompile(`\D`)
	dateFormat = regexp.MustCompile(`^(0[1-9]|[12]\d|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
)

// FormatDateInput turns raw keystrokes into a DD/MM/YYYY string: strip every
// non-digit, re-insert slashes after the 2nd and 4th digit, drop anything
// past 8 digits. Left-to-right and deterministic; digits are never reordered,
// so re-applying it to its own output is a no-op.
func FormatDateInput(value string) string {
	clean := nonDigits.ReplaceAllString(value, "")
	switch {
	case len(clean) <= 2:
		return clean
	case len(clean) <= 4:
		return clean[:2] + "/" + clean[2:]
	default:
		if len(clean) > 8 {
			clean = clean[:8]
		}
		return clean[:2] + "/" + clean[2:4] + "/" + clean[4:]
	}
}

// ValidateDate judges one date string for the given role. departureDate is
// consulted only for Return, and only when it is itself DD/MM/YYYY shaped.
// Returns "" when valid.
func ValidateDate(date string, role DateRole, departureDate string) string {
	if date == "" {
		return fmt.Sprintf("%s date is required", role)
	}

	if !dateFormat.MatchString(date) {
		return "Please enter date in DD/MM/YYYY format"
	}

	day, month, year := splitDate(date)
	inputDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// time.Date normalizes out-of-range components (31 Feb becomes 2/3 Mar),
	// so a real calendar date must round-trip exactly.
	if inputDate.Day() != day || int(inputDate.Month()) != month || inputDate.Year() != year {
		return "Please enter a valid date"
	}

	if role == Departure {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if inputDate.Before(today) {
			return "Departure date must be in the future"
		}
	}

	if role == Return && dateFormat.MatchString(departureDate) {
		dDay, dMonth, dYear := splitDate(departureDate)
		departure := time.Date(dYear, time.Month(dMonth), dDay, 0, 0, 0, 0, time.Local)
		if !inputDate.After(departure) {
			return "Return date must be after departure date"
		}
	}

	return ""
}

func splitDate(date string) (day, month, year int) {
	parts := strings.Split(date, "/")
	day, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	year, _ = strconv.Atoi(parts[2])
	return day, month, year
}
