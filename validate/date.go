package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// simpleDatePattern matches spec §4.2's simple-date grammar:
// `-?YYYY(-MM(-DD)?)?` with optional trailing `?`/`~`. Year, month, and day
// components are each composed of digits or the literal 'X' for an unknown
// digit (e.g. "19XX", "1900-0X").
var simpleDatePattern = regexp.MustCompile(`^-?([0-9X]{4})(?:-([0-9X]{2})(?:-([0-9X]{2}))?)?([?~])?$`)

// daysInMonth caps the day component per calendar month. February is
// capped at 29 regardless of leap-year status ("permitting up to day 29
// for safety", spec §4.2).
var daysInMonth = map[int]int{
	1: 31, 2: 29, 3: 31, 4: 30, 5: 31, 6: 30,
	7: 31, 8: 31, 9: 30, 10: 31, 11: 30, 12: 31,
}

// IsValidDateLiteral reports whether s conforms to the FTT date grammar
// (spec §4.2, §6.1): `?`, `..`, a bounded range `[X..Y]`, or a simple date.
func IsValidDateLiteral(s string) bool {
	switch s {
	case "?", "..":
		return true
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return isValidRange(s[1 : len(s)-1])
	}
	return isValidSimpleDate(s)
}

func isValidRange(inner string) bool {
	i := strings.Index(inner, "..")
	if i < 0 {
		return false
	}
	x, y := inner[:i], inner[i+2:]
	if x == "" && y == "" {
		return false
	}
	if x != "" && !isValidSimpleDate(x) {
		return false
	}
	if y != "" && !isValidSimpleDate(y) {
		return false
	}
	return true
}

func isValidSimpleDate(s string) bool {
	m := simpleDatePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month, day := m[2], m[3]

	if month != "" && !hasUnknownDigit(month) {
		mv, err := strconv.Atoi(month)
		if err != nil {
			return false
		}
		isSeason := mv >= 21 && mv <= 24
		if !isSeason && (mv < 1 || mv > 12) {
			return false
		}
		if day != "" {
			if isSeason {
				return false // seasons disallow a day component
			}
			if !hasUnknownDigit(day) {
				dv, err := strconv.Atoi(day)
				if err != nil {
					return false
				}
				if dv < 1 || dv > daysInMonth[mv] {
					return false
				}
			}
		}
	}
	return true
}

func hasUnknownDigit(s string) bool {
	return strings.ContainsRune(s, 'X')
}
