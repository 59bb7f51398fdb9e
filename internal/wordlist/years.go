package wordlist

import (
	"regexp"
	"sort"
	"strconv"
)

// Graduation offsets added to a birth year.
var graduationOffsets = []int{18, 22}

// CommonYears are appended regardless of the current date.
var CommonYears = []string{
	"2020", "2021", "2022", "2023", "2024", "2025",
	"20", "21", "22", "23", "24", "25",
}

// Years before and after the current year that are included.
const (
	yearsBack    = 5
	yearsForward = 1
)

// twoDigitCutoff splits two-digit birth years between the 2000s and 1900s.
const twoDigitCutoff = 30

var (
	fourDigitYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	twoDigitYear  = regexp.MustCompile(`\b\d{2}\b`)
)

// ExtractBirthYear finds a birth year in a free-form date string. A
// standalone 19xx/20xx run wins; otherwise the first standalone two-digit
// run maps to 2000+n when n <= 30 and 1900+n otherwise.
func ExtractBirthYear(date string) (int, bool) {
	if m := fourDigitYear.FindString(date); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			return year, true
		}
	}

	if m := twoDigitYear.FindString(date); m != "" {
		n, err := strconv.Atoi(m)
		if err == nil {
			if n <= twoDigitCutoff {
				return 2000 + n, true
			}
			return 1900 + n, true
		}
	}

	return 0, false
}

// yearForms returns the four-digit and two-digit forms of year.
func yearForms(year int) []string {
	s := strconv.Itoa(year)
	if len(s) <= 2 {
		return []string{s}
	}
	return []string{s, s[2:]}
}

// GenerateYears returns the sorted, deduplicated year strings for the current
// year window, an optional birth year with assumed graduation years, and the
// common recent years.
func GenerateYears(currentYear int, birthYear int, hasBirthYear bool) []string {
	set := make(map[string]struct{})
	add := func(forms []string) {
		for _, f := range forms {
			set[f] = struct{}{}
		}
	}

	for y := currentYear - yearsBack; y <= currentYear+yearsForward; y++ {
		add(yearForms(y))
	}

	if hasBirthYear {
		add(yearForms(birthYear))
		for _, offset := range graduationOffsets {
			add(yearForms(birthYear + offset))
		}
	}

	add(CommonYears)

	years := make([]string, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
