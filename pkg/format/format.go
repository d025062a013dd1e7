// Package format turns upstream slugs and dates into display strings and
// normalizes text for comparison.
package format

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// HumanDateLayout is the long form used for album and concert dates.
const HumanDateLayout = "2 January 2006"

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleCase uppercases the first letter of every space-separated word and
// leaves the rest of the word untouched.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// FormatPlace renders a location slug such as "new_york-usa" as
// "New York, USA". The last hyphen-delimited segment is the country code;
// a slug without a hyphen has no country.
func FormatPlace(slug string) string {
	pieces := strings.Split(slug, "-")

	var country string
	if len(pieces) > 1 {
		country = pieces[len(pieces)-1]
		pieces = pieces[:len(pieces)-1]
	}

	city := strings.ReplaceAll(strings.Join(pieces, " "), "_", " ")
	result := TitleCase(city)
	if country != "" {
		result += ", " + strings.ToUpper(country)
	}
	return strings.TrimSpace(result)
}

// CleanDate strips the leading '*' the upstream API puts on some dates.
func CleanDate(date string) string {
	return strings.TrimPrefix(date, "*")
}

// ParseDate reads a DD-MM-YYYY date as a UTC calendar date. Out-of-range
// days and months roll over the way a calendar does. The year is taken
// literally, so "99" is year 99 and not 1999, and an empty part does not
// parse.
func ParseDate(date string) (time.Time, bool) {
	parts := strings.Split(CleanDate(date), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ToHumanDate renders "*05-03-2004" as "5 March 2004". Input that does not
// parse is returned without its '*' prefix.
func ToHumanDate(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return CleanDate(date)
	}
	return t.Format(HumanDateLayout)
}
