// Package model holds the course record and the request payloads the
// HTTP layer binds into.
package model

import (
	"strconv"
	"strings"
	"unicode"
)

// Course is the single record type served by the API.
type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CourseInput carries the writable fields of a course and the rules they
// must satisfy. Length is counted in UTF-16 code units on the raw string;
// nothing is trimmed.
type CourseInput struct {
	Name string `json:"name" validate:"required,utf16min=3"`
}

// ParseCourseID turns a path segment into a course id.
//
// Only the leading integer counts: surrounding whitespace and anything
// after the digits is ignored, so "2abc" and "2.0" both read as 2. A "0x"
// prefix switches to hexadecimal. Segments without a leading integer, and
// ids below 1, yield 0, which never matches a stored course.
func ParseCourseID(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	id, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil || id < 1 {
		return 0
	}
	return int(id)
}

func isDigit(b byte, base int) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case base == 16 && (b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'):
		return true
	}
	return false
}
