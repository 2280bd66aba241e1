package domain

import (
	"regexp"
	"strings"
)

// CourseQuery is the ordered list of normalized course identifiers the user
// asked for. Duplicates are not removed here; the service decides how to
// treat them.
type CourseQuery []string

var innerWhitespace = regexp.MustCompile(`\s+`)

// ParseCourseQuery splits free text on commas and normalizes each entry:
// trimmed, uppercased, internal whitespace collapsed to single spaces.
// Empty entries are dropped, so input of only commas or whitespace yields
// an empty query.
func ParseCourseQuery(raw string) CourseQuery {
	parts := strings.Split(raw, ",")
	query := make(CourseQuery, 0, len(parts))
	for _, part := range parts {
		course := strings.TrimSpace(part)
		if course == "" {
			continue
		}
		course = innerWhitespace.ReplaceAllString(strings.ToUpper(course), " ")
		query = append(query, course)
	}
	return query
}
