// Package report renders course listings and course detail views.
package report

import (
	"fmt"
	"strings"

	"courseplanner/internal/catalog"
)

// Store is the subset of the catalog a report needs: exact lookup and
// ordered enumeration.
type Store interface {
	Find(number string) (catalog.Course, bool)
	Walk(visit func(catalog.Course) bool)
	Len() int
}

// Listing renders every course as "NUMBER, Title", one per line, ascending
// by course number. An empty store renders a no-courses notice.
func Listing(store Store) string {
	if store.Len() == 0 {
		return "No courses loaded."
	}

	var sb strings.Builder
	store.Walk(func(c catalog.Course) bool {
		fmt.Fprintf(&sb, "%s, %s\n", c.Number, c.Title)
		return true
	})
	return strings.TrimRight(sb.String(), "\n")
}

// Describe renders the detail view for one course. The input number is
// uppercased before lookup, so searches are case-insensitive from the user's
// point of view. A missing course is a normal outcome, rendered as a
// not-found message. Prerequisites resolve to their titles when present in
// the store; dangling references render as bare identifiers with a
// not-found-in-data note.
func Describe(store Store, number string) string {
	key := strings.ToUpper(strings.TrimSpace(number))

	course, ok := store.Find(key)
	if !ok {
		return fmt.Sprintf("Course %s not found.", key)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s\n", course.Number, course.Title)

	if len(course.Prerequisites) == 0 {
		sb.WriteString("Prerequisites: None")
		return sb.String()
	}

	sb.WriteString("Prerequisites:")
	for _, id := range course.Prerequisites {
		prereq, found := store.Find(strings.ToUpper(id))
		if found {
			fmt.Fprintf(&sb, "\n  %s, %s", prereq.Number, prereq.Title)
		} else {
			fmt.Fprintf(&sb, "\n  %s (course not found in data)", strings.ToUpper(id))
		}
	}
	return sb.String()
}
