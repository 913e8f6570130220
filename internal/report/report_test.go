package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseplanner/internal/catalog"
)

func populatedTree() *catalog.Tree {
	tree := catalog.New()
	tree.Insert(catalog.Course{Number: "CSCI100", Title: "Introduction to Computer Science"})
	tree.Insert(catalog.Course{Number: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI100"}})
	tree.Insert(catalog.Course{Number: "CSCI400", Title: "Large Software Development", Prerequisites: []string{"CSCI200", "CSCI999"}})
	return tree
}

func TestListing(t *testing.T) {
	got := Listing(populatedTree())

	want := "CSCI100, Introduction to Computer Science\n" +
		"CSCI200, Data Structures\n" +
		"CSCI400, Large Software Development"
	assert.Equal(t, want, got)
}

func TestListingEmptyStore(t *testing.T) {
	assert.Equal(t, "No courses loaded.", Listing(catalog.New()))
}

func TestDescribeNoPrerequisites(t *testing.T) {
	got := Describe(populatedTree(), "CSCI100")

	assert.Contains(t, got, "CSCI100, Introduction to Computer Science")
	assert.Contains(t, got, "Prerequisites: None")
}

func TestDescribeResolvesPrerequisiteTitles(t *testing.T) {
	got := Describe(populatedTree(), "CSCI200")

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "CSCI200, Data Structures", lines[0])
	assert.Equal(t, "Prerequisites:", lines[1])
	assert.Equal(t, "  CSCI100, Introduction to Computer Science", lines[2])
}

func TestDescribeDanglingPrerequisite(t *testing.T) {
	got := Describe(populatedTree(), "CSCI400")

	// The resolvable prerequisite still gets its title; the dangling one is
	// annotated, not dropped.
	assert.Contains(t, got, "  CSCI200, Data Structures")
	assert.Contains(t, got, "  CSCI999 (course not found in data)")
}

func TestDescribeIsCaseInsensitive(t *testing.T) {
	got := Describe(populatedTree(), "csci200")
	assert.Contains(t, got, "CSCI200, Data Structures")
}

func TestDescribeNotFound(t *testing.T) {
	tree := populatedTree()
	before := tree.InOrder()

	got := Describe(tree, "CS777")

	assert.Equal(t, "Course CS777 not found.", got)
	assert.Equal(t, before, tree.InOrder(), "a miss must not alter the store")
}

func TestDescribeTrimsInput(t *testing.T) {
	got := Describe(populatedTree(), "  CSCI100  ")
	assert.Contains(t, got, "CSCI100, Introduction to Computer Science")
}
