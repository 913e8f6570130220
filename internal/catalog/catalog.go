// Package catalog stores course records in an ordered in-memory structure
// keyed by course number. The underlying container is an unbalanced binary
// search tree; keys compare byte-wise, so callers are expected to normalize
// course numbers to uppercase before insertion (the loader does this).
package catalog

// Course is a single course record. Number is the unique key. Prerequisites
// holds course numbers that may or may not be present in the catalog; they
// are resolved at render time, never eagerly.
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// node is one tree entry. Children are ordered by Course.Number: everything
// reachable via left sorts before this node, everything via right after.
type node struct {
	course Course
	left   *node
	right  *node
}

// Tree is a binary search tree of courses ordered by course number.
// The zero value is an empty tree ready for use. Insert, Find and Walk are
// iterative; tree depth never touches the goroutine stack.
type Tree struct {
	root *node
	size int
}

// New returns an empty course tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of courses currently stored.
func (t *Tree) Len() int {
	return t.size
}

// Insert adds a course keyed by its Number, or updates the existing entry's
// title and prerequisites when the key is already present. It never fails.
func (t *Tree) Insert(c Course) {
	c.Prerequisites = clonePrereqs(c.Prerequisites)

	if t.root == nil {
		t.root = &node{course: c}
		t.size++
		return
	}

	cur := t.root
	for {
		switch {
		case c.Number < cur.course.Number:
			if cur.left == nil {
				cur.left = &node{course: c}
				t.size++
				return
			}
			cur = cur.left
		case c.Number > cur.course.Number:
			if cur.right == nil {
				cur.right = &node{course: c}
				t.size++
				return
			}
			cur = cur.right
		default:
			// Upsert: same key, replace payload in place.
			cur.course.Title = c.Title
			cur.course.Prerequisites = c.Prerequisites
			return
		}
	}
}

// Find returns the course stored under the given number. The second return
// value is false when no entry matches. Find never mutates the tree, and the
// returned course shares no state with it.
func (t *Tree) Find(number string) (Course, bool) {
	cur := t.root
	for cur != nil {
		switch {
		case number < cur.course.Number:
			cur = cur.left
		case number > cur.course.Number:
			cur = cur.right
		default:
			return cur.course.detach(), true
		}
	}
	return Course{}, false
}

// Walk visits every course in ascending course-number order. The traversal
// stops early if visit returns false. Walk is restartable: it can be called
// any number of times and always starts from the smallest key.
func (t *Tree) Walk(visit func(Course) bool) {
	// Iterative in-order traversal over an explicit stack.
	stack := make([]*node, 0, 16)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur.course.detach()) {
			return
		}
		cur = cur.right
	}
}

// InOrder returns all courses in ascending course-number order.
func (t *Tree) InOrder() []Course {
	out := make([]Course, 0, t.size)
	t.Walk(func(c Course) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Clear removes every entry, returning the tree to its empty initial state.
// Nodes become unreachable in one step; the garbage collector reclaims them.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// detach returns a copy whose prerequisite slice is independent of the tree,
// so callers cannot corrupt a stored entry through a returned course.
func (c Course) detach() Course {
	c.Prerequisites = clonePrereqs(c.Prerequisites)
	return c
}

func clonePrereqs(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
