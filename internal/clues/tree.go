// Package clues accumulates the clues found while exploring in a binary search tree ordered by string comparison.
package clues

import "iter"

// SuspectFinder resolves the suspect a clue points to.
type SuspectFinder interface {
	Lookup(clue string) (suspect string, ok bool)
}

type node struct {
	clue        string
	left, right *node
}

// Tree is an ordered set of clues. The zero value is an empty tree. Share it by pointer so that every caller extends
// the same set.
type Tree struct {
	root *node
	size int
}

// insert returns the root of the subtree after adding clue and whether clue was new.
func insert(n *node, clue string) (*node, bool) {
	if n == nil {
		return &node{clue: clue}, true
	}
	var added bool
	switch {
	case clue < n.clue:
		n.left, added = insert(n.left, clue)
	case clue > n.clue:
		n.right, added = insert(n.right, clue)
	}
	return n, added
}

// Insert adds clue and reports whether it was not collected before. Empty clues are ignored.
func (t *Tree) Insert(clue string) bool {
	if clue == "" {
		return false
	}
	var added bool
	t.root, added = insert(t.root, clue)
	if added {
		t.size++
	}
	return added
}

// Contains reports whether clue has been collected.
func (t *Tree) Contains(clue string) bool {
	n := t.root
	for n != nil {
		switch {
		case clue < n.clue:
			n = n.left
		case clue > n.clue:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of distinct clues.
func (t *Tree) Len() int {
	return t.size
}

// All yields the clues in ascending order.
func (t *Tree) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(t.root, yield)
	}
}

func walk(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.clue) && walk(n.right, yield)
}

// CountVotes counts the clues whose suspect is exactly accused. Clues without a suspect are not votes.
func (t *Tree) CountVotes(finder SuspectFinder, accused string) int {
	votes := 0
	for clue := range t.All() {
		if suspect, ok := finder.Lookup(clue); ok && suspect == accused {
			votes++
		}
	}
	return votes
}
