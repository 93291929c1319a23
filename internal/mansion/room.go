// Package mansion holds the rooms of the mansion and the interactive exploration through them.
package mansion

import "iter"

// Room is a node of the mansion. Every room owns its children, the mansion is a strict binary tree.
type Room struct {
	Name  string
	Clue  string
	Left  *Room
	Right *Room
}

func NewRoom(name, clue string) *Room {
	return &Room{Name: name, Clue: clue}
}

// Connect sets the paths leading out of r and returns r for chaining. A nil child means there is no path.
func (r *Room) Connect(left, right *Room) *Room {
	r.Left = left
	r.Right = right
	return r
}

func (r *Room) HasClue() bool {
	return r.Clue != ""
}

// Walk yields r and its descendants in pre-order together with their depth, r being at depth 0.
func (r *Room) Walk() iter.Seq2[int, *Room] {
	return func(yield func(int, *Room) bool) {
		r.walk(0, yield)
	}
}

func (r *Room) walk(depth int, yield func(int, *Room) bool) bool {
	if r == nil {
		return true
	}
	return yield(depth, r) && r.Left.walk(depth+1, yield) && r.Right.walk(depth+1, yield)
}
