package game

import (
	"math/rand"
)

// Bag produces piece types using a 7-bag: every type is drawn once before
// any type repeats. Two bags created with the same seed draw identical
// sequences.
type Bag struct {
	rng  *rand.Rand
	used [NumPieceTypes]bool
	left int
}

func NewBag(seed int64) *Bag {
	return &Bag{
		rng:  rand.New(rand.NewSource(seed)),
		left: NumPieceTypes,
	}
}

// Draw picks uniformly among the types not yet used in the current bag,
// starting a fresh bag first when all seven have been used.
func (b *Bag) Draw() PieceType {
	if b.left == 0 {
		b.used = [NumPieceTypes]bool{}
		b.left = NumPieceTypes
	}

	n := b.rng.Intn(b.left)
	for _, t := range AllPieceTypes {
		if b.used[t] {
			continue
		}
		if n == 0 {
			b.used[t] = true
			b.left--
			return t
		}
		n--
	}
	panic("game: bag bookkeeping out of sync")
}

// Queue is the fixed-length preview of upcoming pieces, oldest first.
type Queue struct {
	bag   *Bag
	items []PieceType
}

func NewQueue(bag *Bag, length int) *Queue {
	q := &Queue{
		bag:   bag,
		items: make([]PieceType, 0, length),
	}
	for i := 0; i < length; i++ {
		q.items = append(q.items, bag.Draw())
	}
	return q
}

// Pop removes the front piece and refills the back, keeping the length fixed.
func (q *Queue) Pop() PieceType {
	t := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = q.bag.Draw()
	return t
}

// Peek returns the next piece type without consuming it.
func (q *Queue) Peek() PieceType {
	return q.items[0]
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns a copy of the queue contents.
func (q *Queue) Items() []PieceType {
	out := make([]PieceType, len(q.items))
	copy(out, q.items)
	return out
}
