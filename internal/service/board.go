package service

import (
	"strings"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

// OrderingBoard tracks the two tile partitions of a sentence-assembly
// question: the learner's current assembly and the remaining pool. The two
// partitions always hold exactly the question's original tiles between
// them.
type OrderingBoard struct {
	placed    []entities.SentencePart
	available []entities.SentencePart
	canonical string
}

// NewOrderingBoard initializes a board from an ordering question: every
// tile starts in the available pool.
func NewOrderingBoard(q *entities.Question) *OrderingBoard {
	return &OrderingBoard{
		available: append([]entities.SentencePart(nil), q.SentenceParts...),
		canonical: q.CorrectAnswer,
	}
}

// Move transfers the tile at index from one partition to the end of the
// other. Removal is index-stable: later tiles shift down without otherwise
// reordering the source partition. Returns false when index is out of
// range.
func (b *OrderingBoard) Move(index int, fromAvailable bool) bool {
	src, dst := &b.available, &b.placed
	if !fromAvailable {
		src, dst = &b.placed, &b.available
	}
	if index < 0 || index >= len(*src) {
		return false
	}

	part := (*src)[index]
	*src = append((*src)[:index], (*src)[index+1:]...)
	*dst = append(*dst, part)
	return true
}

// Placed returns a copy of the current assembly in order.
func (b *OrderingBoard) Placed() []entities.SentencePart {
	return append([]entities.SentencePart(nil), b.placed...)
}

// Available returns a copy of the remaining pool in order.
func (b *OrderingBoard) Available() []entities.SentencePart {
	return append([]entities.SentencePart(nil), b.available...)
}

// Snapshot returns copies of both partitions.
func (b *OrderingBoard) Snapshot() (placed, available []entities.SentencePart) {
	return b.Placed(), b.Available()
}

// Attempt joins the placed tile texts with single spaces.
func (b *OrderingBoard) Attempt() string {
	texts := make([]string, len(b.placed))
	for i, p := range b.placed {
		texts[i] = p.Text
	}
	return strings.Join(texts, " ")
}

// Submit reports whether the current assembly matches the canonical
// sentence under answer normalization.
func (b *OrderingBoard) Submit() bool {
	return NormalizeAnswer(b.Attempt()) == NormalizeAnswer(b.canonical)
}
