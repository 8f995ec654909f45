package raffle

import "slices"

const noSelection = -1

// List is an ordered collection with at most one selected index. The
// selection is always a valid index or none; an empty list never has one.
type List[T any] struct {
	items    []T
	selected int
}

func NewList[T any](items []T) *List[T] {
	return &List[T]{items: slices.Clone(items), selected: noSelection}
}

func (l *List[T]) Len() int { return len(l.items) }

// Items returns a copy of the items in order.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// Selected returns the selected index.
func (l *List[T]) Selected() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

// Next selects the following item, wrapping to the first. With nothing
// selected it selects the first item.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected == noSelection:
		l.selected = 0
	case l.selected >= len(l.items)-1:
		l.selected = 0
	default:
		l.selected++
	}
}

// Previous selects the preceding item, wrapping to the last. With nothing
// selected it selects the first item.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected == noSelection:
		l.selected = 0
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

// Select selects index i. Out of range indexes are ignored.
func (l *List[T]) Select(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.selected = i
}

func (l *List[T]) Unselect() {
	l.selected = noSelection
}

// Current returns a copy of the selected item.
func (l *List[T]) Current() (T, bool) {
	if l.selected == noSelection {
		var zero T
		return zero, false
	}
	return l.items[l.selected], true
}

// At returns a copy of the item at index i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Remove deletes the selected item and clears the selection. Later items
// shift down by one.
func (l *List[T]) Remove() {
	if len(l.items) == 0 || l.selected == noSelection {
		return
	}
	l.items = slices.Delete(l.items, l.selected, l.selected+1)
	l.selected = noSelection
}

// update mutates the item at index i in place.
func (l *List[T]) update(i int, fn func(*T)) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	fn(&l.items[i])
	return true
}
