package view

type identified interface {
	EntityID() int64
}

// Pointers turns a fetched list into the page's working collection.
func Pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

// Appended adds created items at the end, in response order.
func Appended[T identified](items []*T, created ...*T) []*T {
	return append(items, created...)
}

// Replaced swaps the element whose id matches updated. Every other element
// keeps its identity and position.
func Replaced[T identified](items []*T, updated *T) []*T {
	id := (*updated).EntityID()
	out := make([]*T, len(items))
	for i, item := range items {
		if (*item).EntityID() == id {
			out[i] = updated
		} else {
			out[i] = item
		}
	}
	return out
}

// Removed filters out the element with the given id.
func Removed[T identified](items []*T, id int64) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if (*item).EntityID() != id {
			out = append(out, item)
		}
	}
	return out
}

func Find[T identified](items []*T, id int64) (*T, bool) {
	for _, item := range items {
		if (*item).EntityID() == id {
			return item, true
		}
	}
	return nil, false
}
