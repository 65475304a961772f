package catalog

import "github.com/aretw0/libcat/pkg/core"

// Filter selects items by exact category. The zero value selects everything.
type Filter[C comparable] struct {
	category C
	set      bool
}

// All returns a filter that accepts every item.
func All[C comparable]() Filter[C] {
	return Filter[C]{}
}

// ByCategory returns a filter that accepts only items whose category equals category.
func ByCategory[C comparable](category C) Filter[C] {
	return Filter[C]{category: category, set: true}
}

// Match reports whether item passes the filter.
func (f Filter[C]) Match(item core.Item[C]) bool {
	return !f.set || item.Category() == f.category
}
