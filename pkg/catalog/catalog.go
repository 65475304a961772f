// Package catalog is the in-memory store of catalog items.
//
// A Catalog is keyed by item ID and is generic over the category type, so the
// same store groups items by a plain string label, an enum, or any other
// comparable value.
//
// The store performs no locking. It is meant to be owned by a single
// goroutine (the console session); Add and Remove are the calls that would
// need guarding if that ever changes.
package catalog

import (
	"fmt"
	"io"

	"github.com/aretw0/libcat/pkg/core"
)

// Catalog owns every item it holds, keyed by item ID.
type Catalog[C comparable] struct {
	items map[string]core.Item[C]
}

// New creates an empty catalog.
func New[C comparable]() *Catalog[C] {
	return &Catalog[C]{items: make(map[string]core.Item[C])}
}

// Add stores item under its ID. An item already stored under the same ID is replaced.
func (c *Catalog[C]) Add(item core.Item[C]) {
	c.items[item.ID()] = item
}

// Remove deletes the item with the given ID.
// It returns an error wrapping core.ErrNotFound when no such item exists,
// in which case the catalog is left unchanged.
func (c *Catalog[C]) Remove(id string) error {
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("item with ID %s: %w", id, core.ErrNotFound)
	}
	delete(c.items, id)
	return nil
}

// Get returns the item stored under id.
func (c *Catalog[C]) Get(id string) (core.Item[C], bool) {
	item, ok := c.items[id]
	return item, ok
}

// Has reports whether an item with the given ID is stored.
func (c *Catalog[C]) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// HasItems reports whether the catalog holds at least one item.
func (c *Catalog[C]) HasItems() bool {
	return len(c.items) > 0
}

// Len returns the number of stored items.
func (c *Catalog[C]) Len() int {
	return len(c.items)
}

// Categories returns the distinct categories of the stored items.
// The result is a fresh set; iteration order is unspecified.
func (c *Catalog[C]) Categories() map[C]struct{} {
	set := make(map[C]struct{})
	for _, item := range c.items {
		set[item.Category()] = struct{}{}
	}
	return set
}

// Items returns the stored items accepted by filter, in no particular order.
func (c *Catalog[C]) Items(filter Filter[C]) []core.Item[C] {
	out := make([]core.Item[C], 0, len(c.items))
	for _, item := range c.items {
		if filter.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Renderer writes a list of items to w.
type Renderer[C comparable] interface {
	Render(w io.Writer, items []core.Item[C]) error
}

// Display renders the items accepted by filter.
// Rows come out in map order; sort in the renderer if a stable order is needed.
func (c *Catalog[C]) Display(w io.Writer, filter Filter[C], r Renderer[C]) error {
	return r.Render(w, c.Items(filter))
}
