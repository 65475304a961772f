// Package core holds the catalog domain: items, calendar dates and the
// errors shared by the store and the console layer.
package core

import (
	"github.com/google/uuid"
)

// Item is a single catalog entry.
// It is created once by NewItem and never modified afterwards; the store
// hands out copies, so accessors are the only way to read it.
type Item[C comparable] struct {
	id          string
	title       string
	author      string
	category    C
	releaseDate Date
	dateAdded   Date
}

// ItemOption tweaks the generated fields of a new item.
type ItemOption func(*itemMeta)

type itemMeta struct {
	id    string
	added Date
}

// WithID forces the item identifier instead of generating one.
// Intended for tests and fixtures.
func WithID(id string) ItemOption {
	return func(m *itemMeta) {
		m.id = id
	}
}

// AddedOn overrides the date the item is recorded as added.
func AddedOn(d Date) ItemOption {
	return func(m *itemMeta) {
		m.added = d
	}
}

// NewItem builds an item with a random UUID and today's date as DateAdded.
// Title and author are not validated here; the input layer guarantees them.
func NewItem[C comparable](title, author string, category C, releaseDate Date, opts ...ItemOption) Item[C] {
	m := itemMeta{}
	for _, opt := range opts {
		opt(&m)
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	if m.added.IsZero() {
		m.added = Today()
	}

	return Item[C]{
		id:          m.id,
		title:       title,
		author:      author,
		category:    category,
		releaseDate: releaseDate,
		dateAdded:   m.added,
	}
}

// ID returns the storage key of the item.
func (i Item[C]) ID() string { return i.id }

// Title returns the item title.
func (i Item[C]) Title() string { return i.title }

// Author returns the item author.
func (i Item[C]) Author() string { return i.author }

// Category returns the grouping label of the item.
func (i Item[C]) Category() C { return i.category }

// ReleaseDate returns the release date supplied at creation.
func (i Item[C]) ReleaseDate() Date { return i.releaseDate }

// DateAdded returns the day the item entered the catalog.
func (i Item[C]) DateAdded() Date { return i.dateAdded }

// Record is the serializable view of an item.
type Record[C comparable] struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Category    C      `json:"category" yaml:"category"`
	ReleaseDate Date   `json:"release_date" yaml:"release_date"`
	DateAdded   Date   `json:"date_added" yaml:"date_added"`
}

// Record exports the item for encoders.
func (i Item[C]) Record() Record[C] {
	return Record[C]{
		ID:          i.id,
		Title:       i.title,
		Author:      i.author,
		Category:    i.category,
		ReleaseDate: i.releaseDate,
		DateAdded:   i.dateAdded,
	}
}
