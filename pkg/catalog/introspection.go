package catalog

import (
	"github.com/aretw0/introspection"
)

// CatalogState exposes internal state for observability.
type CatalogState struct {
	Items      int `json:"items"`
	Categories int `json:"categories"`
}

// State implements introspection.Introspectable.
func (c *Catalog[C]) State() any {
	return CatalogState{
		Items:      len(c.items),
		Categories: len(c.Categories()),
	}
}

// ComponentType implements introspection.Component.
func (c *Catalog[C]) ComponentType() string {
	return "catalog"
}

var _ introspection.Introspectable = (*Catalog[string])(nil)
var _ introspection.Component = (*Catalog[string])(nil)
