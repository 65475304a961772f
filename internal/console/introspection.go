package console

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes internal state for observability.
type SessionState struct {
	DateLayout string `json:"date_layout"`
	Catalog    any    `json:"catalog"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	return SessionState{
		DateLayout: s.dateLayout,
		Catalog:    s.catalog.State(),
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
