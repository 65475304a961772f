// Package console drives the interactive catalog menu.
//
// The session owns the catalog for its whole lifetime; every value typed by
// the user goes through an input.Prompter before it reaches the store.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/libcat/internal/render"
	"github.com/aretw0/libcat/pkg/catalog"
	"github.com/aretw0/libcat/pkg/core"
	"github.com/aretw0/libcat/pkg/input"
)

// Menu actions.
const (
	ActionAdd = iota + 1
	ActionRemove
	ActionDisplay
	ActionExit
)

const menuPrompt = "Choose an action: (1) Add Item, (2) Remove Item, (3) Display Catalog, (4) Exit"

// Session is one run of the interactive menu over a catalog.
type Session struct {
	catalog    *catalog.Catalog[string]
	prompter   *input.Prompter
	out        io.Writer
	renderer   catalog.Renderer[string]
	dateLayout string
	dateHint   string
	today      func() core.Date
	logger     *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets how the catalog is displayed. Defaults to a table.
func WithRenderer(r catalog.Renderer[string]) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithDateLayout sets the layout used to parse release dates and the hint shown in the prompt.
func WithDateLayout(layout, hint string) Option {
	return func(s *Session) {
		s.dateLayout = layout
		s.dateHint = hint
	}
}

// WithClock sets the source of the current date for new items.
func WithClock(today func() core.Date) Option {
	return func(s *Session) {
		s.today = today
	}
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session that reads through p and writes listings to out.
func NewSession(cat *catalog.Catalog[string], p *input.Prompter, out io.Writer, opts ...Option) *Session {
	s := &Session{
		catalog:    cat,
		prompter:   p,
		out:        out,
		renderer:   render.Table[string]{},
		dateLayout: core.ISODate,
		dateHint:   "YYYY-MM-DD",
		today:      core.Today,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user picks Exit.
// It returns nil on Exit and an error when the input ends, ctx is done, or output fails.
func (s *Session) Run(ctx context.Context) error {
	for {
		choice, err := input.Parsed(ctx, s.prompter, menuPrompt,
			input.IntIn(ActionAdd, ActionRemove, ActionDisplay, ActionExit), "Invalid choice.")
		if err != nil {
			return err
		}

		switch choice {
		case ActionAdd:
			err = s.AddItem(ctx)
		case ActionRemove:
			err = s.RemoveItem(ctx)
		case ActionDisplay:
			err = s.DisplayCatalog(ctx)
		case ActionExit:
			s.logger.Debug("session finished", "items", s.catalog.Len())
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// AddItem collects the item fields and stores a new item.
func (s *Session) AddItem(ctx context.Context) error {
	title, err := s.prompter.Validated(ctx, "Enter title:", input.NonEmpty, "Title must not be empty.")
	if err != nil {
		return err
	}
	author, err := s.prompter.Validated(ctx, "Enter author:", input.NonEmpty, "Author must not be empty.")
	if err != nil {
		return err
	}
	category, err := s.prompter.Validated(ctx, "Enter category:", input.NonEmpty, "Category must not be empty.")
	if err != nil {
		return err
	}
	release, err := input.Parsed(ctx, s.prompter,
		fmt.Sprintf("Enter release date (%s):", s.dateHint),
		input.DateParser(s.dateLayout),
		fmt.Sprintf("Invalid date format. Please use %s.", s.dateHint))
	if err != nil {
		return err
	}

	item := core.NewItem(title, author, category, release, core.AddedOn(s.today()))
	s.catalog.Add(item)
	s.logger.Info("item added", "id", item.ID(), "category", item.Category())
	return s.prompter.Say("Item added with ID %s.", item.ID())
}

// RemoveItem asks for the ID of a stored item and removes it.
func (s *Session) RemoveItem(ctx context.Context) error {
	id, err := s.prompter.Validated(ctx, "Enter item ID to remove:",
		input.All(input.NonEmpty, s.catalog.Has),
		"Item ID does not exist or is invalid. Please enter a valid ID.")
	if err != nil {
		return err
	}
	if err := s.catalog.Remove(id); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	s.logger.Info("item removed", "id", id)
	return s.prompter.Say("Item removed successfully.")
}

// DisplayCatalog asks whether to filter by category and prints the matching items.
func (s *Session) DisplayCatalog(ctx context.Context) error {
	answer, err := s.prompter.Validated(ctx, "Do you want to view by category? (yes/no)",
		input.YesNo, "Please answer 'yes' or 'no'.")
	if err != nil {
		return err
	}
	if !input.IsYes(answer) {
		return s.display(catalog.All[string]())
	}

	category, ok, err := s.SelectCategory(ctx)
	if err != nil || !ok {
		return err
	}
	return s.display(catalog.ByCategory(category))
}

// SelectCategory lists the current categories under fresh 1-based numbers and
// asks the user to pick one. ok is false when the catalog has no categories.
func (s *Session) SelectCategory(ctx context.Context) (category string, ok bool, err error) {
	indexed := catalog.Index(s.catalog.Categories())
	if len(indexed) == 0 {
		return "", false, s.prompter.Say("No categories available.")
	}

	if err := s.prompter.Say("Categories:"); err != nil {
		return "", false, err
	}
	for i := 1; i <= len(indexed); i++ {
		if err := s.prompter.Say("%d: %s", i, indexed[i]); err != nil {
			return "", false, err
		}
	}

	category, err = input.Parsed(ctx, s.prompter, "Enter the number for the category:",
		input.Choice(indexed), "Invalid category number. Please enter a valid number.")
	if err != nil {
		return "", false, err
	}
	return category, true, nil
}

func (s *Session) display(filter catalog.Filter[string]) error {
	if err := s.catalog.Display(s.out, filter, s.renderer); err != nil {
		return fmt.Errorf("display catalog: %w", err)
	}
	return nil
}
