package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/libcat/internal/console"
	"github.com/aretw0/libcat/internal/render"
	"github.com/aretw0/libcat/pkg/catalog"
	"github.com/aretw0/libcat/pkg/core"
	"github.com/aretw0/libcat/pkg/input"
)

var fixedToday = core.MustDate(2025, time.April, 1)

type spyRenderer struct {
	calls [][]core.Item[string]
}

func (r *spyRenderer) Render(_ io.Writer, items []core.Item[string]) error {
	r.calls = append(r.calls, items)
	return nil
}

type harness struct {
	cat     *catalog.Catalog[string]
	out     *bytes.Buffer
	session *console.Session
}

func newHarness(t *testing.T, script string, opts ...console.Option) *harness {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := &harness{cat: catalog.New[string](), out: &bytes.Buffer{}}
	p := input.NewPrompter(input.NewLineReader(ctx, strings.NewReader(script)), h.out)
	opts = append([]console.Option{console.WithClock(func() core.Date { return fixedToday })}, opts...)
	h.session = console.NewSession(h.cat, p, h.out, opts...)
	return h
}

func TestSession_AddAndDisplayByCategory(t *testing.T) {
	script := strings.Join([]string{
		"1", "Dune", "Herbert", "SciFi", "1965-06-01",
		"3", "yes", "1",
		"4",
	}, "\n") + "\n"
	h := newHarness(t, script)

	require.NoError(t, h.session.Run(context.Background()))

	require.Equal(t, 1, h.cat.Len())
	item := h.cat.Items(catalog.All[string]())[0]
	assert.NotEmpty(t, item.ID())
	assert.Equal(t, "Dune", item.Title())
	assert.Equal(t, "Herbert", item.Author())
	assert.Equal(t, core.MustDate(1965, time.June, 1), item.ReleaseDate())
	assert.Equal(t, fixedToday, item.DateAdded())
	assert.Equal(t, map[string]struct{}{"SciFi": {}}, h.cat.Categories())

	out := h.out.String()
	assert.Contains(t, out, "Item added with ID "+item.ID())
	assert.Contains(t, out, "Categories:\n1: SciFi\n")
	assert.Contains(t, out, "| SciFi             | Dune ")
}

func TestSession_InvalidMenuChoice(t *testing.T) {
	h := newHarness(t, "9\nabc\n\n4\n")

	require.NoError(t, h.session.Run(context.Background()))
	assert.Equal(t, 3, strings.Count(h.out.String(), "Invalid choice.\n"))
}

func TestSession_AddRetriesInvalidFields(t *testing.T) {
	script := strings.Join([]string{
		"1", "", "Emma", "  ", "Austen", "", "Classic", "1815/12/23", "1815-13-01", "1815-12-23",
		"4",
	}, "\n") + "\n"
	h := newHarness(t, script)

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, "Title must not be empty."))
	assert.Equal(t, 1, strings.Count(out, "Author must not be empty."))
	assert.Equal(t, 1, strings.Count(out, "Category must not be empty."))
	assert.Equal(t, 2, strings.Count(out, "Invalid date format. Please use YYYY-MM-DD."))

	require.Equal(t, 1, h.cat.Len())
	assert.Equal(t, core.MustDate(1815, time.December, 23), h.cat.Items(catalog.All[string]())[0].ReleaseDate())
}

func TestSession_RemoveRequiresExistingID(t *testing.T) {
	h := newHarness(t, "2\nwrong\n\nknown\n4\n")
	h.cat.Add(core.NewItem("Emma", "Austen", "Classic", core.MustDate(1815, time.December, 23), core.WithID("known")))

	require.NoError(t, h.session.Run(context.Background()))

	assert.False(t, h.cat.Has("known"))
	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, "Item ID does not exist or is invalid. Please enter a valid ID."))
	assert.Contains(t, out, "Item removed successfully.")
}

func TestSession_DisplayAll(t *testing.T) {
	spy := &spyRenderer{}
	h := newHarness(t, "3\nmaybe\nNO\n4\n", console.WithRenderer(spy))
	h.cat.Add(core.NewItem("Dune", "Herbert", "SciFi", core.MustDate(1965, time.June, 1)))
	h.cat.Add(core.NewItem("The Hobbit", "Tolkien", "Fantasy", core.MustDate(1937, time.September, 21)))

	require.NoError(t, h.session.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Please answer 'yes' or 'no'.")
	require.Len(t, spy.calls, 1)
	assert.Len(t, spy.calls[0], 2)
}

func TestSession_DisplayFilteredSelection(t *testing.T) {
	spy := &spyRenderer{}
	h := newHarness(t, "3\nyes\n0\n3\nx\n2\n4\n", console.WithRenderer(spy))
	h.cat.Add(core.NewItem("Dune", "Herbert", "SciFi", core.MustDate(1965, time.June, 1)))
	h.cat.Add(core.NewItem("Hyperion", "Simmons", "SciFi", core.MustDate(1989, time.May, 26)))
	h.cat.Add(core.NewItem("The Hobbit", "Tolkien", "Fantasy", core.MustDate(1937, time.September, 21)))

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Equal(t, 3, strings.Count(out, "Invalid category number. Please enter a valid number."))

	// Numbering is recomputed per selection, so read back which category got number 2.
	var chosen string
	for _, line := range strings.Split(out, "\n") {
		if after, ok := strings.CutPrefix(line, "2: "); ok {
			chosen = after
		}
	}
	require.NotEmpty(t, chosen)

	require.Len(t, spy.calls, 1)
	want := len(h.cat.Items(catalog.ByCategory(chosen)))
	assert.Len(t, spy.calls[0], want)
	for _, it := range spy.calls[0] {
		assert.Equal(t, chosen, it.Category())
	}
}

func TestSession_NoCategories(t *testing.T) {
	spy := &spyRenderer{}
	h := newHarness(t, "3\nyes\n4\n", console.WithRenderer(spy))

	require.NoError(t, h.session.Run(context.Background()))
	assert.Contains(t, h.out.String(), "No categories available.")
	assert.Empty(t, spy.calls)
}

func TestSession_InputClosedMidFlow(t *testing.T) {
	h := newHarness(t, "1\nDune\n")

	err := h.session.Run(context.Background())
	assert.ErrorIs(t, err, input.ErrInputClosed)
	assert.Zero(t, h.cat.Len())
}

func TestSession_CustomDateLayout(t *testing.T) {
	h := newHarness(t, "1\nDune\nHerbert\nSciFi\n1965-06-01\n01/06/1965\n4\n",
		console.WithDateLayout("02/01/2006", "DD/MM/YYYY"))

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Enter release date (DD/MM/YYYY):")
	assert.Contains(t, out, "Invalid date format. Please use DD/MM/YYYY.")
	require.Equal(t, 1, h.cat.Len())
	assert.Equal(t, core.MustDate(1965, time.June, 1), h.cat.Items(catalog.All[string]())[0].ReleaseDate())
}

func TestSession_YAMLRenderer(t *testing.T) {
	h := newHarness(t, "3\nno\n4\n", console.WithRenderer(render.YAML[string]{}))
	h.cat.Add(core.NewItem("Dune", "Herbert", "SciFi", core.MustDate(1965, time.June, 1), core.WithID("dune")))

	require.NoError(t, h.session.Run(context.Background()))
	assert.Contains(t, h.out.String(), "id: dune")
}

func TestSession_State(t *testing.T) {
	h := newHarness(t, "")
	h.cat.Add(core.NewItem("Dune", "Herbert", "SciFi", core.MustDate(1965, time.June, 1)))

	state, ok := h.session.State().(console.SessionState)
	require.True(t, ok)
	assert.Equal(t, core.ISODate, state.DateLayout)
	assert.Equal(t, catalog.CatalogState{Items: 1, Categories: 1}, state.Catalog)
	assert.Equal(t, "session", h.session.ComponentType())
}
