// Package tui implements the interactive library browser: a two-pane
// view with the category tree on the left and the books under the
// selected category on the right, with keyword filtering and live
// reload when the library file changes on disk.
package tui

import (
	"fmt"
	"strings"

	"lcms/internal/catalog"
	"lcms/internal/library"
	"lcms/internal/tui/themes"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusArea identifies which pane receives navigation keys.
type focusArea int

const (
	focusCategories focusArea = iota
	focusBooks
)

// categoryRow is one line of the flattened category pane, in pre-order.
type categoryRow struct {
	path  string
	name  string
	depth int
	books int
}

// fileChangedMsg reports that the library file changed on disk.
type fileChangedMsg struct{}

// Browser is the bubbletea model for the library browser.
type Browser struct {
	lib   *library.Library
	theme *themes.Theme

	// reload re-reads the library from disk; nil disables the 'r' key
	// and file-change handling.
	reload func() (*library.Library, error)
	// changes delivers one signal per settled change to the library
	// file. The file watcher owns the channel.
	changes <-chan struct{}

	rows      []categoryRow
	catIndex  int
	catOffset int

	entries    []library.Entry
	bookIndex  int
	bookOffset int

	filter    textinput.Model
	filtering bool
	keyword   string

	focus  focusArea
	width  int
	height int
	status string
}

// NewBrowser creates a browser over the given library.
func NewBrowser(lib *library.Library) *Browser {
	ti := textinput.New()
	ti.Placeholder = "title, author or ISBN"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	b := &Browser{
		lib:    lib,
		theme:  themes.Detect(),
		filter: ti,
	}
	b.rebuild()
	return b
}

// WithTheme sets the theme.
func (b *Browser) WithTheme(theme *themes.Theme) *Browser {
	if theme != nil {
		b.theme = theme
	}
	return b
}

// WithReload installs the function used to re-read the library from
// disk, for the 'r' key and for file-change signals.
func (b *Browser) WithReload(reload func() (*library.Library, error)) *Browser {
	b.reload = reload
	return b
}

// WithChanges installs the channel that signals external changes to the
// library file.
func (b *Browser) WithChanges(changes <-chan struct{}) *Browser {
	b.changes = changes
	return b
}

// waitForChange blocks on the change channel and converts one signal
// into a message. Update re-arms it after every delivery.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if b.changes != nil {
		cmds = append(cmds, waitForChange(b.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case fileChangedMsg:
		b.reloadLibrary()
		if b.changes != nil {
			return b, waitForChange(b.changes)
		}
		return b, nil

	case tea.KeyMsg:
		b.status = ""
		if b.filtering {
			return b.updateFilter(msg)
		}
		return b.updateBrowse(msg)
	}

	return b, nil
}

// updateFilter routes keys to the filter input while it has focus.
func (b *Browser) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.filtering = false
		b.filter.Blur()
		b.filter.SetValue("")
		b.keyword = ""
		b.refreshEntries()
		return b, nil
	case "enter":
		b.filtering = false
		b.filter.Blur()
		b.focus = focusBooks
		return b, nil
	}

	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.keyword = b.filter.Value()
	b.refreshEntries()
	return b, cmd
}

// updateBrowse handles navigation keys when no input has focus.
func (b *Browser) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit

	case "tab":
		if b.focus == focusCategories {
			b.focus = focusBooks
		} else {
			b.focus = focusCategories
		}

	case "up", "k":
		b.move(-1)

	case "down", "j":
		b.move(1)

	case "g", "home":
		b.moveTo(0)

	case "G", "end":
		b.moveTo(1 << 30)

	case "/":
		b.filtering = true
		return b, b.filter.Focus()

	case "esc":
		if b.keyword != "" {
			b.filter.SetValue("")
			b.keyword = ""
			b.refreshEntries()
		}

	case "r":
		b.reloadLibrary()
	}

	return b, nil
}

// move shifts the selection in the focused pane by delta.
func (b *Browser) move(delta int) {
	if b.focus == focusCategories {
		b.setCategoryIndex(b.catIndex + delta)
	} else {
		b.bookIndex = clamp(b.bookIndex+delta, 0, len(b.entries)-1)
	}
}

// moveTo jumps the selection in the focused pane to index.
func (b *Browser) moveTo(index int) {
	if b.focus == focusCategories {
		b.setCategoryIndex(index)
	} else {
		b.bookIndex = clamp(index, 0, len(b.entries)-1)
	}
}

// setCategoryIndex moves the category selection and relists its books.
func (b *Browser) setCategoryIndex(index int) {
	index = clamp(index, 0, len(b.rows)-1)
	if index == b.catIndex {
		return
	}
	b.catIndex = index
	b.bookIndex = 0
	b.bookOffset = 0
	b.refreshEntries()
}

// reloadLibrary swaps in a fresh library from disk, keeping the
// selected category when it still exists.
func (b *Browser) reloadLibrary() {
	if b.reload == nil {
		return
	}
	keep := b.selectedPath()
	lib, err := b.reload()
	if err != nil {
		b.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	b.lib = lib
	b.rebuild()
	for i, row := range b.rows {
		if row.path == keep {
			b.catIndex = i
			break
		}
	}
	b.refreshEntries()
	b.status = "library reloaded"
}

// rebuild flattens the category tree and relists the selected books.
func (b *Browser) rebuild() {
	b.rows = flattenCategories(b.lib)
	b.catIndex = clamp(b.catIndex, 0, len(b.rows)-1)
	b.refreshEntries()
}

// refreshEntries lists the books under the selected category, applying
// the keyword filter.
func (b *Browser) refreshEntries() {
	entries, err := b.lib.Books(b.selectedPath())
	if err != nil {
		entries = nil
	}
	if b.keyword != "" {
		needle := strings.ToLower(b.keyword)
		filtered := entries[:0:0]
		for _, e := range entries {
			if matchesKeyword(e, needle) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	b.entries = entries
	b.bookIndex = clamp(b.bookIndex, 0, len(b.entries)-1)
}

// selectedPath returns the path of the selected category row.
func (b *Browser) selectedPath() string {
	if b.catIndex < 0 || b.catIndex >= len(b.rows) {
		return ""
	}
	return b.rows[b.catIndex].path
}

// matchesKeyword mirrors keyword search: case-insensitive substring
// over title, author, and ISBN.
func matchesKeyword(e library.Entry, needle string) bool {
	return strings.Contains(strings.ToLower(e.Book.Title), needle) ||
		strings.Contains(strings.ToLower(e.Book.Author), needle) ||
		strings.Contains(strings.ToLower(e.Book.ISBN), needle)
}

// flattenCategories walks the tree in pre-order into display rows.
func flattenCategories(lib *library.Library) []categoryRow {
	var rows []categoryRow
	lib.Tree().Root().Walk(func(n *catalog.Node) bool {
		depth := 0
		if !n.IsRoot() {
			depth = len(catalog.SplitPath(n.Path()))
		}
		rows = append(rows, categoryRow{
			path:  n.Path(),
			name:  n.Name(),
			depth: depth,
			books: n.TotalBooks(),
		})
		return true
	})
	return rows
}

// View implements tea.Model.
func (b *Browser) View() string {
	width := b.width
	if width == 0 {
		width = 80
	}
	height := b.height
	if height == 0 {
		height = 24
	}

	header := b.viewHeader()
	footer := b.viewFooter()

	paneHeight := height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if paneHeight < 3 {
		paneHeight = 3
	}

	catWidth := width / 3
	if catWidth < 20 {
		catWidth = 20
	}
	if catWidth > 40 {
		catWidth = 40
	}
	bookWidth := width - catWidth - 6
	if bookWidth < 20 {
		bookWidth = 20
	}

	catPane := b.paneStyle(focusCategories).Width(catWidth).Height(paneHeight).
		Render(b.viewCategories(catWidth, paneHeight))
	bookPane := b.paneStyle(focusBooks).Width(bookWidth).Height(paneHeight).
		Render(b.viewBooks(bookWidth, paneHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, catPane, " ", bookPane)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// paneStyle picks the focused or unfocused border for a pane.
func (b *Browser) paneStyle(area focusArea) lipgloss.Style {
	if b.focus == area && !b.filtering {
		return b.theme.PaneFocus
	}
	return b.theme.Pane
}

// viewHeader renders the title line and the filter/status line.
func (b *Browser) viewHeader() string {
	stats := b.lib.Stats()
	title := b.theme.Title.Render(b.lib.RootName()) + " " +
		b.theme.Count.Render(fmt.Sprintf("%d books in %d categories", stats.Books, stats.Categories))

	var second string
	switch {
	case b.filtering:
		second = b.filter.View()
	case b.keyword != "":
		second = b.theme.Muted.Render("filter: " + b.keyword)
	case b.status != "":
		second = b.theme.StatusBar.Render(b.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, second)
}

// viewFooter renders the key help line.
func (b *Browser) viewFooter() string {
	keys := []struct{ key, help string }{
		{"↑/↓", "move"},
		{"tab", "pane"},
		{"/", "filter"},
		{"r", "reload"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, b.theme.HelpKey.Render(k.key)+" "+b.theme.Help.Render(k.help))
	}
	return strings.Join(parts, b.theme.Help.Render(" · "))
}

// viewCategories renders the category pane interior.
func (b *Browser) viewCategories(width, height int) string {
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	b.catOffset = scrollTo(b.catIndex, b.catOffset, visible)

	var sb strings.Builder
	sb.WriteString(b.theme.PaneTitle.Render("Categories"))
	sb.WriteString("\n")

	end := b.catOffset + visible - 1
	for i := b.catOffset; i < len(b.rows) && i <= end; i++ {
		row := b.rows[i]
		indent := strings.Repeat("  ", row.depth)
		label := truncate(indent+row.name, width-8)
		count := fmt.Sprintf("(%d)", row.books)
		if i == b.catIndex {
			sb.WriteString(b.theme.Selected.Render("▸ " + label + " " + count))
		} else {
			sb.WriteString("  " + label + " " + b.theme.Count.Render(count))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// viewBooks renders the book pane interior.
func (b *Browser) viewBooks(width, height int) string {
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	b.bookOffset = scrollTo(b.bookIndex, b.bookOffset, visible)

	var sb strings.Builder
	title := fmt.Sprintf("Books (%d)", len(b.entries))
	sb.WriteString(b.theme.PaneTitle.Render(title))
	sb.WriteString("\n")

	if len(b.entries) == 0 {
		if b.keyword != "" {
			sb.WriteString(b.theme.Muted.Render("no books match the filter"))
		} else {
			sb.WriteString(b.theme.Muted.Render("no books in this category"))
		}
		return sb.String()
	}

	end := b.bookOffset + visible - 1
	for i := b.bookOffset; i < len(b.entries) && i <= end; i++ {
		e := b.entries[i]
		line := bookLine(e, width-4)
		if i == b.bookIndex && b.focus == focusBooks {
			sb.WriteString(b.theme.Selected.Render("▸ " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// bookLine formats one book row: title, author, year, owning category.
func bookLine(e library.Entry, width int) string {
	line := fmt.Sprintf("%s — %s (%d)", e.Book.Title, e.Book.Author, e.Book.Year)
	if e.Category != "" {
		line += "  [" + e.Category + "]"
	}
	return truncate(line, width)
}

// scrollTo adjusts a scroll offset so index stays visible.
func scrollTo(index, offset, visible int) int {
	if index < offset {
		return index
	}
	if index >= offset+visible {
		return index - visible + 1
	}
	return offset
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// clamp bounds v to [lo, hi]. hi below lo collapses to lo.
func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run launches the browser in the alternate screen and blocks until
// the user quits.
func Run(b *Browser) error {
	program := tea.NewProgram(b, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
