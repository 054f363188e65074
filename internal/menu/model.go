package menu

import (
	"github.com/javiplav/terminal-command-menu/internal/rank"
)

// Model is the paging and filtering state of the menu. Row numbers are
// 1-based positions in the filtered list, so they stay stable across pages.
type Model struct {
	items    []rank.Command
	visible  []rank.Command
	query    string
	page     int
	pageSize int
}

// NewModel creates a Model over items showing pageSize rows per page.
func NewModel(items []rank.Command, pageSize int) *Model {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Model{items: items, visible: items, pageSize: pageSize}
}

// Query returns the active filter text.
func (m *Model) Query() string { return m.query }

// Len returns the number of commands matching the filter.
func (m *Model) Len() int { return len(m.visible) }

// SetQuery filters items by case-insensitive substring over text and
// category and returns to the first page. An empty query clears the filter.
func (m *Model) SetQuery(query string) {
	m.query = query
	m.page = 0
	if query == "" {
		m.visible = m.items
		return
	}
	m.visible = rank.Apply(m.items, rank.Search(query))
}

// Pages returns the page count; an empty list has one (empty) page.
func (m *Model) Pages() int {
	if len(m.visible) == 0 {
		return 1
	}
	return (len(m.visible) + m.pageSize - 1) / m.pageSize
}

// PageIndex returns the 0-based current page.
func (m *Model) PageIndex() int { return m.page }

// Next moves to the next page and reports whether it moved.
func (m *Model) Next() bool {
	if m.page+1 >= m.Pages() {
		return false
	}
	m.page++
	return true
}

// Prev moves to the previous page and reports whether it moved.
func (m *Model) Prev() bool {
	if m.page == 0 {
		return false
	}
	m.page--
	return true
}

// Page returns the rows on the current page and the row number of the
// first one.
func (m *Model) Page() ([]rank.Command, int) {
	start := m.page * m.pageSize
	if start >= len(m.visible) {
		return nil, start + 1
	}
	end := min(start+m.pageSize, len(m.visible))
	return m.visible[start:end], start + 1
}

// Select returns the command with row number n.
func (m *Model) Select(n int) (rank.Command, bool) {
	if n < 1 || n > len(m.visible) {
		return rank.Command{}, false
	}
	return m.visible[n-1], true
}
