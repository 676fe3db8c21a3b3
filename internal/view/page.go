package view

import (
	"strings"
	"sync"
)

// Page is an in-memory Surface. It is safe for concurrent use; front-ends read
// it through Snapshot.
type Page struct {
	mu       sync.RWMutex
	input    string
	errMsg   string
	pinned   regionState
	unpinned regionState
}

type regionState struct {
	rows        []Row
	placeholder string
}

// NewPage creates an empty page.
func NewPage() *Page {
	return &Page{}
}

// Input implements Surface.
func (p *Page) Input() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.input
}

// SetInput implements Surface.
func (p *Page) SetInput(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = value
}

// Error implements Surface.
func (p *Page) Error() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.errMsg
}

// SetError implements Surface.
func (p *Page) SetError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errMsg = message
}

// Pinned implements Surface.
func (p *Page) Pinned() Region {
	return &pageRegion{page: p, state: &p.pinned}
}

// Unpinned implements Surface.
func (p *Page) Unpinned() Region {
	return &pageRegion{page: p, state: &p.unpinned}
}

// Snapshot returns a copy of the page contents.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		Input:    p.input,
		Error:    p.errMsg,
		Pinned:   p.pinned.snapshot(),
		Unpinned: p.unpinned.snapshot(),
	}
}

type pageRegion struct {
	page  *Page
	state *regionState
}

func (r *pageRegion) Clear() {
	r.page.mu.Lock()
	defer r.page.mu.Unlock()
	r.state.rows = nil
	r.state.placeholder = ""
}

func (r *pageRegion) Append(row Row) {
	r.page.mu.Lock()
	defer r.page.mu.Unlock()
	if row.Toggle != nil {
		toggle := *row.Toggle
		row.Toggle = &toggle
	}
	r.state.placeholder = ""
	r.state.rows = append(r.state.rows, row)
}

func (r *pageRegion) SetPlaceholder(text string) {
	r.page.mu.Lock()
	defer r.page.mu.Unlock()
	r.state.rows = nil
	r.state.placeholder = text
}

func (s *regionState) snapshot() RegionSnapshot {
	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	return RegionSnapshot{Rows: rows, Placeholder: s.placeholder}
}

// Snapshot is an immutable copy of a Page.
type Snapshot struct {
	Input    string
	Error    string
	Pinned   RegionSnapshot
	Unpinned RegionSnapshot
}

// RegionSnapshot is an immutable copy of one region.
type RegionSnapshot struct {
	Rows        []Row
	Placeholder string
}

// Len returns the number of children in the region. A placeholder counts as
// one child.
func (r RegionSnapshot) Len() int {
	if r.Placeholder != "" {
		return 1
	}
	return len(r.Rows)
}

// Names returns the names of the rows in display order.
func (r RegionSnapshot) Names() []string {
	names := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		names[i] = row.Name
	}
	return names
}

// Text returns the concatenated text content of the region, toggle labels
// included.
func (r RegionSnapshot) Text() string {
	if r.Placeholder != "" {
		return r.Placeholder
	}
	var b strings.Builder
	for _, row := range r.Rows {
		b.WriteString(row.Name)
		if row.Toggle != nil {
			b.WriteString(row.Toggle.Label)
		}
	}
	return b.String()
}
