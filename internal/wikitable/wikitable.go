// Copyright (c) 2025 Orafly Authors. All rights reserved.

package wikitable

import (
	"strings"
	"sync"
)

// Buffer collects tabular export data and serializes it as a wiki-syntax
// table. Cells fed before Prepare are column headers; cells fed after are
// row data, and a row is committed each time it reaches the header count.
// With no headers recorded, fed cells accumulate in the current row
// indefinitely and no row is ever committed.
type Buffer struct {
	mu       sync.RWMutex
	headers  []string
	data     [][]string
	current  []string
	prepared bool
}

func New() *Buffer {
	return &Buffer{}
}

// Reset clears headers, committed rows, the current row and the prepared
// flag, returning the buffer to its initial state.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.headers = nil
	b.data = nil
	b.current = nil
	b.prepared = false
}

// Feed adds one cell. Before Prepare the cell becomes a column header;
// after, it is appended to the current row, which is committed once it
// holds as many cells as there are headers.
func (b *Buffer) Feed(cell string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.prepared {
		b.headers = append(b.headers, cell)
		return
	}

	b.current = append(b.current, cell)
	if len(b.current) == len(b.headers) {
		b.data = append(b.data, b.current)
		b.current = nil
	}
}

// Prepare switches the buffer from header collection to row collection.
func (b *Buffer) Prepare() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.prepared = true
}

// NumColumns returns the number of headers recorded so far.
func (b *Buffer) NumColumns() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.headers)
}

// String serializes headers and committed rows in wiki table syntax:
// a "||"-delimited header line followed by one "|"-delimited line per row,
// each line newline-terminated. Cells of an uncommitted current row are
// not included.
func (b *Buffer) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("||")
	for _, h := range b.headers {
		sb.WriteString(h)
		sb.WriteString("||")
	}
	sb.WriteByte('\n')

	for _, row := range b.data {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(cell)
			sb.WriteString("|")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
