package farm

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// Field is the W x H grid of cells, stored row-major.
type Field struct {
	w, h  int
	cells []*Cell
}

// NewField creates a grid of free cells sharing one factory and sink.
func NewField(w, h int, factory FoodFactory, sink HarvestSink, logger *log.Logger) *Field {
	w, h = max(1, w), max(1, h)
	f := &Field{w: w, h: h, cells: make([]*Cell, 0, w*h)}
	for y := range h {
		for x := range w {
			f.cells = append(f.cells, NewCell(x, y, factory, sink, logger))
		}
	}
	return f
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field) Height() int { return f.h }

// Bounds returns the grid rectangle in cell coordinates.
func (f *Field) Bounds() core.Rect { return core.NewRect(0, 0, f.w, f.h) }

// CellAt returns the cell at (x, y), or nil outside the grid.
func (f *Field) CellAt(x, y int) *Cell {
	if !f.Bounds().Contains(x, y) {
		return nil
	}
	return f.cells[y*f.w+x]
}

// Each calls fn for every cell in row-major order.
func (f *Field) Each(fn func(*Cell)) {
	for _, c := range f.cells {
		fn(c)
	}
}

// Update advances every cell by dt seconds.
func (f *Field) Update(dt float64) {
	for _, c := range f.cells {
		c.Update(dt)
	}
}

// FreeCells returns the cells that hold neither food nor an item.
func (f *Field) FreeCells() []*Cell {
	var out []*Cell
	for _, c := range f.cells {
		if c.IsFree() && c.Item == "" {
			out = append(out, c)
		}
	}
	return out
}

// Items returns the number of pickups lying on the field.
func (f *Field) Items() int {
	n := 0
	for _, c := range f.cells {
		if c.Item != "" {
			n++
		}
	}
	return n
}
