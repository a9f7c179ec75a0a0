// Package panel emulates the meter's 320x240 Nextion panel in a Fyne window.
package panel

import (
	"fmt"

	"github.com/itohio/govswr/pkg/nextion"
)

// Width and Height are the panel resolution in pixels.
const (
	Width  = 320
	Height = 240
)

// Line is a primitive drawn with the line command.
type Line struct {
	X1, Y1, X2, Y2 int
	Colour         string
}

// Model holds what the panel currently shows: the page, the component
// attributes set since the page was loaded and the drawn primitives.
type Model struct {
	page   int
	values map[string]int
	texts  map[string]string
	lines  []Line
}

// NewModel returns a model showing page 0.
func NewModel() *Model {
	return &Model{
		values: make(map[string]int),
		texts:  make(map[string]string),
	}
}

// Apply executes one panel command.
func (m *Model) Apply(cmd string) error {
	c, err := nextion.Parse(cmd)
	if err != nil {
		return fmt.Errorf("failed to apply command: %w", err)
	}

	switch c.Kind {
	case nextion.KindPage:
		// loading a page restores its design defaults
		m.page = c.Value
		clear(m.values)
		clear(m.texts)
		m.lines = m.lines[:0]
	case nextion.KindRef:
		m.lines = m.lines[:0]
	case nextion.KindLine:
		m.lines = append(m.lines, Line{c.Args[0], c.Args[1], c.Args[2], c.Args[3], c.Colour})
	case nextion.KindText:
		m.texts[c.Object] = c.Text
	case nextion.KindAssign:
		m.values[c.Object+"."+c.Property] = c.Value
	}
	return nil
}

// Page returns the loaded page.
func (m *Model) Page() int { return m.page }

// Value returns an attribute set on obj.
func (m *Model) Value(obj, prop string) (int, bool) {
	v, ok := m.values[obj+"."+prop]
	return v, ok
}

// Text returns the text set on obj.
func (m *Model) Text(obj string) (string, bool) {
	s, ok := m.texts[obj]
	return s, ok
}

// Lines returns the drawn primitives, oldest first.
func (m *Model) Lines() []Line {
	result := make([]Line, len(m.lines))
	copy(result, m.lines)
	return result
}

// Clone returns a deep copy.
func (m *Model) Clone() *Model {
	c := &Model{
		page:   m.page,
		values: make(map[string]int, len(m.values)),
		texts:  make(map[string]string, len(m.texts)),
		lines:  m.Lines(),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	for k, v := range m.texts {
		c.texts[k] = v
	}
	return c
}
