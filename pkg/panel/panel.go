package panel

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/govswr/pkg/nextion"
)

// Panel is a Fyne widget that renders the Nextion command stream it is
// sent. Taps on buttons are reported as touch events, like the real panel.
type Panel struct {
	widget.BaseWidget

	mu       sync.RWMutex
	model    *Model
	rejected int

	// OnTouch is called on the UI goroutine for every button press.
	OnTouch func(nextion.Touch)
}

var (
	_ nextion.Display = (*Panel)(nil)
	_ fyne.Tappable   = (*Panel)(nil)
)

// New creates a panel showing page 0.
func New() *Panel {
	p := &Panel{model: NewModel()}
	p.ExtendBaseWidget(p)
	return p
}

// Send applies a command and schedules a redraw. It may be called from
// any goroutine.
func (p *Panel) Send(cmd string) {
	p.mu.Lock()
	err := p.model.Apply(cmd)
	if err != nil {
		p.rejected++
	}
	p.mu.Unlock()

	if err != nil {
		log.Printf("Panel rejected %q: %v", cmd, err)
		return
	}

	fyne.Do(p.Refresh)
}

// Rejected returns the number of commands the panel could not execute.
func (p *Panel) Rejected() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rejected
}

// Snapshot returns a copy of what the panel shows.
func (p *Panel) Snapshot() *Model {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.model.Clone()
}

// Tapped reports a press of the button under the pointer.
func (p *Panel) Tapped(ev *fyne.PointEvent) {
	if p.OnTouch == nil {
		return
	}

	x, y, ok := toPanel(p.Size(), ev.Position)
	if !ok {
		return
	}

	p.mu.RLock()
	page := p.model.Page()
	p.mu.RUnlock()

	c, ok := HitTest(page, x, y)
	if !ok {
		return
	}
	p.OnTouch(nextion.Touch{Page: page, Component: c.ID, Press: true})
}

// CreateRenderer creates the widget renderer.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(colourFace)
	return &panelRenderer{
		panel:   p,
		bg:      bg,
		objects: []fyne.CanvasObject{bg},
	}
}

// fit returns the uniform scale and offset that centre the panel in size.
func fit(size fyne.Size) (scale, offX, offY float32) {
	scale = size.Width / Width
	if s := size.Height / Height; s < scale {
		scale = s
	}
	offX = (size.Width - Width*scale) / 2
	offY = (size.Height - Height*scale) / 2
	return scale, offX, offY
}

// toPanel converts a widget position to panel pixels.
func toPanel(size fyne.Size, pos fyne.Position) (x, y int, ok bool) {
	scale, offX, offY := fit(size)
	if scale <= 0 {
		return 0, 0, false
	}

	px := (pos.X - offX) / scale
	py := (pos.Y - offY) / scale
	if px < 0 || py < 0 || px >= Width || py >= Height {
		return 0, 0, false
	}
	return int(px), int(py), true
}
