package panel

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/chewxy/math32"
)

var (
	colourFace     = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	colourScreen   = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	colourInk      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colourButton   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	colourToggleOn = color.RGBA{R: 200, G: 60, B: 40, A: 255}
	colourBarBack  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colourBarFill  = color.RGBA{R: 40, G: 180, B: 60, A: 255}
	colourLegend   = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// lineColours are the colour names accepted by drawing commands.
var lineColours = map[string]color.Color{
	"BLACK": color.Black,
	"WHITE": color.White,
	"RED":   color.RGBA{R: 255, A: 255},
	"GREEN": color.RGBA{G: 255, A: 255},
	"BLUE":  color.RGBA{B: 255, A: 255},
}

// panelRenderer renders the panel widget.
type panelRenderer struct {
	panel *Panel

	bg      *canvas.Rectangle
	objects []fyne.CanvasObject

	scale      float32
	offX, offY float32
}

// MinSize returns the native panel resolution.
func (r *panelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(Width, Height)
}

// Layout arranges the widget components.
func (r *panelRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.Refresh()
}

// Refresh rebuilds the canvas objects from a snapshot of the model.
func (r *panelRenderer) Refresh() {
	m := r.panel.Snapshot()

	size := r.panel.Size()
	if size.Width == 0 || size.Height == 0 {
		return
	}
	r.scale, r.offX, r.offY = fit(size)

	r.objects = []fyne.CanvasObject{r.bg}
	r.addRect(Rect{0, 0, Width, Height}, colourScreen)

	for _, c := range Components(m.Page()) {
		r.drawComponent(m, c)
	}

	for _, l := range m.Lines() {
		col, ok := lineColours[l.Colour]
		if !ok {
			col = colourInk
		}
		line := canvas.NewLine(col)
		line.Position1 = r.pos(float32(l.X1), float32(l.Y1))
		line.Position2 = r.pos(float32(l.X2), float32(l.Y2))
		line.StrokeWidth = 2
		r.objects = append(r.objects, line)
	}
}

func (r *panelRenderer) drawComponent(m *Model, c Component) {
	switch c.Kind {
	case KindLabel:
		r.addText(c.Rect, c.Caption, colourInk, fyne.TextAlignLeading)

	case KindText:
		s, _ := m.Text(c.Name)
		r.addText(c.Rect, s, colourInk, fyne.TextAlignTrailing)

	case KindButton:
		r.addRect(c.Rect, colourButton)
		r.addText(c.Rect, c.Caption, color.White, fyne.TextAlignCenter)

	case KindToggle:
		fill := colourButton
		if v, _ := m.Value(c.Name, "val"); v != 0 {
			fill = colourToggleOn
		}
		caption := c.Caption
		if s, ok := m.Text(c.Name); ok {
			caption = s
		}
		r.addRect(c.Rect, fill)
		r.addText(c.Rect, caption, color.White, fyne.TextAlignCenter)

	case KindBar:
		val, _ := m.Value(c.Name, "val")
		val = min(max(val, 0), 100)
		r.addRect(c.Rect, colourBarBack)
		fill := c.Rect
		fill.W = c.Rect.W * val / 100
		r.addRect(fill, colourBarFill)
		if pic, ok := m.Value(c.Name, "ppic"); ok {
			r.addText(c.Rect, pictureLegend[pic], color.White, fyne.TextAlignTrailing)
		}

	case KindGauge:
		r.drawGauge(m, c)

	case KindPicture:
		if pic, ok := m.Value(c.Name, "pic"); ok {
			legend := Rect{c.Rect.X, c.Rect.Y + c.Rect.H - 24, c.Rect.W, 20}
			r.addText(legend, "full scale "+pictureLegend[pic], colourLegend, fyne.TextAlignCenter)
		}
	}
}

// drawGauge draws a half dial with val degrees measured clockwise from the
// left horizontal.
func (r *panelRenderer) drawGauge(m *Model, c Component) {
	cx := float32(c.Rect.X) + float32(c.Rect.W)/2
	cy := float32(c.Rect.Y + c.Rect.H)
	radius := float32(c.Rect.H) - 10

	for tick := 0; tick <= 180; tick += 18 {
		a := float32(tick) * math32.Pi / 180
		mark := canvas.NewLine(colourLegend)
		mark.Position1 = r.pos(cx-radius*math32.Cos(a), cy-radius*math32.Sin(a))
		mark.Position2 = r.pos(cx-(radius+8)*math32.Cos(a), cy-(radius+8)*math32.Sin(a))
		mark.StrokeWidth = 1
		r.objects = append(r.objects, mark)
	}

	if pic, ok := m.Value(c.Name, "picc"); ok {
		legend := Rect{c.Rect.X, c.Rect.Y + c.Rect.H - 40, c.Rect.W, 20}
		r.addText(legend, pictureLegend[pic], colourLegend, fyne.TextAlignCenter)
	}

	val, _ := m.Value(c.Name, "val")
	a := float32(val) * math32.Pi / 180
	needle := canvas.NewLine(colourToggleOn)
	needle.Position1 = r.pos(cx, cy)
	needle.Position2 = r.pos(cx-radius*math32.Cos(a), cy-radius*math32.Sin(a))
	needle.StrokeWidth = 2
	r.objects = append(r.objects, needle)

	label := Rect{c.Rect.X, c.Rect.Y + c.Rect.H - 20, c.Rect.W, 18}
	r.addText(label, strconv.Itoa(val)+"°", colourLegend, fyne.TextAlignCenter)
}

// pos converts panel pixels to widget coordinates.
func (r *panelRenderer) pos(x, y float32) fyne.Position {
	return fyne.NewPos(r.offX+x*r.scale, r.offY+y*r.scale)
}

func (r *panelRenderer) addRect(rc Rect, col color.Color) {
	rect := canvas.NewRectangle(col)
	rect.Move(r.pos(float32(rc.X), float32(rc.Y)))
	rect.Resize(fyne.NewSize(float32(rc.W)*r.scale, float32(rc.H)*r.scale))
	r.objects = append(r.objects, rect)
}

func (r *panelRenderer) addText(rc Rect, s string, col color.Color, align fyne.TextAlign) {
	if s == "" {
		return
	}
	text := canvas.NewText(s, col)
	text.TextSize = 12 * r.scale
	text.Alignment = align
	text.Move(r.pos(float32(rc.X), float32(rc.Y)))
	text.Resize(fyne.NewSize(float32(rc.W)*r.scale, float32(rc.H)*r.scale))
	r.objects = append(r.objects, text)
}

// Objects returns all canvas objects for rendering.
func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up resources.
func (r *panelRenderer) Destroy() {}
