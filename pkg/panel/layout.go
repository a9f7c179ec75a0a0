package panel

// Kind is the type of a panel component.
type Kind int

const (
	KindText Kind = iota
	KindButton
	KindToggle // dual state button
	KindBar
	KindGauge
	KindPicture
	KindLabel // static text baked into the page artwork
)

// Rect is a component area in panel pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Component is one object of the HMI project.
type Component struct {
	Name    string
	ID      int
	Kind    Kind
	Rect    Rect
	Caption string // button caption, label text or default text
}

// pages describes the HMI project components per page.
var pages = map[int][]Component{
	0: {
		{Name: "p0t0", Kind: KindLabel, Rect: Rect{40, 70, 240, 30}, Caption: "Log VSWR Bridge"},
		{Name: "p0t1", Kind: KindLabel, Rect: Rect{40, 110, 240, 20}, Caption: "Directional wattmeter"},
		{Name: "p0t3", Kind: KindLabel, Rect: Rect{100, 180, 80, 20}, Caption: "Version"},
		{Name: "p0t4", ID: 5, Kind: KindText, Rect: Rect{180, 180, 40, 20}},
	},
	1: {
		{Name: "p1p0", ID: 1, Kind: KindPicture, Rect: Rect{0, 0, 320, 240}},
		{Name: "p1b0", ID: 2, Kind: KindButton, Rect: Rect{4, 4, 70, 28}, Caption: "Display"},
		{Name: "p1b1", ID: 3, Kind: KindButton, Rect: Rect{125, 4, 70, 28}, Caption: "Scale"},
		{Name: "p1bt0", ID: 4, Kind: KindToggle, Rect: Rect{246, 4, 70, 28}, Caption: "Average"},
	},
	2: {
		{Name: "p2b0", ID: 1, Kind: KindButton, Rect: Rect{4, 4, 70, 28}, Caption: "Display"},
		{Name: "p2t0", Kind: KindLabel, Rect: Rect{4, 44, 80, 20}, Caption: "Forward"},
		{Name: "p2j0", ID: 3, Kind: KindBar, Rect: Rect{4, 66, 312, 30}},
		{Name: "p2t2", ID: 5, Kind: KindText, Rect: Rect{90, 44, 60, 20}},
		{Name: "p2t4", Kind: KindLabel, Rect: Rect{150, 44, 20, 20}, Caption: "W"},
		{Name: "p2bt0", ID: 6, Kind: KindToggle, Rect: Rect{236, 40, 80, 24}, Caption: "Over"},
		{Name: "p2t1", Kind: KindLabel, Rect: Rect{4, 116, 80, 20}, Caption: "VSWR"},
		{Name: "p2j1", ID: 7, Kind: KindBar, Rect: Rect{4, 138, 312, 30}},
		{Name: "p2t3", ID: 11, Kind: KindText, Rect: Rect{90, 116, 60, 20}},
		{Name: "p2b1", ID: 9, Kind: KindButton, Rect: Rect{125, 206, 70, 30}, Caption: "Scale"},
		{Name: "p2bt1", ID: 10, Kind: KindToggle, Rect: Rect{246, 206, 70, 30}, Caption: "Average"},
	},
	3: {
		{Name: "p3b0", ID: 1, Kind: KindButton, Rect: Rect{4, 4, 70, 28}, Caption: "Display"},
		{Name: "p3t0", Kind: KindLabel, Rect: Rect{4, 44, 80, 20}, Caption: "Fwd dBm"},
		{Name: "p3j0", ID: 8, Kind: KindBar, Rect: Rect{4, 66, 312, 30}},
		{Name: "p3t5", ID: 6, Kind: KindText, Rect: Rect{90, 44, 60, 20}},
		{Name: "p3t1", Kind: KindLabel, Rect: Rect{4, 116, 80, 20}, Caption: "Rev dBm"},
		{Name: "p3j1", ID: 9, Kind: KindBar, Rect: Rect{4, 138, 312, 30}},
		{Name: "p3t6", ID: 7, Kind: KindText, Rect: Rect{90, 116, 60, 20}},
		{Name: "p3t2", Kind: KindLabel, Rect: Rect{4, 176, 312, 20}, Caption: "-35          +15          +65"},
	},
	4: {
		{Name: "p4z0", ID: 1, Kind: KindGauge, Rect: Rect{40, 36, 240, 150}},
		{Name: "p4j0", ID: 2, Kind: KindBar, Rect: Rect{4, 190, 312, 12}},
		{Name: "p4b0", ID: 3, Kind: KindButton, Rect: Rect{4, 206, 70, 30}, Caption: "Display"},
		{Name: "p4b1", ID: 4, Kind: KindButton, Rect: Rect{125, 206, 70, 30}, Caption: "Scale"},
		{Name: "p4bt1", ID: 5, Kind: KindToggle, Rect: Rect{246, 206, 70, 30}, Caption: "Average"},
	},
	5: {
		{Name: "p5b0", ID: 1, Kind: KindButton, Rect: Rect{4, 4, 70, 28}, Caption: "Display"},
		{Name: "p5t1", Kind: KindLabel, Rect: Rect{150, 40, 80, 18}, Caption: "Forward"},
		{Name: "p5t2", Kind: KindLabel, Rect: Rect{236, 40, 80, 18}, Caption: "Reverse"},
		{Name: "p5t3", Kind: KindLabel, Rect: Rect{4, 64, 140, 18}, Caption: "Line volts"},
		{Name: "p5t6", ID: 8, Kind: KindText, Rect: Rect{150, 64, 80, 18}},
		{Name: "p5t7", ID: 9, Kind: KindText, Rect: Rect{236, 64, 80, 18}},
		{Name: "p5t16", Kind: KindLabel, Rect: Rect{4, 88, 140, 18}, Caption: "dBm"},
		{Name: "p5t17", ID: 19, Kind: KindText, Rect: Rect{150, 88, 80, 18}},
		{Name: "p5t18", ID: 20, Kind: KindText, Rect: Rect{236, 88, 80, 18}},
		{Name: "p5t8", Kind: KindLabel, Rect: Rect{4, 112, 140, 18}, Caption: "Mean W"},
		{Name: "p5t9", ID: 11, Kind: KindText, Rect: Rect{150, 112, 80, 18}},
		{Name: "p5t10", ID: 12, Kind: KindText, Rect: Rect{236, 112, 80, 18}},
		{Name: "p5t11", Kind: KindLabel, Rect: Rect{4, 136, 140, 18}, Caption: "Peak W"},
		{Name: "p5t12", ID: 14, Kind: KindText, Rect: Rect{150, 136, 80, 18}},
		{Name: "p5t13", ID: 15, Kind: KindText, Rect: Rect{236, 136, 80, 18}},
		{Name: "p5t14", Kind: KindLabel, Rect: Rect{4, 160, 140, 18}, Caption: "VSWR"},
		{Name: "p5t15", ID: 17, Kind: KindText, Rect: Rect{150, 160, 80, 18}},
	},
}

// Components returns the components of a page in drawing order.
func Components(page int) []Component {
	return pages[page]
}

// HitTest returns the touchable component of page under the point.
// Later components are on top.
func HitTest(page, x, y int) (Component, bool) {
	cs := pages[page]
	for i := len(cs) - 1; i >= 0; i-- {
		c := cs[i]
		if c.Kind != KindButton && c.Kind != KindToggle {
			continue
		}
		if c.ID == 0 || !c.Rect.Contains(x, y) {
			continue
		}
		return c, true
	}
	return Component{}, false
}

// pictureLegend names the full scale drawn into each picture resource.
var pictureLegend = map[int]string{
	21: "2 W", 0: "20 W", 1: "200 W", 22: "2 kW",
	8: "2 W", 10: "20 W", 12: "200 W", 14: "2 kW",
	17: "2 W", 18: "20 W", 19: "200 W", 20: "2 kW",
}
