package panel

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/govswr/pkg/nextion"
)

func TestModel_Apply(t *testing.T) {
	m := NewModel()

	require.NoError(t, m.Apply("page 2"))
	require.NoError(t, m.Apply("p2j0.val=42"))
	require.NoError(t, m.Apply("p2j0.ppic=10"))
	require.NoError(t, m.Apply(`p2t3.txt="1.5"`))

	assert.Equal(t, 2, m.Page())
	v, ok := m.Value("p2j0", "val")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	v, _ = m.Value("p2j0", "ppic")
	assert.Equal(t, 10, v)
	s, ok := m.Text("p2t3")
	assert.True(t, ok)
	assert.Equal(t, "1.5", s)

	_, ok = m.Value("p2j1", "val")
	assert.False(t, ok)
}

func TestModel_PageResetsAttributes(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Apply("p2j0.val=42"))
	require.NoError(t, m.Apply(`p2t2.txt="10"`))
	require.NoError(t, m.Apply("line 1,2,3,4,BLUE"))

	require.NoError(t, m.Apply("page 3"))
	_, ok := m.Value("p2j0", "val")
	assert.False(t, ok)
	_, ok = m.Text("p2t2")
	assert.False(t, ok)
	assert.Empty(t, m.Lines())
}

func TestModel_RefErasesLines(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Apply("page 1"))
	require.NoError(t, m.Apply("line 35,239,263,186,BLUE"))
	require.NoError(t, m.Apply("line 243,239,14,186,BLUE"))

	assert.Equal(t, []Line{
		{35, 239, 263, 186, "BLUE"},
		{243, 239, 14, 186, "BLUE"},
	}, m.Lines())

	require.NoError(t, m.Apply("ref 1"))
	assert.Empty(t, m.Lines())
}

func TestModel_RejectsGarbage(t *testing.T) {
	m := NewModel()
	assert.Error(t, m.Apply("bogus"))
	assert.Equal(t, 0, m.Page())
}

func TestModel_Clone(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Apply("p1p0.pic=21"))
	require.NoError(t, m.Apply("line 1,2,3,4,RED"))

	c := m.Clone()
	require.NoError(t, m.Apply("p1p0.pic=0"))
	require.NoError(t, m.Apply("ref 1"))

	v, _ := c.Value("p1p0", "pic")
	assert.Equal(t, 21, v)
	assert.Len(t, c.Lines(), 1)
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		x, y   int
		wantID int
		ok     bool
	}{
		{"display button", 1, 10, 10, 2, true},
		{"scale button", 1, 130, 10, 3, true},
		{"peak toggle", 2, 250, 220, 10, true},
		{"not over a button", 2, 160, 80, 0, false},
		{"labels are not touchable", 5, 10, 70, 0, false},
		{"splash has no buttons", 0, 160, 120, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := HitTest(tt.page, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantID, c.ID)
		})
	}
}

func TestLayout_ComponentsInsidePanel(t *testing.T) {
	for page := 0; page <= 5; page++ {
		for _, c := range Components(page) {
			r := c.Rect
			assert.True(t, r.X >= 0 && r.Y >= 0 && r.X+r.W <= Width && r.Y+r.H <= Height,
				"page %d %s outside the panel", page, c.Name)
		}
	}
}

func TestToPanel(t *testing.T) {
	// twice the native size, letterboxed horizontally
	size := fyne.NewSize(800, 480)

	x, y, ok := toPanel(size, fyne.NewPos(80+20, 40))
	require.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	_, _, ok = toPanel(size, fyne.NewPos(10, 10))
	assert.False(t, ok)

	_, _, ok = toPanel(fyne.NewSize(0, 0), fyne.NewPos(0, 0))
	assert.False(t, ok)
}

func TestPanel_SendAndTap(t *testing.T) {
	test.NewTempApp(t)

	p := New()
	p.Resize(fyne.NewSize(Width, Height))

	var touches []nextion.Touch
	p.OnTouch = func(tc nextion.Touch) { touches = append(touches, tc) }

	p.Send("page 4")
	p.Send("p4z0.val=90")
	p.Send("nonsense")

	m := p.Snapshot()
	assert.Equal(t, 4, m.Page())
	v, _ := m.Value("p4z0", "val")
	assert.Equal(t, 90, v)
	assert.Equal(t, 1, p.Rejected())

	p.Tapped(&fyne.PointEvent{Position: fyne.NewPos(130, 220)})
	assert.Equal(t, []nextion.Touch{{Page: 4, Component: 4, Press: true}}, touches)
}
