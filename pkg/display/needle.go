package display

import (
	"github.com/chewxy/math32"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/nextion"
)

// Crossed-needle geometry in panel pixels.
const (
	needlePivotY    = 239
	needleForwardX  = 243 // forward needle swings left from here
	needleReverseX  = 35  // reverse needle swings right from here
	needleLength    = 234.0
	needleColour    = nextion.Blue
	needleUnset     = -100 // never a valid angle; forces the first redraw
	needleRefresh   = 50   // redraw at least this often, in ticks
	redrawEndStep   = 6
	redrawEraseStep = 0
)

type needleState struct {
	shown     [2]int // angles currently drawn, degrees
	redrawing bool
	since     int // ticks since the last redraw step
}

func (n *needleState) reset() {
	n.shown = [2]int{needleUnset, needleUnset}
	n.redrawing = false
}

// NeedleEnd returns the free end of a needle of the given channel at deg
// degrees above the horizontal.
func NeedleEnd(ch bridge.Channel, deg int) (x, y int) {
	a := float32(deg) * math32.Pi / 180
	dx := needleLength * math32.Cos(a)
	dy := needleLength * math32.Sin(a)

	if ch == bridge.Forward {
		return int(needleForwardX - dx), int(needlePivotY - dy)
	}
	return int(needleReverseX + dx), int(needlePivotY - dy)
}

func needleLine(ch bridge.Channel, deg int) string {
	x1 := needleReverseX
	if ch == bridge.Forward {
		x1 = needleForwardX
	}
	x2, y2 := NeedleEnd(ch, deg)
	return nextion.Line(x1, needlePivotY, x2, y2, needleColour)
}

func (d *Machine) tickCrossedNeedle() {
	n := &d.needle
	n.since++

	if d.init {
		d.init = false
		d.sendPeakButton()
		d.send(nextion.SetPic(needleAxes, axesPictures[d.fullScale]))
		n.reset()
		return
	}

	// angles are held while a redraw is in flight
	if !n.redrawing {
		fwd := d.scaler.NeedleDegrees(bridge.Forward, d.fullScale, d.peak)
		rev := d.scaler.NeedleDegrees(bridge.Reverse, d.fullScale, d.peak)
		if fwd != n.shown[bridge.Forward] || rev != n.shown[bridge.Reverse] || n.since >= needleRefresh {
			n.redrawing = true
			n.shown = [2]int{fwd, rev}
			d.cursor = redrawEraseStep
		}
	}

	if !n.redrawing {
		return
	}

	n.since = 0
	step := d.cursor
	d.cursor++

	switch step {
	case redrawEraseStep:
		d.send(nextion.Ref(needleAxesID))
	case 1:
		d.send(needleLine(bridge.Reverse, n.shown[bridge.Reverse]))
	case 2:
		d.send(needleLine(bridge.Forward, n.shown[bridge.Forward]))
	case redrawEndStep:
		n.redrawing = false
	}
}
