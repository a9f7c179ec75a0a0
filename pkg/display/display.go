// Package display drives the meter's Nextion panel.
//
// A Machine owns the current page, the render cursor and the crossed-needle
// redraw gate. Every Tick performs one small step and issues at most one
// panel command, so a slow serial link is never flooded.
package display

import (
	"fmt"
	"log"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/nextion"
	"github.com/itohio/govswr/pkg/scale"
	"github.com/itohio/govswr/pkg/settings"
)

// Page identifies a panel page. Values are the Nextion page IDs.
type Page int

const (
	Splash Page = iota
	CrossedNeedle
	PowerBargraph
	LogBargraph
	Meter
	Engineering
)

// firstPage and lastPage bound the cycle the next button walks.
const (
	firstPage = CrossedNeedle
	lastPage  = Engineering
)

func (p Page) String() string {
	switch p {
	case Splash:
		return "splash"
	case CrossedNeedle:
		return "crossed needle"
	case PowerBargraph:
		return "power bargraph"
	case LogBargraph:
		return "log bargraph"
	case Meter:
		return "meter"
	case Engineering:
		return "engineering"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// Event is a front panel button press.
type Event int

const (
	EventNext Event = iota + 1
	EventScale
	EventPeak
)

func (e Event) String() string {
	switch e {
	case EventNext:
		return "next"
	case EventScale:
		return "scale"
	case EventPeak:
		return "peak"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

const (
	// SoftwareVersion is shown on the splash page.
	SoftwareVersion = 1
	// SplashTicks is how long the splash page stays up.
	SplashTicks = 250
)

// MeterReader is the measurement view the pages display.
type MeterReader interface {
	scale.Meter
	LineVoltageTenths(ch bridge.Channel) int
}

var _ MeterReader = (*bridge.Bridge)(nil)

// Machine is the display page state machine. It is not safe for concurrent
// use: Tick and the event methods must be called from one goroutine.
type Machine struct {
	out    nextion.Display
	m      MeterReader
	scaler *scale.Scaler
	store  settings.Store

	page   Page
	init   bool
	cursor int
	splash int

	fullScale int
	peak      bool

	needle needleState
}

// New returns a Machine showing the splash page. Settings are read from
// store once; every change is written back to it.
func New(out nextion.Display, m MeterReader, store settings.Store) *Machine {
	d := &Machine{
		out:       out,
		m:         m,
		scaler:    scale.New(m),
		store:     store,
		page:      Splash,
		splash:    SplashTicks,
		fullScale: scale.Index(store.Scale()),
		peak:      store.Peak(),
	}
	d.send(nextion.SetText(splashVersion, FormatInt(SoftwareVersion)))
	return d
}

// Page returns the page being displayed.
func (d *Machine) Page() Page { return d.page }

// FullScale returns the full-scale selection index.
func (d *Machine) FullScale() int { return d.fullScale }

// Peak reports whether peak power is displayed instead of average.
func (d *Machine) Peak() bool { return d.peak }

// Scaler returns the scaler holding the overscale indicators.
func (d *Machine) Scaler() *scale.Scaler { return d.scaler }

func (d *Machine) send(cmd string) {
	d.out.Send(cmd)
}

// Tick advances the current page by one rendering step.
func (d *Machine) Tick() {
	switch d.page {
	case Splash:
		d.tickSplash()
	case CrossedNeedle:
		d.tickCrossedNeedle()
	case PowerBargraph:
		d.tickPowerBargraph()
	case LogBargraph:
		d.tickLogBargraph()
	case Meter:
		d.tickMeter()
	case Engineering:
		d.tickEngineering()
	}
}

func (d *Machine) tickSplash() {
	d.splash--
	if d.splash > 0 {
		return
	}

	p := Page(d.store.Page())
	if p < firstPage || p > lastPage {
		p = CrossedNeedle
	}
	d.show(p)
}

// show switches the panel to p and marks the page for initialisation.
func (d *Machine) show(p Page) {
	log.Printf("Display page %v", p)
	d.page = p
	d.init = true
	d.cursor = 0
	d.send(nextion.Page(int(p)))
}

// Handle dispatches a button event. Events are ignored on the splash page.
func (d *Machine) Handle(e Event) {
	switch e {
	case EventNext:
		d.NextPage()
	case EventScale:
		d.NextScale()
	case EventPeak:
		d.TogglePeak()
	}
}

// NextPage moves to the next page of the cycle and persists it.
func (d *Machine) NextPage() {
	if d.page == Splash {
		return
	}

	p := d.page + 1
	if p > lastPage {
		p = firstPage
	}
	d.show(p)
	d.store.SetPage(int(p))
}

// NextScale advances the full-scale selection and refreshes the page
// artwork that depends on it.
func (d *Machine) NextScale() {
	if d.page == Splash {
		return
	}

	d.fullScale = (d.fullScale + 1) % scale.Presets
	d.store.SetScale(d.fullScale)

	switch d.page {
	case CrossedNeedle:
		d.init = true
	case PowerBargraph:
		d.sendBargraphImages()
	case Meter:
		d.sendMeterImage()
	}
}

// TogglePeak switches between peak and average power and persists the mode.
func (d *Machine) TogglePeak() {
	if d.page == Splash {
		return
	}

	d.peak = !d.peak
	d.store.SetPeak(d.peak)
	d.sendPeakButton()
}

// sendPeakButton shows the peak mode on the current page's toggle button.
func (d *Machine) sendPeakButton() {
	btn, ok := peakButtons[d.page]
	if !ok {
		return
	}

	text, val := "Average", 0
	if d.peak {
		text, val = "Peak", 1
	}
	d.send(nextion.SetValue(btn, val))
	d.send(nextion.SetText(btn, text))
}
