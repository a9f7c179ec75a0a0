package display

import (
	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/nextion"
)

// Panel object names. They must match the HMI project loaded on the panel.
const (
	splashVersion = "p0t4"

	needleAxes   = "p1p0"
	needleAxesID = 1

	barForward   = "p2j0"
	barVSWR      = "p2j1"
	barWatts     = "p2t2"
	barVSWRText  = "p2t3"
	barOverscale = "p2bt0"

	logForward     = "p3j0"
	logReverse     = "p3j1"
	logForwardText = "p3t5"
	logReverseText = "p3t6"

	meterGauge = "p4z0"
	meterVSWR  = "p4j0"

	engForwardVolts = "p5t6"
	engReverseVolts = "p5t7"
	engForwardDBm   = "p5t17"
	engReverseDBm   = "p5t18"
	engForwardMean  = "p5t9"
	engReverseMean  = "p5t10"
	engForwardPeak  = "p5t12"
	engReversePeak  = "p5t13"
	engVSWR         = "p5t15"
)

var peakButtons = map[Page]string{
	CrossedNeedle: "p1bt0",
	PowerBargraph: "p2bt1",
	Meter:         "p4bt1",
}

// Picture IDs per full-scale selection, as stored in the HMI project.
var (
	barForeground = [...]int{8, 10, 12, 14}
	barBackground = [...]int{7, 9, 11, 13}
	meterPictures = [...]int{17, 18, 19, 20}
	axesPictures  = [...]int{21, 0, 1, 22}
)

// Steps per refresh cycle of each cursor driven page.
const (
	barSteps   = 10
	logSteps   = 10
	meterSteps = 15
	engSteps   = 9
)

// advance returns the current cursor step and moves to the next, wrapping
// after n steps.
func (d *Machine) advance(n int) int {
	step := d.cursor
	d.cursor++
	if d.cursor >= n {
		d.cursor = 0
	}
	return step
}

func (d *Machine) sendBargraphImages() {
	d.send(nextion.SetProperty(barForward, "ppic", barForeground[d.fullScale]))
	d.send(nextion.SetProperty(barForward, "bpic", barBackground[d.fullScale]))
}

func (d *Machine) sendMeterImage() {
	d.send(nextion.SetProperty(meterGauge, "picc", meterPictures[d.fullScale]))
}

// watts returns forward or reverse power in whole watts, peak or mean.
func (d *Machine) watts(ch bridge.Channel, peak bool) int {
	if peak {
		return d.m.PeakOver(ch, false)
	}
	return d.m.MeanOver(ch, false)
}

func (d *Machine) tickPowerBargraph() {
	if d.init {
		d.init = false
		d.sendPeakButton()
		d.sendBargraphImages()
		return
	}

	switch d.advance(barSteps) {
	case 0:
		d.send(nextion.SetValue(barForward, d.scaler.PowerPercent(bridge.Forward, d.fullScale, d.peak)))
	case 4:
		d.send(nextion.SetValue(barVSWR, d.scaler.VSWRPercent()))
	case 7:
		d.send(nextion.SetText(barWatts, FormatInt(d.watts(bridge.Forward, d.peak))))
	case 8:
		d.send(nextion.SetText(barVSWRText, FormatTenths(d.m.VSWR())))
	case 9:
		lit := 0
		if d.scaler.Overscale(bridge.Forward).Show() {
			lit = 1
		}
		d.send(nextion.SetValue(barOverscale, lit))
	}
}

func (d *Machine) tickLogBargraph() {
	if d.init {
		d.init = false
		return
	}

	switch d.advance(logSteps) {
	case 0:
		d.send(nextion.SetValue(logForward, d.scaler.LogPercent(bridge.Forward)))
	case 4:
		d.send(nextion.SetValue(logReverse, d.scaler.LogPercent(bridge.Reverse)))
	case 8:
		d.send(nextion.SetText(logForwardText, FormatTenths(d.m.TenthdBm(bridge.Forward))))
	case 9:
		d.send(nextion.SetText(logReverseText, FormatTenths(d.m.TenthdBm(bridge.Reverse))))
	}
}

func (d *Machine) tickMeter() {
	if d.init {
		d.init = false
		d.sendPeakButton()
		d.sendMeterImage()
		return
	}

	switch d.advance(meterSteps) {
	case 0:
		d.send(nextion.SetValue(meterGauge, d.scaler.MeterDegrees(bridge.Forward, d.fullScale, d.peak)))
	case 10:
		d.send(nextion.SetValue(meterVSWR, d.scaler.VSWRPercent()))
	}
}

func (d *Machine) tickEngineering() {
	if d.init {
		d.init = false
		return
	}

	switch d.advance(engSteps) {
	case 0:
		d.send(nextion.SetText(engForwardVolts, FormatTenths(d.m.LineVoltageTenths(bridge.Forward))))
	case 1:
		d.send(nextion.SetText(engReverseVolts, FormatTenths(d.m.LineVoltageTenths(bridge.Reverse))))
	case 2:
		d.send(nextion.SetText(engForwardDBm, FormatTenths(d.m.TenthdBm(bridge.Forward))))
	case 3:
		d.send(nextion.SetText(engReverseDBm, FormatTenths(d.m.TenthdBm(bridge.Reverse))))
	case 4:
		d.send(nextion.SetText(engForwardMean, FormatInt(d.watts(bridge.Forward, false))))
	case 5:
		d.send(nextion.SetText(engReverseMean, FormatInt(d.watts(bridge.Reverse, false))))
	case 6:
		d.send(nextion.SetText(engForwardPeak, FormatInt(d.watts(bridge.Forward, true))))
	case 7:
		d.send(nextion.SetText(engReversePeak, FormatInt(d.watts(bridge.Reverse, true))))
	case 8:
		d.send(nextion.SetText(engVSWR, FormatTenths(d.m.VSWR())))
	}
}
