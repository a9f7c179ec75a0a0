//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"machine"
	"time"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/display"
	"github.com/itohio/govswr/pkg/nextion"
	"github.com/itohio/govswr/pkg/settings"
)

var (
	adcForward machine.ADC
	adcReverse machine.ADC
	uart       = machine.UART0

	touches nextion.Decoder
	frame   []byte
)

// detectors reads the two log detectors as 10 bit codes.
type detectors struct{}

func (detectors) ReadChannel(ch bridge.Channel) uint16 {
	// Get returns a 16 bit left aligned value
	if ch == bridge.Forward {
		return adcForward.Get() >> ADC_SHIFT
	}
	return adcReverse.Get() >> ADC_SHIFT
}

// panelUART writes commands to the Nextion panel.
type panelUART struct{}

func (panelUART) Send(cmd string) {
	frame = nextion.AppendFrame(frame[:0], cmd)
	uart.Write(frame)
}

func main() {
	PIN_FWD_ADC.Configure(machine.PinConfig{Mode: machine.PinInput})
	PIN_REV_ADC.Configure(machine.PinConfig{Mode: machine.PinInput})
	PIN_DEBUG_SCOPE.Configure(machine.PinConfig{Mode: machine.PinOutput})

	adcForward = machine.ADC{Pin: PIN_FWD_ADC}
	adcReverse = machine.ADC{Pin: PIN_REV_ADC}

	adcConfig := machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: ADC_RESOLUTION,
	}
	adcForward.Configure(adcConfig)
	adcReverse.Configure(adcConfig)

	uart.Configure(machine.UARTConfig{
		BaudRate: UART_BAUD_RATE,
	})

	b := bridge.New(detectors{})
	store := settings.Load(openFlash())
	m := display.New(panelUART{}, b, store)

	var (
		lastFast = time.Now()
		lastSlow = lastFast
		slow     int
	)

	for {
		now := time.Now()

		if now.Sub(lastFast) >= FAST_TICK_US*time.Microsecond {
			b.FastTick()
			lastFast = now
		}

		if now.Sub(lastSlow) >= SLOW_TICK_MS*time.Millisecond {
			b.Tick()
			lastSlow = now

			slow++
			if slow >= DISPLAY_DIVIDER {
				slow = 0
				processTouches(m)

				PIN_DEBUG_SCOPE.High()
				m.Tick()
				PIN_DEBUG_SCOPE.Low()
			}
		}
	}
}

// processTouches feeds received panel bytes to the decoder and dispatches
// button presses.
func processTouches(m *display.Machine) {
	for uart.Buffered() > 0 {
		data, err := uart.ReadByte()
		if err != nil {
			break
		}

		f, ok := touches.Feed(data)
		if !ok {
			continue
		}
		t, ok := f.Touch()
		if !ok {
			continue
		}
		if e, ok := display.EventForTouch(t); ok {
			m.Handle(e)
		}
	}
}
