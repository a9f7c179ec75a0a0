package main

import (
	"context"
	"log"
	"time"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/config"
	"github.com/itohio/govswr/pkg/display"
)

// readingsEvery is how many display ticks pass between readings reports.
const readingsEvery = 50

// meterLoop runs the sampler, the aggregator and the display machine on one
// goroutine. Button events are queued and handled between ticks.
type meterLoop struct {
	timing  config.TimingConfig
	bridge  *bridge.Bridge
	machine *display.Machine
	events  chan display.Event

	displayTicks int

	// OnReadings is called from the loop goroutine about once a second.
	OnReadings func(bridge.Readings)
}

// newMeterLoop returns a loop without a display machine. Events may be
// posted before the machine is set; they wait until the loop runs.
func newMeterLoop(timing config.TimingConfig, b *bridge.Bridge) *meterLoop {
	return &meterLoop{
		timing: timing,
		bridge: b,
		events: make(chan display.Event, 16),
	}
}

// Post queues a button event. It never blocks; events are dropped while
// the queue is full.
func (l *meterLoop) Post(e display.Event) {
	select {
	case l.events <- e:
	default:
		log.Printf("Event queue full, dropping %v", e)
	}
}

// step runs one display tick worth of sampling and aggregation, then one
// display step.
func (l *meterLoop) step() {
	for range l.timing.DisplayDivider {
		for range l.timing.FastPerSlow {
			l.bridge.FastTick()
		}
		l.bridge.Tick()
	}

	l.drainEvents()
	l.machine.Tick()

	l.displayTicks++
	if l.displayTicks >= readingsEvery {
		l.displayTicks = 0
		if l.OnReadings != nil {
			l.OnReadings(l.bridge.Snapshot())
		}
	}
}

func (l *meterLoop) drainEvents() {
	for {
		select {
		case e := <-l.events:
			l.machine.Handle(e)
		default:
			return
		}
	}
}

// Run steps the loop every display tick until ctx is cancelled. The slow
// ticks of one display period are run back to back.
func (l *meterLoop) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in meter loop: %v", r)
		}
	}()

	ticker := time.NewTicker(l.timing.DisplayTick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.step()
		}
	}
}
