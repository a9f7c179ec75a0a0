//go:build tinygo

package main

import "machine"

const (
	// Tick configuration
	FAST_TICK_US    = 125 // one detector read per fast tick, channels alternate
	SLOW_TICK_MS    = 1   // aggregation period
	DISPLAY_DIVIDER = 20  // aggregations per display step (20 ms)

	// ADC configuration
	ADC_REFERENCE_MV = 3300
	ADC_RESOLUTION   = 10 // bits the calibration table is built for
	ADC_SHIFT        = 16 - ADC_RESOLUTION

	// Detector pins
	PIN_FWD_ADC = machine.A0
	PIN_REV_ADC = machine.A1

	// Goes high while a display step runs, for timing with a scope
	PIN_DEBUG_SCOPE = machine.D10

	// Nextion panel serial configuration
	UART_BAUD_RATE = 115200
)
