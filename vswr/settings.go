package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/govswr/pkg/nextion"
)

// showSettingsDialog displays a settings dialog with tabs for all configuration options.
func showSettingsDialog(state *appState) {
	tabs := container.NewAppTabs(
		createSerialTab(state),
		createSimulatorTab(state),
		createTimingTab(state),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)
	content.Resize(fyne.NewSize(500, 360))

	d := dialog.NewCustom("Settings", "Close", content, state.window)
	d.Resize(fyne.NewSize(500, 360))
	d.Show()
}

func saveConfig(state *appState) {
	if err := state.cfg.Save(state.configPath); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
	}
}

// createSerialTab creates the Nextion serial port tab.
func createSerialTab(state *appState) *container.TabItem {
	ports, err := nextion.Ports()
	if err != nil {
		ports = nil
	}

	current := state.cfg.Serial.Port
	found := false
	for _, p := range ports {
		if p == current {
			found = true
			break
		}
	}
	if !found && current != "" {
		ports = append(ports, current)
	}

	portSelect := widget.NewSelect(ports, nil)
	if current != "" {
		portSelect.SetSelected(current)
	}

	baudEntry := widget.NewEntry()
	baudEntry.SetText(strconv.Itoa(state.cfg.Serial.Baud))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Serial Port", Widget: portSelect},
			{Text: "Baud Rate", Widget: baudEntry},
		},
		OnSubmit: func() {
			changed := false
			if portSelect.Selected != "" && portSelect.Selected != state.cfg.Serial.Port {
				state.cfg.Serial.Port = portSelect.Selected
				changed = true
			}
			if baud, err := strconv.Atoi(baudEntry.Text); err == nil && baud > 0 && baud != state.cfg.Serial.Baud {
				state.cfg.Serial.Baud = baud
				changed = true
			}
			saveConfig(state)

			// reconnect a panel that is attached on the old port
			if changed && state.serial.attached() {
				state.serial.detach()
				handleConnect(state)
			}
		},
	}

	return container.NewTabItem("Serial", form)
}

// createSimulatorTab creates the simulated bridge tab.
func createSimulatorTab(state *appState) *container.TabItem {
	forwardEntry := widget.NewEntry()
	forwardEntry.SetText(fmt.Sprintf("%.1f", state.cfg.Simulator.ForwardWatts))

	reflectionEntry := widget.NewEntry()
	reflectionEntry.SetText(fmt.Sprintf("%.3f", state.cfg.Simulator.Reflection))

	noiseEntry := widget.NewEntry()
	noiseEntry.SetText(fmt.Sprintf("%.3f", state.cfg.Simulator.Noise))

	sweepEntry := widget.NewEntry()
	sweepEntry.SetText(state.cfg.Simulator.SweepPeriod.String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Forward Power (W)", Widget: forwardEntry},
			{Text: "Reflection |Γ|", Widget: reflectionEntry},
			{Text: "Noise (V)", Widget: noiseEntry},
			{Text: "Sweep Period (0s = off)", Widget: sweepEntry},
		},
		OnSubmit: func() {
			if w, err := strconv.ParseFloat(forwardEntry.Text, 64); err == nil && w >= 0 {
				state.cfg.Simulator.ForwardWatts = w
				state.src.SetForward(w)
			}
			if g, err := strconv.ParseFloat(reflectionEntry.Text, 64); err == nil && g >= 0 && g <= 1 {
				state.cfg.Simulator.Reflection = g
				state.src.SetReflection(g)
			}
			if n, err := strconv.ParseFloat(noiseEntry.Text, 64); err == nil && n >= 0 {
				state.cfg.Simulator.Noise = n
			}
			if d, err := time.ParseDuration(sweepEntry.Text); err == nil && d >= 0 {
				state.cfg.Simulator.SweepPeriod = d
			}
			saveConfig(state)
		},
	}

	return container.NewTabItem("Simulator", form)
}

// createTimingTab creates the tick timing tab. Changes apply on restart.
func createTimingTab(state *appState) *container.TabItem {
	slowEntry := widget.NewEntry()
	slowEntry.SetText(state.cfg.Timing.SlowTick.String())

	fastEntry := widget.NewEntry()
	fastEntry.SetText(strconv.Itoa(state.cfg.Timing.FastPerSlow))

	dividerEntry := widget.NewEntry()
	dividerEntry.SetText(strconv.Itoa(state.cfg.Timing.DisplayDivider))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Aggregation Period", Widget: slowEntry},
			{Text: "Samples per Aggregation", Widget: fastEntry},
			{Text: "Aggregations per Display Step", Widget: dividerEntry},
		},
		OnSubmit: func() {
			if d, err := time.ParseDuration(slowEntry.Text); err == nil && d > 0 {
				state.cfg.Timing.SlowTick = d
			}
			if n, err := strconv.Atoi(fastEntry.Text); err == nil && n >= 2 {
				state.cfg.Timing.FastPerSlow = n
			}
			if n, err := strconv.Atoi(dividerEntry.Text); err == nil && n > 0 {
				state.cfg.Timing.DisplayDivider = n
			}
			saveConfig(state)
			dialog.ShowInformation("Timing", "Timing changes apply after a restart", state.window)
		},
	}

	return container.NewTabItem("Timing", form)
}

// createSimulatorControls creates sliders for the simulated transmitter.
func createSimulatorControls(state *appState) fyne.CanvasObject {
	forwardLabel := widget.NewLabel("")
	showForward := func(w float64) { forwardLabel.SetText(fmt.Sprintf("Forward %.0f W", w)) }

	forward := widget.NewSlider(0, 2500)
	forward.Step = 1
	forward.SetValue(state.cfg.Simulator.ForwardWatts)
	showForward(forward.Value)
	forward.OnChanged = func(w float64) {
		state.src.SetForward(w)
		showForward(w)
	}

	reflectionLabel := widget.NewLabel("")
	showReflection := func(g float64) { reflectionLabel.SetText(fmt.Sprintf("|Γ| %.2f", g)) }

	reflection := widget.NewSlider(0, 1)
	reflection.Step = 0.01
	reflection.SetValue(state.cfg.Simulator.Reflection)
	showReflection(reflection.Value)
	reflection.OnChanged = func(g float64) {
		state.src.SetReflection(g)
		showReflection(g)
	}

	return container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, forwardLabel, nil, forward),
		container.NewBorder(nil, nil, reflectionLabel, nil, reflection),
	)
}
