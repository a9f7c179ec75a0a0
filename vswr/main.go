package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/govswr/pkg/bridge"
	"github.com/itohio/govswr/pkg/config"
	"github.com/itohio/govswr/pkg/display"
	"github.com/itohio/govswr/pkg/nextion"
	"github.com/itohio/govswr/pkg/panel"
	"github.com/itohio/govswr/pkg/settings"
	"github.com/itohio/govswr/pkg/sim"
)

func main() {
	var (
		portFlag     = flag.String("p", "", "Nextion serial port override (e.g., COM3 or /dev/ttyUSB0)")
		configFlag   = flag.String("config", "config.yaml", "Configuration file path")
		headlessFlag = flag.Bool("headless", false, "Drive the serial panel only, without a window")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	store, err := openSettings(cfg.Settings)
	if err != nil {
		log.Fatalf("Failed to open settings: %v", err)
	}

	src := sim.New(cfg.Simulator)
	b := bridge.New(src)

	if *headlessFlag {
		if err := runHeadless(cfg, b, store); err != nil {
			log.Fatal(err)
		}
		return
	}

	application := app.NewWithID("com.itohio.govswr")
	window := application.NewWindow("VSWR Meter")
	window.Resize(fyne.NewSize(760, 620))
	window.CenterOnScreen()

	state := &appState{
		cfg:        cfg,
		configPath: *configFlag,
		window:     window,
		src:        src,
		panel:      panel.New(),
	}

	state.loop = newMeterLoop(cfg.Timing, b)

	// attach first so the physical panel sees the splash text
	if cfg.Serial.Port != "" {
		if err := state.serial.attach(cfg.Serial, state.loop); err != nil {
			log.Printf("Panel not connected: %v", err)
		}
	}
	state.loop.machine = display.New(nextion.Tee{state.panel, &state.serial}, b, store)

	state.panel.OnTouch = func(t nextion.Touch) {
		if e, ok := display.EventForTouch(t); ok {
			state.loop.Post(e)
		}
	}

	status := widget.NewLabel("")
	state.loop.OnReadings = func(r bridge.Readings) {
		fyne.Do(func() { status.SetText(r.String()) })
	}

	ctx, cancel := context.WithCancel(context.Background())
	go state.loop.Run(ctx)

	window.SetContent(container.NewBorder(
		createToolbar(state),
		container.NewVBox(createSimulatorControls(state), status),
		nil,
		nil,
		state.panel,
	))
	window.SetOnClosed(func() {
		cancel()
		state.serial.detach()
	})

	window.ShowAndRun()
}

// appState holds the application state.
type appState struct {
	cfg        *config.Config
	configPath string
	window     fyne.Window
	src        *sim.Source
	panel      *panel.Panel
	serial     serialSlot
	loop       *meterLoop
}

// openSettings opens the persisted settings. An empty path keeps them in
// memory for the session.
func openSettings(cfg config.SettingsConfig) (settings.Store, error) {
	if cfg.File == "" {
		return settings.Load(settings.NewMemory(settings.Size)), nil
	}

	dev, err := settings.OpenFile(cfg.File)
	if err != nil {
		return nil, err
	}
	return settings.Load(dev), nil
}

// serialSlot is a Display forwarding to a physical panel while one is
// attached.
type serialSlot struct {
	mu   sync.Mutex
	port *nextion.Serial
}

var _ nextion.Display = (*serialSlot)(nil)

func (s *serialSlot) Send(cmd string) {
	s.mu.Lock()
	port := s.port
	s.mu.Unlock()

	if port != nil {
		port.Send(cmd)
	}
}

// attach connects a physical panel and feeds its button presses to l.
func (s *serialSlot) attach(cfg config.SerialConfig, l *meterLoop) error {
	port := nextion.NewSerial(cfg.Port, cfg.Baud)
	if err := port.Connect(); err != nil {
		return err
	}

	go func() {
		for t := range port.Touches() {
			if e, ok := display.EventForTouch(t); ok {
				l.Post(e)
			}
		}
	}()

	s.mu.Lock()
	s.port = port
	s.mu.Unlock()

	log.Printf("Connected to panel on %s", cfg.Port)
	return nil
}

func (s *serialSlot) detach() {
	s.mu.Lock()
	port := s.port
	s.port = nil
	s.mu.Unlock()

	if port == nil {
		return
	}
	if err := port.Close(); err != nil {
		log.Printf("Error closing panel port: %v", err)
	}
	log.Printf("Disconnected from panel, %d commands dropped", port.Dropped())
}

func (s *serialSlot) attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port != nil
}

// createToolbar creates the toolbar with the connect, settings and front
// panel buttons.
func createToolbar(state *appState) fyne.CanvasObject {
	connectBtn := widget.NewButtonWithIcon("", theme.LoginIcon(), func() {
		handleConnect(state)
	})

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		showSettingsDialog(state)
	})

	nextBtn := widget.NewButton("Next", func() { state.loop.Post(display.EventNext) })
	scaleBtn := widget.NewButton("Scale", func() { state.loop.Post(display.EventScale) })
	peakBtn := widget.NewButton("Peak/Average", func() { state.loop.Post(display.EventPeak) })

	return container.NewBorder(
		nil,
		nil,
		container.NewHBox(connectBtn, settingsBtn),
		container.NewHBox(nextBtn, scaleBtn, peakBtn),
		nil,
	)
}

// handleConnect toggles the physical panel connection.
func handleConnect(state *appState) {
	if state.serial.attached() {
		state.serial.detach()
		return
	}

	if state.cfg.Serial.Port == "" {
		dialog.ShowInformation("Panel", "Select a serial port in the settings first", state.window)
		return
	}

	if err := state.serial.attach(state.cfg.Serial, state.loop); err != nil {
		dialog.ShowError(fmt.Errorf("failed to connect to %s: %w", state.cfg.Serial.Port, err), state.window)
	}
}

// runHeadless drives a physical panel from the simulator until interrupted.
func runHeadless(cfg *config.Config, b *bridge.Bridge, store settings.Store) error {
	if cfg.Serial.Port == "" {
		return fmt.Errorf("headless mode needs a serial port")
	}

	var out serialSlot
	loop := newMeterLoop(cfg.Timing, b)
	loop.OnReadings = func(r bridge.Readings) {
		log.Printf("Readings: %v", r)
	}

	if err := out.attach(cfg.Serial, loop); err != nil {
		return fmt.Errorf("failed to connect to panel: %w", err)
	}
	defer out.detach()

	loop.machine = display.New(&out, b, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop.Run(ctx)
	return nil
}
