//go:build !tinygo

package nextion

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the rate the meter configures the panel for.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size of the touch event channel.
	DefaultBufferSize = 16
)

// Serial is a Display on a serial port. Writes are best effort: errors are
// logged and the command is dropped.
type Serial struct {
	port     string
	baudRate int

	conn      serial.Port
	touches   chan Touch
	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
	dropped   int
}

var _ Display = (*Serial)(nil)

// NewSerial creates a panel connection on port. Zero baudRate selects
// DefaultBaudRate.
func NewSerial(port string, baudRate int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:     port,
		baudRate: baudRate,
		touches:  make(chan Touch, DefaultBufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Ports returns the names of available serial ports.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}

// Connect opens the port and starts decoding touch events.
func (s *Serial) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return fmt.Errorf("already connected")
	}

	port, err := serial.Open(s.port, &serial.Mode{BaudRate: s.baudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", s.port, err)
	}

	s.conn = port
	s.connected = true

	// flush anything half sent before we attached
	if _, err := s.conn.Write(terminator); err != nil {
		log.Printf("Error writing to panel: %v", err)
	}

	go s.readTouches(port)

	return nil
}

// Close stops the reader and closes the port.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return nil
	}

	s.cancel()

	var err error
	if s.conn != nil {
		err = s.conn.Close()
		s.conn = nil
	}
	s.connected = false
	close(s.touches)

	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", s.port, err)
	}
	return nil
}

// Touches returns decoded touch events.
func (s *Serial) Touches() <-chan Touch {
	return s.touches
}

// Send writes one terminated command. It never blocks on the panel.
func (s *Serial) Send(cmd string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		s.dropped++
		return
	}

	if _, err := s.conn.Write(AppendFrame(nil, cmd)); err != nil {
		s.dropped++
		log.Printf("Dropped panel command %q: %v", cmd, err)
	}
}

// Dropped returns the number of commands that could not be written.
func (s *Serial) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// IsConnected returns whether the port is open.
func (s *Serial) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Serial) readTouches(conn serial.Port) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in readTouches: %v", r)
		}
	}()

	var dec Decoder
	buf := make([]byte, 64)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err != io.EOF && s.ctx.Err() == nil {
				log.Printf("Error reading from panel: %v", err)
			}
			return
		}
		if n == 0 && s.ctx.Err() != nil {
			return
		}

		for _, b := range buf[:n] {
			frame, ok := dec.Feed(b)
			if !ok {
				continue
			}
			t, ok := frame.Touch()
			if !ok {
				if frame.Rejected() {
					log.Printf("Panel rejected a command")
				}
				continue
			}

			select {
			case s.touches <- t:
			case <-s.ctx.Done():
				return
			default:
				log.Printf("Touch channel full, dropping event %v", t)
			}
		}
	}
}
