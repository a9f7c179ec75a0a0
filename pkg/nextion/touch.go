package nextion

import "fmt"

// Return codes sent by the panel.
const (
	codeInvalidCmd = 0x00
	codeTouchEvent = 0x65
)

// maxFrame bounds a frame so a noisy line cannot grow the decoder forever.
const maxFrame = 32

// Touch is a component press or release reported by the panel.
type Touch struct {
	Page      int
	Component int
	Press     bool
}

func (t Touch) String() string {
	action := "release"
	if t.Press {
		action = "press"
	}
	return fmt.Sprintf("page %d component %d %s", t.Page, t.Component, action)
}

// Frame is one panel message without its terminator.
type Frame []byte

// Rejected reports whether the panel refused the last command.
func (f Frame) Rejected() bool {
	return len(f) == 1 && f[0] == codeInvalidCmd
}

// Touch decodes a touch event frame: 0x65 page component event.
func (f Frame) Touch() (Touch, bool) {
	if len(f) != 4 || f[0] != codeTouchEvent {
		return Touch{}, false
	}
	return Touch{Page: int(f[1]), Component: int(f[2]), Press: f[3] == 0x01}, true
}

// Decoder splits the panel's byte stream into frames ended by 0xFF 0xFF 0xFF.
type Decoder struct {
	buf []byte
	ffs int
}

// Feed adds one byte and returns a frame when its terminator completes.
func (d *Decoder) Feed(b byte) (Frame, bool) {
	if b == 0xFF {
		d.ffs++
		if d.ffs < len(terminator) {
			return nil, false
		}
		frame := Frame(d.buf)
		d.buf = nil
		d.ffs = 0
		if len(frame) == 0 {
			return nil, false
		}
		return frame, true
	}

	// 0xFF bytes that did not complete a terminator are payload
	for ; d.ffs > 0; d.ffs-- {
		d.buf = append(d.buf, 0xFF)
	}
	if len(d.buf) >= maxFrame {
		d.buf = d.buf[:0]
	}
	d.buf = append(d.buf, b)
	return nil, false
}
