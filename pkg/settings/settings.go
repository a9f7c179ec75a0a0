// Package settings keeps the meter's three persistent settings in a small
// byte-addressed non-volatile store.
//
// Layout: address 0 holds InitMarker once the store has been written,
// addresses 1, 2 and 3 hold the display page, the full-scale selection
// and the peak flag.
package settings

const (
	// InitMarker is written to address 0 when the store holds valid settings.
	InitMarker byte = 0x6F

	addrMarker = 0
	addrPage   = 1
	addrScale  = 2
	addrPeak   = 3

	// Size is the number of bytes the settings occupy.
	Size = 4
)

// Factory defaults, matching the front panel legend.
const (
	DefaultPage  = 1 // crossed needles
	DefaultScale = 0 // 2 W
	DefaultPeak  = false
)

// EEPROM is a byte-addressed non-volatile store.
type EEPROM interface {
	ReadByte(addr int) byte
	WriteByte(addr int, b byte)
}

// Store provides the persisted display settings.
type Store interface {
	Page() int
	Scale() int
	Peak() bool
	SetPage(v int)
	SetScale(v int)
	SetPeak(v bool)
}

// Settings caches the settings in RAM and writes each change through to
// its EEPROM byte.
type Settings struct {
	dev   EEPROM
	page  int
	scale int
	peak  bool
}

var _ Store = (*Settings)(nil)

// Load reads the settings from dev. A device without InitMarker is
// initialised with the factory defaults first.
func Load(dev EEPROM) *Settings {
	s := &Settings{dev: dev}

	if dev.ReadByte(addrMarker) != InitMarker {
		s.page, s.scale, s.peak = DefaultPage, DefaultScale, DefaultPeak
		s.writeAll()
	}

	s.page = int(dev.ReadByte(addrPage))
	s.scale = int(dev.ReadByte(addrScale))
	s.peak = dev.ReadByte(addrPeak) != 0
	return s
}

func (s *Settings) writeAll() {
	s.dev.WriteByte(addrMarker, InitMarker)
	s.dev.WriteByte(addrPage, byte(s.page))
	s.dev.WriteByte(addrScale, byte(s.scale))
	s.dev.WriteByte(addrPeak, boolByte(s.peak))
}

// Page returns the display page to start on.
func (s *Settings) Page() int { return s.page }

// Scale returns the full-scale selection.
func (s *Settings) Scale() int { return s.scale }

// Peak reports whether peak rather than average power is displayed.
func (s *Settings) Peak() bool { return s.peak }

// SetPage stores the display page.
func (s *Settings) SetPage(v int) {
	s.page = v
	s.dev.WriteByte(addrPage, byte(v))
}

// SetScale stores the full-scale selection.
func (s *Settings) SetScale(v int) {
	s.scale = v
	s.dev.WriteByte(addrScale, byte(v))
}

// SetPeak stores the peak display flag.
func (s *Settings) SetPeak(v bool) {
	s.peak = v
	s.dev.WriteByte(addrPeak, boolByte(v))
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
