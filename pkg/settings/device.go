package settings

import (
	"fmt"
	"log"
	"os"
)

// Memory is an EEPROM held in RAM. Unwritten bytes read as 0xFF like an
// erased part; out of range accesses are ignored.
type Memory struct {
	data []byte
}

var _ EEPROM = (*Memory)(nil)

// NewMemory returns an erased RAM EEPROM of size bytes.
func NewMemory(size int) *Memory {
	if size < Size {
		size = Size
	}
	m := &Memory{data: make([]byte, size)}
	for i := range m.data {
		m.data[i] = 0xFF
	}
	return m
}

func (m *Memory) ReadByte(addr int) byte {
	if addr < 0 || addr >= len(m.data) {
		return 0xFF
	}
	return m.data[addr]
}

func (m *Memory) WriteByte(addr int, b byte) {
	if addr < 0 || addr >= len(m.data) {
		return
	}
	m.data[addr] = b
}

// Bytes returns a copy of the device contents.
func (m *Memory) Bytes() []byte {
	result := make([]byte, len(m.data))
	copy(result, m.data)
	return result
}

// File is an EEPROM image backed by a file, rewritten on every byte write.
type File struct {
	path string
	mem  *Memory
}

var _ EEPROM = (*File)(nil)

// OpenFile loads the EEPROM image at path. A missing file is an erased device.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, mem: NewMemory(Size)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	for i, b := range data {
		f.mem.WriteByte(i, b)
	}
	return f, nil
}

func (f *File) ReadByte(addr int) byte {
	return f.mem.ReadByte(addr)
}

// WriteByte stores b and persists the image. Write failures are logged;
// the RAM copy stays authoritative.
func (f *File) WriteByte(addr int, b byte) {
	f.mem.WriteByte(addr, b)
	if err := f.flush(); err != nil {
		log.Printf("Failed to persist settings: %v", err)
	}
}

func (f *File) flush() error {
	if err := os.WriteFile(f.path, f.mem.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
