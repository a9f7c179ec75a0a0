//go:build tinygo

package main

import (
	"machine"

	"github.com/itohio/govswr/pkg/settings"
)

// flashEEPROM keeps the settings in the first block of the flash data area.
// Reads come from a RAM copy; every write erases and rewrites the block.
type flashEEPROM struct {
	mem   *settings.Memory
	block []byte
}

func openFlash() *flashEEPROM {
	f := &flashEEPROM{mem: settings.NewMemory(settings.Size)}

	size := machine.Flash.WriteBlockSize()
	if size < settings.Size {
		size = settings.Size
	}
	f.block = make([]byte, size)

	if _, err := machine.Flash.ReadAt(f.block, 0); err != nil {
		println("flash read failed:", err.Error())
		return f
	}
	for i := range settings.Size {
		f.mem.WriteByte(i, f.block[i])
	}
	return f
}

func (f *flashEEPROM) ReadByte(addr int) byte {
	return f.mem.ReadByte(addr)
}

func (f *flashEEPROM) WriteByte(addr int, b byte) {
	if f.mem.ReadByte(addr) == b {
		return
	}
	f.mem.WriteByte(addr, b)

	for i := range f.block {
		f.block[i] = 0xFF
	}
	copy(f.block, f.mem.Bytes())

	if err := machine.Flash.EraseBlocks(0, 1); err != nil {
		println("flash erase failed:", err.Error())
		return
	}
	if _, err := machine.Flash.WriteAt(f.block, 0); err != nil {
		println("flash write failed:", err.Error())
	}
}
