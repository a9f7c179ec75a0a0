package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ErasedDeviceGetsDefaults(t *testing.T) {
	dev := NewMemory(16)
	s := Load(dev)

	assert.Equal(t, DefaultPage, s.Page())
	assert.Equal(t, DefaultScale, s.Scale())
	assert.Equal(t, DefaultPeak, s.Peak())
	assert.Equal(t, []byte{InitMarker, 1, 0, 0}, dev.Bytes()[:Size])
}

func TestLoad_ReadsStoredValues(t *testing.T) {
	dev := NewMemory(Size)
	dev.WriteByte(0, InitMarker)
	dev.WriteByte(1, 4)
	dev.WriteByte(2, 3)
	dev.WriteByte(3, 1)

	s := Load(dev)
	assert.Equal(t, 4, s.Page())
	assert.Equal(t, 3, s.Scale())
	assert.True(t, s.Peak())
}

func TestLoad_WrongMarkerResets(t *testing.T) {
	dev := NewMemory(Size)
	dev.WriteByte(0, 0x42)
	dev.WriteByte(1, 5)

	s := Load(dev)
	assert.Equal(t, DefaultPage, s.Page())
	assert.Equal(t, InitMarker, dev.ReadByte(0))
}

func TestSetters_WriteThrough(t *testing.T) {
	dev := NewMemory(Size)
	s := Load(dev)

	s.SetPage(3)
	s.SetScale(2)
	s.SetPeak(true)

	assert.Equal(t, []byte{InitMarker, 3, 2, 1}, dev.Bytes())

	reloaded := Load(dev)
	assert.Equal(t, 3, reloaded.Page())
	assert.Equal(t, 2, reloaded.Scale())
	assert.True(t, reloaded.Peak())

	s.SetPeak(false)
	assert.Equal(t, byte(0), dev.ReadByte(3))
}

func TestMemory_OutOfRange(t *testing.T) {
	m := NewMemory(1)
	assert.Len(t, m.Bytes(), Size)

	m.WriteByte(-1, 1)
	m.WriteByte(100, 1)
	assert.Equal(t, byte(0xFF), m.ReadByte(-1))
	assert.Equal(t, byte(0xFF), m.ReadByte(100))
}

func TestFile_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")

	f, err := OpenFile(path)
	require.NoError(t, err)
	s := Load(f)
	assert.Equal(t, DefaultPage, s.Page())
	s.SetPage(5)
	s.SetScale(1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{InitMarker, 5, 1, 0}, data)

	f2, err := OpenFile(path)
	require.NoError(t, err)
	s2 := Load(f2)
	assert.Equal(t, 5, s2.Page())
	assert.Equal(t, 1, s2.Scale())
	assert.False(t, s2.Peak())
}

func TestOpenFile_Unreadable(t *testing.T) {
	// a directory cannot be read as an image
	_, err := OpenFile(t.TempDir())
	assert.Error(t, err)
}
