package nextion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"value", SetValue("p2j0", 42), "p2j0.val=42"},
		{"picture", SetPic("p1p0", 21), "p1p0.pic=21"},
		{"property", SetProperty("p2j0", "ppic", 8), "p2j0.ppic=8"},
		{"text", SetText("p2t3", "1.5"), `p2t3.txt="1.5"`},
		{"line", Line(35, 239, 260, 172, Blue), "line 35,239,260,172,BLUE"},
		{"ref", Ref(1), "ref 1"},
		{"page", Page(5), "page 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		want    Command
		wantErr bool
	}{
		{
			name: "value assignment",
			cmd:  "p2j0.val=42",
			want: Command{Kind: KindAssign, Object: "p2j0", Property: "val", Value: 42},
		},
		{
			name: "negative value",
			cmd:  "p4z0.val=-3",
			want: Command{Kind: KindAssign, Object: "p4z0", Property: "val", Value: -3},
		},
		{
			name: "text",
			cmd:  `p3t5.txt="-12.5"`,
			want: Command{Kind: KindText, Object: "p3t5", Property: "txt", Text: "-12.5"},
		},
		{
			name: "line",
			cmd:  "line 243,239,78,73,BLUE",
			want: Command{Kind: KindLine, Args: []int{243, 239, 78, 73}, Colour: "BLUE"},
		},
		{
			name: "ref",
			cmd:  "ref 1",
			want: Command{Kind: KindRef, Value: 1},
		},
		{
			name: "page",
			cmd:  "page 3",
			want: Command{Kind: KindPage, Value: 3},
		},
		{name: "unknown", cmd: "bogus", wantErr: true},
		{name: "bad value", cmd: "p2j0.val=abc", wantErr: true},
		{name: "missing property", cmd: "p2j0=1", wantErr: true},
		{name: "short line", cmd: "line 1,2,3,BLUE", wantErr: true},
		{name: "bad line coordinate", cmd: "line 1,x,3,4,BLUE", wantErr: true},
		{name: "bad page", cmd: "page x", wantErr: true},
		{name: "unterminated text", cmd: `p2t2.txt="12`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendFrame(t *testing.T) {
	got := AppendFrame([]byte("x"), "ref 1")
	assert.Equal(t, []byte{'x', 'r', 'e', 'f', ' ', '1', 0xFF, 0xFF, 0xFF}, got)
}

func TestParse_RoundTripsBuilders(t *testing.T) {
	cmds := []string{
		SetValue("p2j1", 20),
		SetText("p5t15", "999.9"),
		Line(243, 239, 10, 10, Blue),
		Ref(1),
		Page(1),
	}
	for _, c := range cmds {
		_, err := Parse(c)
		assert.NoError(t, err, c)
	}
}

func TestDecoder_TouchEvent(t *testing.T) {
	var d Decoder
	stream := []byte{0x65, 0x02, 0x09, 0x01, 0xFF, 0xFF, 0xFF}

	var frames []Frame
	for _, b := range stream {
		if f, ok := d.Feed(b); ok {
			frames = append(frames, f)
		}
	}

	require.Len(t, frames, 1)
	touch, ok := frames[0].Touch()
	require.True(t, ok)
	assert.Equal(t, Touch{Page: 2, Component: 9, Press: true}, touch)
	assert.Equal(t, "page 2 component 9 press", touch.String())
}

func TestDecoder_MultipleFrames(t *testing.T) {
	var d Decoder
	stream := []byte{
		0x01, 0xFF, 0xFF, 0xFF, // success
		0x65, 0x01, 0x03, 0x00, 0xFF, 0xFF, 0xFF, // release
		0x00, 0xFF, 0xFF, 0xFF, // invalid instruction
	}

	var frames []Frame
	for _, b := range stream {
		if f, ok := d.Feed(b); ok {
			frames = append(frames, f)
		}
	}

	require.Len(t, frames, 3)
	_, ok := frames[0].Touch()
	assert.False(t, ok)

	touch, ok := frames[1].Touch()
	require.True(t, ok)
	assert.False(t, touch.Press)

	assert.True(t, frames[2].Rejected())
	assert.False(t, frames[0].Rejected())
}

func TestDecoder_PayloadFF(t *testing.T) {
	var d Decoder
	stream := []byte{0x71, 0xFF, 0x10, 0xFF, 0xFF, 0xFF}

	var got Frame
	for _, b := range stream {
		if f, ok := d.Feed(b); ok {
			got = f
		}
	}
	assert.Equal(t, Frame{0x71, 0xFF, 0x10}, got)
}

func TestDecoder_EmptyTerminator(t *testing.T) {
	var d Decoder
	for _, b := range terminator {
		_, ok := d.Feed(b)
		assert.False(t, ok)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Send("ref 1")
	r.Send("page 2")

	assert.Equal(t, []string{"ref 1", "page 2"}, r.Commands())
	assert.Equal(t, []string{"ref 1", "page 2"}, r.Take())
	assert.Empty(t, r.Commands())
}

func TestTee(t *testing.T) {
	var a, b Recorder
	var seen []string
	tee := Tee{&a, &b, Func(func(cmd string) { seen = append(seen, cmd) })}

	tee.Send("page 1")

	assert.Equal(t, []string{"page 1"}, a.Commands())
	assert.Equal(t, []string{"page 1"}, b.Commands())
	assert.Equal(t, []string{"page 1"}, seen)
}
