// Package nextion talks to a Nextion serial HMI panel.
//
// Commands are short ASCII strings terminated on the wire by three 0xFF
// bytes. The panel acknowledges nothing the meter waits for, so every
// Display is fire and forget.
package nextion

import (
	"fmt"
	"strconv"
	"strings"
)

var terminator = []byte{0xFF, 0xFF, 0xFF}

// AppendFrame appends cmd and its wire terminator to dst.
func AppendFrame(dst []byte, cmd string) []byte {
	dst = append(dst, cmd...)
	return append(dst, terminator...)
}

// Display accepts panel commands.
type Display interface {
	Send(cmd string)
}

// Colour names understood by the panel's drawing commands.
const (
	Black = "BLACK"
	White = "WHITE"
	Red   = "RED"
	Green = "GREEN"
	Blue  = "BLUE"
)

// SetProperty builds "<obj>.<prop>=<v>".
func SetProperty(obj, prop string, v int) string {
	return obj + "." + prop + "=" + strconv.Itoa(v)
}

// SetValue builds "<obj>.val=<v>".
func SetValue(obj string, v int) string {
	return SetProperty(obj, "val", v)
}

// SetPic builds "<obj>.pic=<v>".
func SetPic(obj string, v int) string {
	return SetProperty(obj, "pic", v)
}

// SetText builds `<obj>.txt="<s>"`.
func SetText(obj, s string) string {
	return obj + ".txt=" + strconv.Quote(s)
}

// Line builds "line <x1>,<y1>,<x2>,<y2>,<colour>".
func Line(x1, y1, x2, y2 int, colour string) string {
	return fmt.Sprintf("line %d,%d,%d,%d,%s", x1, y1, x2, y2, colour)
}

// Ref builds "ref <id>", redrawing a component over any drawn primitives.
func Ref(id int) string {
	return "ref " + strconv.Itoa(id)
}

// Page builds "page <n>".
func Page(n int) string {
	return "page " + strconv.Itoa(n)
}

// Kind identifies a parsed command.
type Kind int

const (
	KindAssign Kind = iota // obj.prop=int
	KindText               // obj.txt="..."
	KindLine
	KindRef
	KindPage
)

// Command is a decoded panel command.
type Command struct {
	Kind     Kind
	Object   string
	Property string
	Value    int
	Text     string
	Args     []int  // line coordinates
	Colour   string // line colour
}

// Parse decodes a command produced by the builders in this package.
func Parse(cmd string) (Command, error) {
	cmd = strings.TrimSpace(cmd)

	if verb, rest, ok := strings.Cut(cmd, " "); ok {
		switch verb {
		case "line":
			return parseLine(rest)
		case "ref":
			id, err := strconv.Atoi(rest)
			if err != nil {
				return Command{}, fmt.Errorf("invalid ref id %q: %w", rest, err)
			}
			return Command{Kind: KindRef, Value: id}, nil
		case "page":
			n, err := strconv.Atoi(rest)
			if err != nil {
				return Command{}, fmt.Errorf("invalid page %q: %w", rest, err)
			}
			return Command{Kind: KindPage, Value: n}, nil
		}
	}

	lhs, rhs, ok := strings.Cut(cmd, "=")
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", cmd)
	}
	obj, prop, ok := strings.Cut(lhs, ".")
	if !ok || obj == "" || prop == "" {
		return Command{}, fmt.Errorf("invalid assignment target %q", lhs)
	}

	if strings.HasPrefix(rhs, `"`) {
		s, err := strconv.Unquote(rhs)
		if err != nil {
			return Command{}, fmt.Errorf("invalid text value %s: %w", rhs, err)
		}
		return Command{Kind: KindText, Object: obj, Property: prop, Text: s}, nil
	}

	v, err := strconv.Atoi(rhs)
	if err != nil {
		return Command{}, fmt.Errorf("invalid value %q: %w", rhs, err)
	}
	return Command{Kind: KindAssign, Object: obj, Property: prop, Value: v}, nil
}

func parseLine(rest string) (Command, error) {
	parts := strings.Split(rest, ",")
	if len(parts) != 5 {
		return Command{}, fmt.Errorf("invalid line: expected 5 comma-separated values, got %d", len(parts))
	}

	args := make([]int, 4)
	for i := range args {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Command{}, fmt.Errorf("invalid line coordinate %q: %w", parts[i], err)
		}
		args[i] = v
	}

	return Command{Kind: KindLine, Args: args, Colour: strings.TrimSpace(parts[4])}, nil
}
