package display

import "github.com/itohio/govswr/pkg/nextion"

type component struct {
	page, id int
}

// touchEvents maps the buttons of every page to the event they raise.
var touchEvents = map[component]Event{
	{1, 2}: EventNext,
	{2, 1}: EventNext,
	{3, 1}: EventNext,
	{4, 3}: EventNext,
	{5, 1}: EventNext,

	{1, 3}: EventScale,
	{2, 9}: EventScale,
	{4, 4}: EventScale,

	{1, 4}:  EventPeak,
	{2, 10}: EventPeak,
	{4, 5}:  EventPeak,
}

// EventForTouch returns the button event of a panel touch. Only presses of
// known buttons raise events.
func EventForTouch(t nextion.Touch) (Event, bool) {
	if !t.Press {
		return 0, false
	}
	e, ok := touchEvents[component{t.Page, t.Component}]
	return e, ok
}
