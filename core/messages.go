package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/selection"
)

// SlideDoneMsg is the completion signal for the slide running on the
// calendar with the given ID.
type SlideDoneMsg struct {
	ID uuid.UUID
}

// NavigateMsg asks every calendar to step one month, as an outer control
// would.
type NavigateMsg struct {
	Direction calendar.Direction
}

// SelectionChangedMsg reports a new selection picked on a calendar.
type SelectionChangedMsg struct {
	ID    uuid.UUID
	Value selection.Value
}

// DisabledDayMsg reports a pick on a day the host disallowed.
type DisabledDayMsg struct {
	ID  uuid.UUID
	Day calendar.CalendarDate
}

// ActiveDateChangedMsg reports the month a calendar now shows.
type ActiveDateChangedMsg struct {
	ID   uuid.UUID
	Date calendar.CalendarDate
}

type StatusMsg struct {
	Text  string
	IsErr bool
}

// SlideTickCmd emits SlideDoneMsg for id after d, standing in for the end
// of a visual transition.
func SlideTickCmd(id uuid.UUID, d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return SlideDoneMsg{ID: id} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return SlideDoneMsg{ID: id} })
}

func NavigateCmd(dir calendar.Direction) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Direction: dir} }
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
