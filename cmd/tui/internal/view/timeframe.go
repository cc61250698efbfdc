package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Timeframe is a predefined or custom range of bill dates.
type Timeframe int

const (
	TimeframeThisMonth Timeframe = iota
	TimeframeLastMonth
	TimeframeThisQuarter
	TimeframeFinancialYear
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	case TimeframeThisQuarter:
		return "This Quarter"
	case TimeframeFinancialYear:
		return "Financial Year"
	case TimeframeCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// Range resolves t against now. Financial years run July to June.
func (t Timeframe) Range(now time.Time) (time.Time, time.Time) {
	y, mo, _ := now.Date()
	loc := now.Location()

	switch t {
	case TimeframeLastMonth:
		start := time.Date(y, mo-1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, -1)
	case TimeframeThisQuarter:
		q := (int(mo) - 1) / 3
		return time.Date(y, time.Month(q*3+1), 1, 0, 0, 0, 0, loc), now
	case TimeframeFinancialYear:
		fy := y
		if mo < time.July {
			fy--
		}

		return time.Date(fy, time.July, 1, 0, 0, 0, 0, loc), now
	}

	return time.Date(y, mo, 1, 0, 0, 0, 0, loc), now
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TimeframeSelectedMsg carries an inclusive date range, truncated to days.
type TimeframeSelectedMsg struct {
	Start time.Time
	End   time.Time
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

type TimeframePicker struct {
	state    timeframeState
	selected Timeframe

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	now func() time.Time
	err error
}

func NewTimeframePicker() TimeframePicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "From: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "To:   "

	return TimeframePicker{
		startInput: si,
		endInput:   ei,
		now:        time.Now,
	}
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.state == timeframeStateCustom {
			return m.updateCustom(key)
		}

		return m.updateSelect(key)
	}

	return m, nil
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > TimeframeThisMonth {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == TimeframeCustom {
			m.state = timeframeStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		}

		start, end := m.selected.Range(m.now())

		return m, selected(start, end)
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = 1 - m.focusIndex
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
		} else {
			m.endInput.Focus()
		}

		return m, textinput.Blink

	case "enter":
		start, err := time.Parse(time.DateOnly, m.startInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid from date (YYYY-MM-DD)")
			return m, nil
		}

		end, err := time.Parse(time.DateOnly, m.endInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid to date (YYYY-MM-DD)")
			return m, nil
		}

		if end.Before(start) {
			m.err = fmt.Errorf("to date is before from date")
			return m, nil
		}

		m.err = nil

		return m, selected(start, end)

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil

		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

func selected(start, end time.Time) tea.Cmd {
	start, end = truncateDay(start), truncateDay(end)

	return func() tea.Msg {
		return TimeframeSelectedMsg{Start: start, End: end}
	}
}

func (m TimeframePicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = "\n\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == timeframeStateCustom {
		return fmt.Sprintf(
			"Bill dates:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.startInput.View(), m.endInput.View(), errStr,
		)
	}

	s := "Bill dates:\n\n"
	for tf := TimeframeThisMonth; tf <= TimeframeCustom; tf++ {
		cursor := " "
		if m.selected == tf {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, tf)
	}

	return s + "\n(Enter to select, Esc to back)" + errStr
}

// IsSelecting reports whether the picker is on the preset list rather than custom input.
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}

func (m *TimeframePicker) Reset() {
	m.state = timeframeStateSelect
	m.selected = TimeframeThisMonth
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
