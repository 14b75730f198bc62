package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// SizeSlider is a horizontal slider for picking the board size. One bar
// segment per size keeps the whole range visible at once.
type SizeSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	onChange func(int)
}

// NewSizeSlider creates a new size slider covering [min, max]. The initial
// value is clamped into that range.
func NewSizeSlider(label string, min, max, initial int, onChange func(int)) *SizeSlider {
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}
	return &SizeSlider{
		label:    label,
		min:      min,
		max:      max,
		value:    initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (s *SizeSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled. Left/h and
// right/l step the value, pinned at the range ends.
func (s *SizeSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		s.step(-1)
		return true
	case tcell.KeyRight:
		s.step(1)
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			s.step(-1)
			return true
		case 'l':
			s.step(1)
			return true
		}
	}
	return false
}

func (s *SizeSlider) step(delta int) {
	next := s.value + delta
	if next < s.min || next > s.max {
		return
	}
	s.value = next
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Draw renders the slider component. Returns the number of rows used.
func (s *SizeSlider) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.RedAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	col := x

	if s.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	// Label with diamond prefix: ◈ Board Size
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2

	for _, ch := range s.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 2

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
	}
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	// One segment per size in the range
	filled := s.value - s.min + 1
	for i := 0; i < s.max-s.min+1; i++ {
		char := '░'
		style := unselectedStyle
		if i < filled {
			char = '█'
			style = selectedStyle
		}
		screen.SetContent(col, y, char, nil, style)
		col++
	}
	col++

	// Fixed-width value so the arrow does not shift
	for _, ch := range fmt.Sprintf("%2d", s.value) {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col++

	screen.SetContent(col, y, '▶', nil, arrowStyle)

	return 1
}

// Value returns the current slider value.
func (s *SizeSlider) Value() int {
	return s.value
}

// SetValue sets the slider value, ignoring values outside the range.
func (s *SizeSlider) SetValue(v int) {
	if v >= s.min && v <= s.max {
		s.value = v
		if s.onChange != nil {
			s.onChange(s.value)
		}
	}
}
