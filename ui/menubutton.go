package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button. The primary button carries a stone marker.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter {
		if b.onSelect != nil {
			b.onSelect()
		}
		return true
	}
	return false
}

func (b *MenuButton) display() string {
	if b.primary {
		return "⬢ " + b.label
	}
	return b.label
}

// Draw renders the button at the given position. Returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.display()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		col := x + 1
		for _, ch := range label {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
		return width
	}

	dimStyle := tcell.StyleDefault.
		Foreground(MenuColors.Hint).
		Background(MenuColors.CardBG)
	bracketStyle := tcell.StyleDefault.
		Foreground(MenuColors.Border).
		Background(MenuColors.CardBG)

	screen.SetContent(x, y, '[', nil, bracketStyle)
	col := x + 1
	for _, ch := range label {
		screen.SetContent(col, y, ch, nil, dimStyle)
		col++
	}
	screen.SetContent(col, y, ']', nil, bracketStyle)
	return width
}

// Width returns the button width including padding.
func (b *MenuButton) Width() int {
	return len([]rune(b.display())) + 2
}
