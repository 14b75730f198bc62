package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termhex/engine"
)

// Sized so the card holds the title block, the slider row, the button row
// and a hint line.
const (
	SetupCardWidth  = 58
	SetupCardHeight = 13
)

// GameSetupUI is the new-game screen: a menu card holding a board size
// slider and the Start / Board Colors / Quit buttons. Board size is the only
// game parameter; the opponent's strength is fixed.
type GameSetupUI struct {
	*MenuCard
	slider  *SizeSlider
	buttons []*MenuButton
	focus   int // 0 is the slider, then the buttons in order
}

// NewGameSetup creates the new-game screen.
func NewGameSetup(defaultSize int, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("T E R M H E X"),
	}

	setup.slider = NewSizeSlider("Board Size", engine.MinBoardSize, engine.MaxBoardSize, engine.ClampSize(defaultSize), nil)

	setup.buttons = []*MenuButton{
		NewMenuButton("Start Game", true, func() {
			onStart(engine.GameConfig{BoardSize: setup.slider.Value()})
		}),
		NewMenuButton("Board Colors", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, func() {
			onCancel()
		}),
	}

	setup.syncFocus()
	return setup
}

// BoardSize returns the currently selected board size.
func (s *GameSetupUI) BoardSize() int {
	return s.slider.Value()
}

// Draw renders the card with the slider and buttons inside it.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, height := s.GetInnerRect()
	if width < 10 || height < SetupCardHeight-2 {
		return
	}

	s.slider.Draw(screen, x+3, y+6, width-6)

	col := x + 3
	for _, b := range s.buttons {
		col += b.Draw(screen, col, y+8) + 2
	}

	hint := "←→ adjust   tab next   ⏎ select"
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	hintX := x + (width-len([]rune(hint)))/2
	for i, ch := range hint {
		screen.SetContent(hintX+i, y+10, ch, nil, hintStyle)
	}
}

// InputHandler routes keys to the focused widget.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		s.handleKey(event)
	})
}

// Focus marks the card focused.
func (s *GameSetupUI) Focus(delegate func(p tview.Primitive)) {
	s.SetFocused(true)
	s.Box.Focus(delegate)
}

// Blur removes the focus mark.
func (s *GameSetupUI) Blur() {
	s.SetFocused(false)
	s.Box.Blur()
}

func (s *GameSetupUI) handleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		s.moveFocus(1)
		return true
	case tcell.KeyBacktab, tcell.KeyUp:
		s.moveFocus(-1)
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'j':
			s.moveFocus(1)
			return true
		case 'k':
			s.moveFocus(-1)
			return true
		}
	}

	if s.focus == 0 {
		return s.slider.HandleKey(event)
	}
	return s.buttons[s.focus-1].HandleKey(event)
}

func (s *GameSetupUI) moveFocus(delta int) {
	count := len(s.buttons) + 1
	s.focus = (s.focus + delta + count) % count
	s.syncFocus()
}

func (s *GameSetupUI) syncFocus() {
	s.slider.SetFocused(s.focus == 0)
	for i, b := range s.buttons {
		b.SetFocused(s.focus == i+1)
	}
}
