package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termhex/config"
)

// ColorConfigUI provides a stone color configuration screen with live
// preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedRed  int
	selectedBlue int
	editingBlue  bool // false = editing Red's color
}

// Stone colors to choose from, warm tones for Red and cool tones for Blue.
var redColors = []struct {
	code int
	name string
}{
	{160, "Red"},
	{196, "Bright Red"},
	{124, "Dark Red"},
	{88, "Maroon"},
	{202, "Orange Red"},
	{208, "Dark Orange"},
	{166, "Rust"},
	{168, "Rose"},
	{132, "Dusty Red"},
	{52, "Wine"},
}

var blueColors = []struct {
	code int
	name string
}{
	{27, "Blue"},
	{21, "Bright Blue"},
	{19, "Navy"},
	{33, "Azure"},
	{39, "Sky Blue"},
	{45, "Cyan"},
	{31, "Steel Blue"},
	{61, "Slate Blue"},
	{17, "Midnight"},
	{75, "Light Blue"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:          cfg,
		onDone:       onDone,
		selectedRed:  cfg.Theme.Colors.RedColor,
		selectedBlue: cfg.Theme.Colors.BlueColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingBlue {
			if index >= 0 && index < len(blueColors) {
				cc.selectedBlue = blueColors[index].code
			}
		} else {
			if index >= 0 && index < len(redColors) {
				cc.selectedRed = redColors[index].code
			}
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingBlue {
			cc.cfg.Theme.Colors.BlueColor = cc.selectedBlue
			cc.cfg.Save()
			onDone()
		} else {
			cc.cfg.Theme.Colors.RedColor = cc.selectedRed
			cc.cfg.Save()
			// Switch to the other player's color
			cc.editingBlue = true
			cc.populateColorList()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// populateColorList fills the list for the player being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingBlue {
		cc.colorList.SetTitle(" Blue Stones (Tab: switch to Red) ")
		for i, c := range blueColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range blueColors {
			if c.code == cc.selectedBlue {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Red Stones (Tab: switch to Blue) ")
		for i, c := range redColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range redColors {
			if c.code == cc.selectedRed {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 24 || height < 10 {
		return x, y, width, height
	}

	redStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(cc.selectedRed))
	blueStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(cc.selectedBlue))
	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.LineColor))

	// Sample stones on a small rhombic board
	stones := map[[2]int]int{
		{1, 1}: 1,
		{2, 1}: 1,
		{2, 2}: 2,
		{3, 2}: 2,
		{1, 3}: 1,
		{3, 3}: 2,
	}

	startX := x + 2
	startY := y + 1
	size := 5

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			screenX := startX + col*2 + row
			screenY := startY + row

			char := cc.cfg.Theme.Symbols.EmptyCell
			style := emptyStyle
			if stone, ok := stones[[2]int{col, row}]; ok {
				if stone == 1 {
					char = cc.cfg.Theme.Symbols.RedStone
					style = redStyle
				} else {
					char = cc.cfg.Theme.Symbols.BlueStone
					style = blueStyle
				}
			}
			screen.SetContent(screenX, screenY, char, nil, style)
		}
	}

	info := fmt.Sprintf("Red: %d  Blue: %d", cc.selectedRed, cc.selectedBlue)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between Red and Blue stone color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingBlue = !cc.editingBlue
	cc.populateColorList()
}
