package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the palette for one appearance mode.
type Theme struct {
	Mode              string
	BgColor           tcell.Color
	SurfaceColor      tcell.Color
	FgColor           tcell.Color
	MutedColor        tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	TabActiveFg       tcell.Color
	TabActiveBg       tcell.Color
	TabInactiveFg     tcell.Color
	TabInactiveBg     tcell.Color
	MenuKeyColor      tcell.Color
	NumericKeyColor   tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	AccentColor       tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
	MineColor         tcell.Color
	OtherColor        tcell.Color
	ReadColor         tcell.Color
}

// Light is the default palette.
func Light() *Theme {
	return &Theme{
		Mode:              "light",
		BgColor:           tcell.NewHexColor(0xFFFFFF),
		SurfaceColor:      tcell.NewHexColor(0xF5F5F5),
		FgColor:           tcell.NewHexColor(0x212121),
		MutedColor:        tcell.NewHexColor(0x757575),
		BorderColor:       tcell.NewHexColor(0xE0E0E0),
		BorderFocusColor:  tcell.NewHexColor(0x2196F3),
		TableHeaderFg:     tcell.NewHexColor(0x757575),
		TableHeaderBg:     tcell.NewHexColor(0xFFFFFF),
		TableCursorFg:     tcell.NewHexColor(0xFFFFFF),
		TableCursorBg:     tcell.NewHexColor(0x2196F3),
		TabActiveFg:       tcell.NewHexColor(0xFFFFFF),
		TabActiveBg:       tcell.NewHexColor(0x2196F3),
		TabInactiveFg:     tcell.NewHexColor(0x607D8B),
		TabInactiveBg:     tcell.NewHexColor(0xF5F5F5),
		MenuKeyColor:      tcell.NewHexColor(0x1976D2),
		NumericKeyColor:   tcell.NewHexColor(0xFF4081),
		TitleColor:        tcell.NewHexColor(0x2196F3),
		CounterColor:      tcell.NewHexColor(0x607D8B),
		AccentColor:       tcell.NewHexColor(0xFF4081),
		FlashInfoColor:    tcell.NewHexColor(0x4CAF50),
		FlashWarnColor:    tcell.NewHexColor(0xFF9800),
		FlashErrColor:     tcell.NewHexColor(0xF44336),
		PromptBorderColor: tcell.NewHexColor(0x2196F3),
		MineColor:         tcell.NewHexColor(0x2196F3),
		OtherColor:        tcell.NewHexColor(0x212121),
		ReadColor:         tcell.NewHexColor(0x2196F3),
	}
}

// Dark is the palette for dark mode.
func Dark() *Theme {
	return &Theme{
		Mode:              "dark",
		BgColor:           tcell.NewHexColor(0x121212),
		SurfaceColor:      tcell.NewHexColor(0x1E1E1E),
		FgColor:           tcell.NewHexColor(0xFFFFFF),
		MutedColor:        tcell.NewHexColor(0xB0B0B0),
		BorderColor:       tcell.NewHexColor(0x333333),
		BorderFocusColor:  tcell.NewHexColor(0x64B5F6),
		TableHeaderFg:     tcell.NewHexColor(0xB0B0B0),
		TableHeaderBg:     tcell.NewHexColor(0x121212),
		TableCursorFg:     tcell.NewHexColor(0x121212),
		TableCursorBg:     tcell.NewHexColor(0x64B5F6),
		TabActiveFg:       tcell.NewHexColor(0x121212),
		TabActiveBg:       tcell.NewHexColor(0x64B5F6),
		TabInactiveFg:     tcell.NewHexColor(0x78909C),
		TabInactiveBg:     tcell.NewHexColor(0x1E1E1E),
		MenuKeyColor:      tcell.NewHexColor(0x90CAF9),
		NumericKeyColor:   tcell.NewHexColor(0xFF4081),
		TitleColor:        tcell.NewHexColor(0x64B5F6),
		CounterColor:      tcell.NewHexColor(0x78909C),
		AccentColor:       tcell.NewHexColor(0xFF4081),
		FlashInfoColor:    tcell.NewHexColor(0x66BB6A),
		FlashWarnColor:    tcell.NewHexColor(0xFFA726),
		FlashErrColor:     tcell.NewHexColor(0xEF5350),
		PromptBorderColor: tcell.NewHexColor(0x64B5F6),
		MineColor:         tcell.NewHexColor(0x64B5F6),
		OtherColor:        tcell.NewHexColor(0xFFFFFF),
		ReadColor:         tcell.NewHexColor(0x64B5F6),
	}
}

// ForMode returns the palette for mode. Anything but "dark" is light.
func ForMode(mode string) *Theme {
	if mode == "dark" {
		return Dark()
	}
	return Light()
}

// Tag formats c for use inside a tview color tag.
func Tag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
