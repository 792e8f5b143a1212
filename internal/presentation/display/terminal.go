// Package display manages the terminal screen during live re-renders:
// watch mode redraws into the alternate screen buffer so the user's
// scrollback is left alone.
package display

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal control sequences
const (
	enterAltScreen = "\033[?1049h"
	exitAltScreen  = "\033[?1049l"
	clearScreen    = "\033[2J"
	cursorHome     = "\033[H"
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
)

type TerminalDisplay struct {
	inAlternateScreen bool
}

func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{}
}

// EnterAlternateScreen switches to the alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Print(enterAltScreen + clearScreen + cursorHome + hideCursor)
	td.inAlternateScreen = true
}

// ExitAlternateScreen restores the normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Print(showCursor + exitAltScreen)
	td.inAlternateScreen = false
}

// Draw clears the screen and writes the given content from the top.
func (td *TerminalDisplay) Draw(content string) {
	if td.inAlternateScreen {
		fmt.Print(clearScreen + cursorHome)
	}
	fmt.Println(content)
}

// Size returns the terminal dimensions, with a usable fallback when
// stdout is not a terminal.
func (td *TerminalDisplay) Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 120, 40
	}
	return w, h
}
