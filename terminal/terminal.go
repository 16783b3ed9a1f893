package terminal

import (
	"io"
	"log"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ProcessTerminal writes escape sequences to the process's stdout.
type ProcessTerminal struct {
	out io.Writer
	fd  int
}

func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{out: os.Stdout, fd: int(os.Stdout.Fd())}
}

// NewWriterTerminal writes to out and reports a fixed size of width x height.
func NewWriterTerminal(out io.Writer, width, height int) *FixedTerminal {
	return &FixedTerminal{ProcessTerminal: ProcessTerminal{out: out, fd: -1}, width: width, height: height}
}

func (p *ProcessTerminal) GetSize() (int, int) {
	w, h, err := term.GetSize(p.fd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

func (p *ProcessTerminal) Write(data string) {
	_, err := io.WriteString(p.out, data)
	if err != nil {
		log.Printf("Error writing to terminal: %v", err)
		return
	}
}

// MoveTo positions the cursor at the zero-based row and column.
func (p *ProcessTerminal) MoveTo(row, col int) {
	p.Write(cursorTo(row, col))
}

func cursorTo(row, col int) string {
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}

func (p *ProcessTerminal) SaveCursor() {
	p.Write("\x1b7")
}

func (p *ProcessTerminal) RestoreCursor() {
	p.Write("\x1b8")
}

func (p *ProcessTerminal) HideCursor() {
	p.Write("\x1b[?25l")
}

func (p *ProcessTerminal) ShowCursor() {
	p.Write("\x1b[?25h")
}

func (p *ProcessTerminal) ClearScreen() {
	p.Write("\x1b[2J\x1b[H") // Clear screen and move to home (1,1)
}

func (p *ProcessTerminal) SetTitle(title string) {
	// OSC 0;title BEL - set terminal window title
	p.Write("\x1b]0;" + title + "\x07")
}

// FixedTerminal is a ProcessTerminal with a fixed size, for writers that
// are not a tty.
type FixedTerminal struct {
	ProcessTerminal
	width  int
	height int
}

func (f *FixedTerminal) GetSize() (int, int) {
	return f.width, f.height
}
