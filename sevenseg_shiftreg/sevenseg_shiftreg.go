// Package sevenseg_shiftreg drives a chain of seven-segment digits through a
// serial-in/parallel-out shift register (74HC595 style) on three lines.
package sevenseg_shiftreg

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// Line is one of the digital outputs wired to the display.
type Line int

const (
	LineData    Line = iota // serial data in
	LineStore               // shift clock, data is sampled on the rising edge
	LineRefresh             // storage latch, copies the register to the outputs
	LineStatus              // status LED, not used by the protocol
)

func (l Line) String() string {
	switch l {
	case LineData:
		return "DATA"
	case LineStore:
		return "STORE"
	case LineRefresh:
		return "REFRESH"
	case LineStatus:
		return "STATUS"
	}
	return fmt.Sprintf("Line(%d)", int(l))
}

// Lines sets the level of an output line. Setting a line always succeeds as
// far as the display is concerned; backends deal with their own errors.
type Lines interface {
	Set(line Line, high bool)
}

// Logger is satisfied by *log.Logger and the application loggers.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

type Sevenseg struct {
	lines   Lines
	digits  int
	dump    bool
	logger  Logger
	current DisplayBuffer
}

// Open resets the register and blanks every digit. Shift registers power up
// with random contents, so nothing is trusted until this has run.
func Open(lines Lines, digits int) (*Sevenseg, error) {
	if lines == nil {
		return nil, errors.New("no output lines")
	}
	if digits < 1 {
		return nil, errors.Errorf("bad digit count: %d", digits)
	}
	this := &Sevenseg{
		lines:  lines,
		digits: digits,
		logger: nopLogger{},
	}
	this.Reset()
	this.ClearDisplay()
	return this, nil
}

func (this *Sevenseg) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	this.logger = l
}

func (this *Sevenseg) DebugDump(on bool) {
	this.dump = on
}

func (this *Sevenseg) Digits() int {
	return this.digits
}

// Current returns a copy of the last latched buffer.
func (this *Sevenseg) Current() DisplayBuffer {
	return append(DisplayBuffer(nil), this.current...)
}

// Reset puts all three protocol lines low.
func (this *Sevenseg) Reset() {
	this.lines.Set(LineRefresh, false)
	this.lines.Set(LineData, false)
	this.lines.Set(LineStore, false)
}

// Write shifts every pattern out MSB first, leftmost digit first, with the
// latch held low, then raises the latch once to show the whole buffer.
func (this *Sevenseg) Write(buf DisplayBuffer) {
	this.lines.Set(LineRefresh, false)
	for _, mask := range buf {
		for bit := 7; bit >= 0; bit-- {
			this.lines.Set(LineStore, false)
			this.lines.Set(LineData, mask&(1<<uint(bit)) != 0)
			this.lines.Set(LineStore, true)
		}
	}
	this.lines.Set(LineRefresh, true)

	this.current = append(this.current[:0], buf...)
	if this.dump {
		this.logger.Printf("%s", Render(buf))
	}
}

// Print lays msg out over the digits and writes it.
func (this *Sevenseg) Print(msg string) {
	if len(EncodeString(msg)) > this.digits {
		this.logger.Printf("Too many characters, truncating: %q", msg)
	}
	this.Write(Layout(msg, this.digits))
}

// ClearDisplay writes a space to every digit through the normal path.
func (this *Sevenseg) ClearDisplay() {
	this.Write(Blank(this.digits))
}

// SelfTest lights every segment, walks a lit digit across the display,
// shows the dashes and clears. It is only a sequence of ordinary writes.
func (this *Sevenseg) SelfTest(clock clockwork.Clock, delay time.Duration) {
	this.Print(strings.Repeat("8.", this.digits))
	clock.Sleep(delay)

	for pos := 0; pos < this.digits; pos++ {
		buf := Blank(this.digits)
		buf[pos] = Encode('8') | Encode('.')
		this.Write(buf)
		clock.Sleep(delay / 4)
	}

	this.Print(strings.Repeat("-", this.digits))
	clock.Sleep(delay)
	this.ClearDisplay()
}

// Render draws buf as ascii art, one digit every four columns.
//
//	 -   -
//	| | | |
//	 -   -
//	| | | |
//	 -.  -.
func Render(buf DisplayBuffer) string {
	var rows [5]strings.Builder
	for _, mask := range buf {
		on := func(seg uint) bool { return mask&(1<<seg) != 0 }
		pick := func(seg uint, s string) string {
			if on(seg) {
				return s
			}
			return strings.Repeat(" ", len(s))
		}
		rows[0].WriteString(" " + pick(LED_TOP, "-") + "  ")
		rows[1].WriteString(pick(LED_TOPL, "|") + " " + pick(LED_TOPR, "|") + " ")
		rows[2].WriteString(" " + pick(LED_MID, "-") + "  ")
		rows[3].WriteString(pick(LED_BOTL, "|") + " " + pick(LED_BOTR, "|") + " ")
		rows[4].WriteString(" " + pick(LED_BOT, "-") + pick(LED_DECIMAL, ".") + " ")
	}
	line := "\n"
	for i := range rows {
		line += strings.TrimRight(rows[i].String(), " ") + "\n"
	}
	return line
}
