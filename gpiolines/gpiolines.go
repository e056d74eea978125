// Package gpiolines provides the digital output lines the display is wired
// to, on go-rpio, periph.io or a simulated shift register.
package gpiolines

import (
	"github.com/pkg/errors"

	ss "dscheirer.com/pithermo/sevenseg_shiftreg"
)

const (
	BackendRpio   = "rpio"
	BackendPeriph = "periph"
	BackendSim    = "sim"
)

// Pins names the pin for each line. Status may be empty.
type Pins struct {
	Data    string
	Store   string
	Refresh string
	Status  string
}

func (p Pins) byLine() map[ss.Line]string {
	m := map[ss.Line]string{
		ss.LineData:    p.Data,
		ss.LineStore:   p.Store,
		ss.LineRefresh: p.Refresh,
	}
	if p.Status != "" {
		m[ss.LineStatus] = p.Status
	}
	return m
}

type Config struct {
	Backend string
	Pins    Pins
	Digits  int // register size for the simulator
	Logger  ss.Logger
}

// LineCloser is a set of opened output lines.
type LineCloser interface {
	ss.Lines
	Close() error
}

// Open configures every line as an output driven low (inactive).
func Open(cfg Config) (LineCloser, error) {
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	for line, name := range cfg.Pins.byLine() {
		if name == "" && line != ss.LineStatus {
			return nil, errors.Errorf("no pin for %v", line)
		}
	}

	switch cfg.Backend {
	case BackendRpio:
		lines, err := openRpio(cfg.Pins, cfg.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "rpio lines")
		}
		return lines, nil
	case BackendPeriph:
		lines, err := openPeriph(cfg.Pins, cfg.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "periph lines")
		}
		return lines, nil
	case BackendSim:
		return NewSim(cfg.Digits, cfg.Logger), nil
	}
	return nil, errors.Errorf("unknown gpio backend %q", cfg.Backend)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
