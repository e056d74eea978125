package gpiolines

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"

	ss "dscheirer.com/pithermo/sevenseg_shiftreg"
)

type rpioLines struct {
	pins   map[ss.Line]rpio.Pin
	logger ss.Logger
}

// pins are BCM numbers
func openRpio(p Pins, logger ss.Logger) (*rpioLines, error) {
	err := rpio.Open()
	if err != nil {
		return nil, err
	}

	rl := &rpioLines{pins: make(map[ss.Line]rpio.Pin), logger: logger}
	for line, name := range p.byLine() {
		num, err := strconv.Atoi(name)
		if err != nil {
			rpio.Close()
			return nil, errors.Wrapf(err, "%v pin %q", line, name)
		}
		pin := rpio.Pin(num)
		pin.Output()
		pin.Low()
		rl.pins[line] = pin
	}
	logger.Printf("rpio lines: %+v", p)
	return rl, nil
}

func (rl *rpioLines) Set(line ss.Line, high bool) {
	pin, ok := rl.pins[line]
	if !ok {
		return
	}
	if high {
		pin.High()
	} else {
		pin.Low()
	}
}

func (rl *rpioLines) Close() error {
	for _, pin := range rl.pins {
		pin.Low()
	}
	return rpio.Close()
}
