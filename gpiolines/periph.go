package gpiolines

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	ss "dscheirer.com/pithermo/sevenseg_shiftreg"
)

type periphLines struct {
	pins     map[ss.Line]gpio.PinIO
	reported map[ss.Line]bool
	logger   ss.Logger
}

// pins are periph names, "GPIO17" or just "17"
func openPeriph(p Pins, logger ss.Logger) (*periphLines, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	pl := &periphLines{
		pins:     make(map[ss.Line]gpio.PinIO),
		reported: make(map[ss.Line]bool),
		logger:   logger,
	}
	for line, name := range p.byLine() {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, errors.Errorf("%v pin %q not found", line, name)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return nil, errors.Wrapf(err, "%v pin %q", line, name)
		}
		pl.pins[line] = pin
	}
	logger.Printf("periph lines: %+v", p)
	return pl, nil
}

func (pl *periphLines) Set(line ss.Line, high bool) {
	pin, ok := pl.pins[line]
	if !ok {
		return
	}
	// report a failing pin once, the display can't do anything about it
	if err := pin.Out(gpio.Level(high)); err != nil && !pl.reported[line] {
		pl.reported[line] = true
		pl.logger.Printf("%v (%s): %v", line, pin.Name(), err)
	}
}

func (pl *periphLines) Close() error {
	var first error
	for _, pin := range pl.pins {
		if err := pin.Out(gpio.Low); err != nil && first == nil {
			first = err
		}
		if err := pin.Halt(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
