package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"
)

type rpioButtons struct {
	btn buttonMap
	pin rpio.Pin
}

func init() {
	features = append(features, "rpio-buttons")
}

func (rb *rpioButtons) initButtons(settings configSettings) error {
	// the display lines may already have mapped the registers
	return errors.Wrap(rpio.Open(), "rpio open")
}

func (rb *rpioButtons) setupButtons(btn buttonMap, rt runtimeConfig) error {
	num, err := strconv.Atoi(btn.pin)
	if err != nil {
		return errors.Wrapf(err, "button pin %q", btn.pin)
	}
	rb.btn = btn
	rb.pin = rpio.Pin(num)
	rb.pin.Input()

	if btn.pullup {
		rb.pin.PullUp() // GND => button press
		rb.pin.Detect(rpio.FallEdge)
	} else {
		rb.pin.PullDown() // +V -> button press
		rb.pin.Detect(rpio.RiseEdge)
	}
	return nil
}

// the edge is latched in hardware, we only poll the event register
func (rb *rpioButtons) waitForEdge(rt runtimeConfig) (bool, error) {
	rt.clock.Sleep(rb.btn.poll)
	return rb.pin.EdgeDetected(), nil
}

func (rb *rpioButtons) closeButtons() {
	rb.pin.Detect(rpio.NoEdge)
}
