package main

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphButtons struct {
	btn buttonMap
	pin gpio.PinIO
}

func init() {
	features = append(features, "periph-buttons")
}

func (pb *periphButtons) initButtons(settings configSettings) error {
	_, err := host.Init()
	return errors.Wrap(err, "periph host init")
}

func (pb *periphButtons) setupButtons(btn buttonMap, rt runtimeConfig) error {
	pin := gpioreg.ByName(btn.pin)
	if pin == nil {
		return errors.Errorf("no gpio named %q", btn.pin)
	}

	pull, edge := gpio.PullDown, gpio.RisingEdge
	if btn.pullup {
		pull, edge = gpio.PullUp, gpio.FallingEdge
	}
	if err := pin.In(pull, edge); err != nil {
		return errors.Wrapf(err, "button pin %s", pin.Name())
	}
	pb.btn = btn
	pb.pin = pin
	return nil
}

// blocks in the kernel until an edge or the poll time runs out
func (pb *periphButtons) waitForEdge(rt runtimeConfig) (bool, error) {
	return pb.pin.WaitForEdge(pb.btn.poll), nil
}

func (pb *periphButtons) closeButtons() {
	if pb.pin != nil {
		pb.pin.Halt()
	}
}
