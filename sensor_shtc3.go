package main

import (
	"io"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/shtc3"
)

func init() {
	features = append(features, "shtc3")
}

// txErrors sits between the driver and the bus. The driver drops every
// Tx error, so the first one is kept here until take is called.
type txErrors struct {
	bus drivers.I2C
	err error
}

func (t *txErrors) Tx(addr uint16, w, r []byte) error {
	err := t.bus.Tx(addr, w, r)
	if err != nil && t.err == nil {
		t.err = err
	}
	return err
}

// take returns the first error since the last take and clears it
func (t *txErrors) take() error {
	err := t.err
	t.err = nil
	return err
}

// shtc3Sensor is a Sensirion SHTC3 on a Linux I2C bus
type shtc3Sensor struct {
	closer io.Closer
	tx     *txErrors
	dev    shtc3.Device
	milliC int32
	rhx100 int16
	valid  bool
}

func newSHTC3(bus drivers.I2C, closer io.Closer) *shtc3Sensor {
	tx := &txErrors{bus: bus}
	return &shtc3Sensor{closer: closer, tx: tx, dev: shtc3.New(tx)}
}

// openSHTC3 opens the named bus, "" is the first one periph finds
func openSHTC3(busName string) (*shtc3Sensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph host init")
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Wrapf(err, "open i2c bus %q", busName)
	}
	return newSHTC3(bus, bus), nil
}

// ready wakes the part and puts it back to sleep. Both commands have to
// be acknowledged.
func (s *shtc3Sensor) ready() error {
	s.tx.take()
	_ = s.dev.WakeUp()
	if err := s.tx.take(); err != nil {
		return errors.Wrap(err, "shtc3 is not ready")
	}
	_ = s.dev.Sleep()
	return errors.Wrap(s.tx.take(), "shtc3 sleep")
}

func (s *shtc3Sensor) fetch() error {
	s.valid = false
	// a failed sleep from the last cycle is not this cycle's problem
	s.tx.take()

	err := s.dev.WakeUp()
	if err == nil {
		err = s.tx.take()
	}
	if err != nil {
		return fetchError(codeBus, err)
	}
	defer func() { _ = s.dev.Sleep() }()

	milliC, rhx100, err := s.dev.ReadTemperatureHumidity()
	if err == nil {
		err = s.tx.take()
	}
	if err != nil {
		return fetchError(codeRead, err)
	}
	s.milliC, s.rhx100, s.valid = milliC, rhx100, true
	return nil
}

func (s *shtc3Sensor) channel(ch sensorChannel) (float64, error) {
	if !s.valid {
		return 0, channelError(ch, codeRead, errors.New("no sample"))
	}
	switch ch {
	case chanAmbientTemp:
		return float64(s.milliC) / 1000, nil
	case chanHumidity:
		return float64(s.rhx100) / 100, nil
	}
	return 0, channelError(ch, codeRead, errors.New("unsupported channel"))
}

func (s *shtc3Sensor) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
