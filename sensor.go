package main

import (
	"fmt"

	"github.com/pkg/errors"
)

type sensorChannel int

const (
	chanAmbientTemp sensorChannel = iota
	chanHumidity
)

func (c sensorChannel) String() string {
	switch c {
	case chanAmbientTemp:
		return "AMBIENT_TEMP"
	case chanHumidity:
		return "HUMIDITY"
	}
	return fmt.Sprintf("CHANNEL(%d)", int(c))
}

// status codes reported by sensor backends
const (
	codeBus  = 1
	codeRead = 2
)

// sensorError carries the non-zero status of a failed fetch or read
type sensorError struct {
	op      string
	channel sensorChannel
	code    int
	err     error
}

func (e *sensorError) Error() string {
	msg := fmt.Sprintf("sensor %s failed: %d", e.op, e.code)
	if e.op == "get" {
		msg = fmt.Sprintf("sensor get %v failed: %d", e.channel, e.code)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *sensorError) Code() int     { return e.code }
func (e *sensorError) Cause() error  { return e.err }
func (e *sensorError) Unwrap() error { return e.err }

func fetchError(code int, err error) error {
	return &sensorError{op: "fetch", code: code, err: err}
}

func channelError(ch sensorChannel, code int, err error) error {
	return &sensorError{op: "get", channel: ch, code: code, err: err}
}

// sensorCode digs the status out of a wrapped sensor error, -1 when there
// is none
func sensorCode(err error) int {
	var se *sensorError
	if errors.As(err, &se) {
		return se.code
	}
	if err != nil {
		return -1
	}
	return 0
}

func newSensor(settings configSettings) (sensor, error) {
	switch settings.GetString(sSensorBackend) {
	case "sim":
		return &simSensor{}, nil
	case "shtc3":
		s, err := openSHTC3(settings.GetString(sI2CBus))
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.Errorf("unknown sensor backend %q", settings.GetString(sSensorBackend))
}

// simSensor gives deterministic, slowly rising readings
type simSensor struct {
	sample  int
	deciC   int
	deciRH  int
	fetched bool
}

func (s *simSensor) ready() error {
	return nil
}

func (s *simSensor) fetch() error {
	s.sample++
	s.deciC = 230 + s.sample   // 23.1, 23.2, ...
	s.deciRH = 500 + s.sample*2 // 50.2, 50.4, ...
	s.fetched = true
	return nil
}

func (s *simSensor) channel(ch sensorChannel) (float64, error) {
	if !s.fetched {
		return 0, channelError(ch, codeRead, errors.New("no sample"))
	}
	switch ch {
	case chanAmbientTemp:
		return float64(s.deciC) / 10, nil
	case chanHumidity:
		return float64(s.deciRH) / 10, nil
	}
	return 0, channelError(ch, codeRead, errors.New("unsupported channel"))
}
