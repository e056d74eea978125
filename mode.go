package main

import "sync/atomic"

type displayMode int32

const (
	modeTemperature displayMode = iota
	modeHumidity
	modeUptime

	modeCount = 3
)

func (m displayMode) next() displayMode {
	return (m + 1) % modeCount
}

func (m displayMode) String() string {
	switch m {
	case modeTemperature:
		return "TEMPERATURE"
	case modeHumidity:
		return "HUMIDITY"
	case modeUptime:
		return "UPTIME"
	}
	return "UNKNOWN"
}

// modeCell is the one value shared between the button watcher and the
// telemetry loop. Readers never block; the latest write wins.
type modeCell struct {
	v atomic.Int32
}

func newModeCell() *modeCell {
	// zero value is modeTemperature
	return &modeCell{}
}

func (mc *modeCell) load() displayMode {
	return displayMode(mc.v.Load())
}

// advance moves to the next mode and returns it. The CAS keeps it exact
// when the status service presses at the same time as the button.
func (mc *modeCell) advance() displayMode {
	for {
		cur := mc.v.Load()
		nxt := displayMode(cur).next()
		if mc.v.CompareAndSwap(cur, int32(nxt)) {
			return nxt
		}
	}
}
