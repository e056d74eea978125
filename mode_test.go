package main

import (
	"sync"
	"testing"

	"gotest.tools/assert"
)

func TestModeStartsAtTemperature(t *testing.T) {
	mc := newModeCell()
	assert.Equal(t, mc.load(), modeTemperature)
}

func TestModeCycle(t *testing.T) {
	mc := newModeCell()

	seen := map[displayMode]bool{mc.load(): true}
	assert.Equal(t, mc.advance(), modeHumidity)
	seen[mc.load()] = true
	assert.Equal(t, mc.advance(), modeUptime)
	seen[mc.load()] = true
	assert.Equal(t, mc.advance(), modeTemperature)

	assert.Equal(t, len(seen), 3)
	assert.Equal(t, mc.load(), modeTemperature)
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, modeTemperature.String(), "TEMPERATURE")
	assert.Equal(t, modeHumidity.String(), "HUMIDITY")
	assert.Equal(t, modeUptime.String(), "UPTIME")
	assert.Equal(t, displayMode(7).String(), "UNKNOWN")
}

func TestModeConcurrentPresses(t *testing.T) {
	mc := newModeCell()

	var presses sync.WaitGroup
	for i := 0; i < 4; i++ {
		presses.Add(1)
		go func() {
			defer presses.Done()
			for j := 0; j < 300; j++ {
				mc.advance()
				// readers run alongside
				_ = mc.load()
			}
		}()
	}
	presses.Wait()

	// 1200 presses is a whole number of cycles
	assert.Equal(t, mc.load(), modeTemperature)
	mc.advance()
	assert.Equal(t, mc.load(), modeHumidity)
}
