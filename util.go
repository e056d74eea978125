// utility functions
package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit     chan struct{}
	quitOnce *sync.Once
}

type runtimeConfig struct {
	settings  configSettings
	clock     clockwork.Clock
	start     time.Time
	logger    flogger
	display   display
	sensor    sensor
	buttons   buttons
	mode      *modeCell
	statusSvc statusService
	comms     commChannels
}

func initCommChannels() commChannels {
	return commChannels{
		quit:     make(chan struct{}, 1),
		quitOnce: &sync.Once{}}
}

// shutdown closes quit, any goroutine may call it
func shutdown(comms commChannels) {
	comms.quitOnce.Do(func() { close(comms.quit) })
}

func initRuntime(settings configSettings, clock clockwork.Clock) runtimeConfig {
	return runtimeConfig{
		settings: settings,
		clock:    clock,
		start:    clock.Now(),
		logger:   &ThreadLogger{name: "Main"},
		mode:     newModeCell(),
		comms:    initCommChannels()}
}

func (rt runtimeConfig) uptime() time.Duration {
	return rt.clock.Now().Sub(rt.start)
}

// h:mm:ss.mmm
func uptimeStamp(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d:%02d.%03d",
		ms/3600000, (ms/60000)%60, (ms/1000)%60, ms%1000)
}

func quitting(comms commChannels) bool {
	select {
	case <-comms.quit:
		return true
	default:
	}
	return false
}
