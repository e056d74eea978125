package main

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type display interface {
	OpenDisplay(settings configSettings) error
	DebugDump(on bool)
	Print(e string) error
	ClearDisplay() error
	SelfTest(clock clockwork.Clock, delay time.Duration) error
	CloseDisplay() error
}

// a source of qualifying edges for the mode button
type buttons interface {
	initButtons(settings configSettings) error
	setupButtons(btn buttonMap, rt runtimeConfig) error
	// waitForEdge returns true for one qualifying edge, false when the
	// wait ran out without one
	waitForEdge(rt runtimeConfig) (bool, error)
	closeButtons()
}

type sensor interface {
	ready() error
	fetch() error
	channel(ch sensorChannel) (float64, error)
}

type statusService interface {
	launch(handler *apiHandler, addr string)
	stop()
}
