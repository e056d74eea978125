package main

import (
	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// keyEvents is the part of termbox the watcher polls
type keyEvents interface {
	PollEvent() termbox.Event
	Interrupt()
}

type termboxEvents struct{}

func (termboxEvents) PollEvent() termbox.Event { return termbox.PollEvent() }
func (termboxEvents) Interrupt()               { termbox.Interrupt() }

type keyButtons struct {
	btn    buttonMap
	events keyEvents
}

func init() {
	features = append(features, "key-buttons")
}

func (kb *keyButtons) initButtons(settings configSettings) error {
	err := termbox.Init()
	if err != nil {
		return err
	}

	termbox.SetInputMode(termbox.InputEsc)
	termbox.Flush()

	// close it later
	return nil
}

func (kb *keyButtons) setupButtons(btn buttonMap, rt runtimeConfig) error {
	kb.btn = btn
	if kb.events == nil {
		kb.events = termboxEvents{}
	}
	return nil
}

// waitForEdge reads keys until its own interrupt arrives, so no interrupt
// is left over for the next wait. Any key is a press, several keys in one
// wait are one press, Ctrl-C stops the watcher.
func (kb *keyButtons) waitForEdge(rt runtimeConfig) (bool, error) {
	go func() {
		rt.clock.Sleep(kb.btn.poll * 10)
		kb.events.Interrupt()
	}()

	edge := false
	var err error
	for {
		ev := kb.events.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC {
				err = errors.New("Exit termbox loop")
			} else if ev.Ch != 0 || ev.Key == termbox.KeySpace {
				edge = true
			}
		case termbox.EventError:
			err = ev.Err
		case termbox.EventInterrupt:
			return edge && err == nil, err
		}
	}
}

func (kb *keyButtons) closeButtons() {
	termbox.Close()
}
