package main

import (
	"time"

	"github.com/pkg/errors"
)

// the mode button
type buttonMap struct {
	pin    string
	pullup bool          // pressed pulls the pin to ground
	poll   time.Duration // how long one wait for an edge lasts
}

func (s configSettings) GetButtonMap() buttonMap {
	return buttonMap{
		pin:    s.GetString(sButtonPin),
		pullup: s.GetBool(sButtonPullup),
		poll:   s.GetDuration(sButtonPoll),
	}
}

func newButtons(settings configSettings) (buttons, error) {
	switch settings.GetString(sButtonBackend) {
	case "rpio":
		return &rpioButtons{}, nil
	case "periph":
		return &periphButtons{}, nil
	case "key":
		return &keyButtons{}, nil
	case "none":
		return newNoButtons(), nil
	}
	return nil, errors.Errorf("unknown button backend %q", settings.GetString(sButtonBackend))
}
