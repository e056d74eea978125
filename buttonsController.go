package main

func startWatchButtons(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Buttons"}
	wg.Add(1)
	go runWatchButtons(rt)
}

// runWatchButtons is the interrupt context: every qualifying edge moves
// the mode on, nothing else is touched
func runWatchButtons(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runWatchButtons")
	}()

	settings := rt.settings
	comms := rt.comms
	err := rt.buttons.initButtons(settings)
	if err != nil {
		rt.logger.Println(err.Error())
		return
	}

	// we now should defer the closeButtons call to when this function exits
	defer rt.buttons.closeButtons()

	err = rt.buttons.setupButtons(settings.GetButtonMap(), rt)
	if err != nil {
		rt.logger.Println(err.Error())
		return
	}

	for {
		select {
		case <-comms.quit:
			rt.logger.Println("quit from runWatchButtons")
			return
		default:
		}

		edge, err := rt.buttons.waitForEdge(rt)
		if err != nil {
			// we're done
			rt.logger.Printf("button watcher stopped: %s", err.Error())
			shutdown(comms)
			return
		}
		if edge {
			mode := rt.mode.advance()
			rt.logger.Printf("button pressed, mode is now %v", mode)
		}
	}
}
