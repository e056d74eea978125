package main

// noButtons never sees an edge unless a test presses it
type noButtons struct {
	edges chan struct{}
	sync  chan struct{}
}

func init() {
	features = append(features, "no-buttons")
}

func newNoButtons() *noButtons {
	return &noButtons{
		edges: make(chan struct{}),
		sync:  make(chan struct{}),
	}
}

func (nb *noButtons) initButtons(settings configSettings) error {
	return nil
}

func (nb *noButtons) setupButtons(btn buttonMap, rt runtimeConfig) error {
	return nil
}

func (nb *noButtons) waitForEdge(rt runtimeConfig) (bool, error) {
	select {
	case <-nb.edges:
		return true, nil
	case <-nb.sync:
		return false, nil
	case <-rt.comms.quit:
		return false, nil
	}
}

func (nb *noButtons) closeButtons() {
}

// press hands the watcher one edge
func (nb *noButtons) press() {
	nb.edges <- struct{}{}
}

// settle returns once the watcher has finished with every earlier press
func (nb *noButtons) settle() {
	nb.sync <- struct{}{}
}
