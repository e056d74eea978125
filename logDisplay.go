package main

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// logDisplay records what would have been shown, for tests
type logDisplay struct {
	curDisplay string
	debugDump  bool
	opened     bool
	audit      []string
}

const auditClear = "<clear>"

func (ld *logDisplay) OpenDisplay(settings configSettings) error {
	ld.curDisplay = ""
	ld.debugDump = settings.GetBool(sDebugDump)
	ld.opened = true
	ld.audit = []string{}
	return nil
}

func (ld *logDisplay) DebugDump(on bool) {
	ld.debugDump = on
}

func (ld *logDisplay) Print(e string) error {
	ld.audit = append(ld.audit, e)
	ld.curDisplay = e
	return nil
}

func (ld *logDisplay) ClearDisplay() error {
	ld.audit = append(ld.audit, auditClear)
	ld.curDisplay = ""
	return nil
}

func (ld *logDisplay) SelfTest(clock clockwork.Clock, delay time.Duration) error {
	ld.audit = append(ld.audit, "<selftest>")
	clock.Sleep(delay)
	return nil
}

func (ld *logDisplay) CloseDisplay() error {
	ld.opened = false
	return nil
}

// the printed strings, without the clears
func (ld *logDisplay) printed() []string {
	var ret []string
	for _, e := range ld.audit {
		if e != auditClear {
			ret = append(ret, e)
		}
	}
	return ret
}
