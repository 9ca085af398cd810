package toast

import "slices"

// Snapshot is a point-in-time copy of the queue, oldest entries first.
// Version grows with every mutation of the queue it was taken from.
type Snapshot struct {
	Version       uint64
	Alerts        []Alert
	Confirmations []Confirmation
}

// Empty reports whether nothing is on screen.
func (s Snapshot) Empty() bool {
	return len(s.Alerts) == 0 && len(s.Confirmations) == 0
}

// Alert looks up an alert by id.
func (s Snapshot) Alert(id ID) (Alert, bool) {
	i := slices.IndexFunc(s.Alerts, func(a Alert) bool { return a.ID == id })
	if i < 0 {
		return Alert{}, false
	}
	return s.Alerts[i], true
}

// Confirmation looks up a confirmation by id.
func (s Snapshot) Confirmation(id ID) (Confirmation, bool) {
	i := slices.IndexFunc(s.Confirmations, func(c Confirmation) bool { return c.ID == id })
	if i < 0 {
		return Confirmation{}, false
	}
	return s.Confirmations[i], true
}
