package event

import "time"

// Notification is a transient category/text event with sim-time expiry
type Notification struct {
	ID        uint64
	Category  Category
	Text      string
	Cutscene  string        // CutsceneHyper or CutsceneStop, empty otherwise
	ExpiresAt time.Duration // Simulated time the clear task fires
}

// Notifier tracks active notifications and an undrained outbox
// Single-goroutine use only, owned by the controller
type Notifier struct {
	nextID uint64
	active []Notification
	outbox []Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Post records a notification active until expiresAt and returns its ID
func (n *Notifier) Post(cat Category, text, cutscene string, expiresAt time.Duration) uint64 {
	n.nextID++
	note := Notification{
		ID:        n.nextID,
		Category:  cat,
		Text:      text,
		Cutscene:  cutscene,
		ExpiresAt: expiresAt,
	}
	n.active = append(n.active, note)
	n.outbox = append(n.outbox, note)
	return note.ID
}

// Clear removes an active notification; unknown IDs are ignored
func (n *Notifier) Clear(id uint64) {
	for i := range n.active {
		if n.active[i].ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}

// ClearCategory removes every active notification of the category
func (n *Notifier) ClearCategory(cat Category) {
	kept := n.active[:0]
	for _, note := range n.active {
		if note.Category != cat {
			kept = append(kept, note)
		}
	}
	n.active = kept
}

// Active returns a copy of the live notifications in post order
func (n *Notifier) Active() []Notification {
	if len(n.active) == 0 {
		return nil
	}
	out := make([]Notification, len(n.active))
	copy(out, n.active)
	return out
}

// Drain returns and forgets every notification posted since the last drain
func (n *Notifier) Drain() []Notification {
	out := n.outbox
	n.outbox = nil
	return out
}

// Reset drops all state; IDs keep increasing so stale clear tasks stay harmless
func (n *Notifier) Reset() {
	n.active = nil
	n.outbox = nil
}
