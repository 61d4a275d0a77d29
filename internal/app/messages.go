package app

import "time"

// TickMsg triggers the staleness check on the level screen.
type TickMsg time.Time

// ToastExpiredMsg clears the converter toast if it is still the same one.
type ToastExpiredMsg struct {
	Seq int
}
