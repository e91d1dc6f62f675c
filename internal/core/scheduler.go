// Package core provides fundamental types for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer had already
	// fired (one-shot) or been stopped.
	Stop() bool
}

// Scheduler runs deferred callbacks on the game's event loop.
// Callbacks never run concurrently with each other or with the code that
// scheduled them.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer

	// Every runs fn every d until the returned timer is stopped.
	Every(d time.Duration, fn func()) Timer
}
