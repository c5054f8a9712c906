// Package pipeline drives the repeat engine over a restartable record stream:
// one full pass per pattern, in pattern order, tallying accepted matches and
// reporting events through a visit callback.
//
// The only contract to implement is RecordStream (Restart + Next).
// This keeps the driver swappable and testable.
package pipeline
