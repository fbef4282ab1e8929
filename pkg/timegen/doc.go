// Package timegen produces random instants, dates and durations.
//
// Relative helpers (Recent, Date) measure from the generator's clock, which
// defaults to time.Now and can be pinned with WithClock.
package timegen
