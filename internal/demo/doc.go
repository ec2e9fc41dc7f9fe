// Package demo replays a scripted tour of the dashboard while a screen
// capture runs, stepping the companion through locations and moods on a
// fixed cadence.
package demo
