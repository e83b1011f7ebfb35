// Package render turns simulated traces into artifacts: an interactive HTML
// line chart, a CSV table, or a WAV file for listening to a node.
//
// Every renderer takes the shared time axis and one or more core.Series of
// the same length.
package render
