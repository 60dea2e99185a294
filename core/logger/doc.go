// Package logger records what the shell did as newline delimited JSON events
// and summarizes those logs into reports.
package logger
