// Package logger provides structured logging for the marketplace SDK,
// built on zerolog. A Logger is either constructed from a Config or pulled
// from the environment (LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT), and is passed
// to the HTTP client to record request outcomes at debug level.
package logger
