/*
The logger package provides the leveled logging used throughout switchback.

A Logger prints to stdout by default.
When the SENTRY_DSN environment variable is set,
error-state logs are additionally shipped to Sentry.
*/
package logger
