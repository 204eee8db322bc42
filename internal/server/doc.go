// Package server runs the local session endpoint together with the
// background workers of a long-lived gateway process.
//
// It owns startup, signal-driven cancellation and graceful shutdown.
package server
