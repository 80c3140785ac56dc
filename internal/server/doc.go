// Package server wires and runs the application's transport servers.
//
// It runs the HTTP API and the optional gRPC health server, including
// startup, signal handling, and graceful shutdown of all enabled transports.
package server
