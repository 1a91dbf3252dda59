// Package server runs the HTTP API and the background jobs next to it,
// and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
