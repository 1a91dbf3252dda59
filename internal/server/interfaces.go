package server

import "context"

// Server defines the lifecycle of the process' transport.
//
// RunServer blocks until a stop signal arrives or ctx is cancelled, then
// drains in-flight requests before returning.
type Server interface {
	RunServer(ctx context.Context) error
}

// Job is a background task that runs until its context is cancelled.
type Job interface {
	Run(ctx context.Context)
}
