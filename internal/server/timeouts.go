package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout covers a rate-limit wait plus the upstream timeout for
	// each of the compare view's two parallel fetches.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
