// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown operations such as
// database pings and HTTP server drain.
const DefaultTimeout = 10 * time.Second
