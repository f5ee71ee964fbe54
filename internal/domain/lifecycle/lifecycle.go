// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as DB pings
// and graceful server shutdown.
const DefaultTimeout = 10 * time.Second
