// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of infrastructure components.
const DefaultTimeout = 10 * time.Second
