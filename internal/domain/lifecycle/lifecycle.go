// Package lifecycle holds shared start/stop timing for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of servers, pools and clients.
const DefaultTimeout = 10 * time.Second
