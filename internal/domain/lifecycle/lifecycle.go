// Package lifecycle holds shared startup/shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as draining the HTTP
// server and disconnecting the store client.
const DefaultTimeout = 10 * time.Second
