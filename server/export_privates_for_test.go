// SPDX-License-Identifier: MIT
package server

import "time"

// WithPongWait shortens the websocket keepalive window for tests.
func WithPongWait(d time.Duration) Option {
	return func(c *config) { c.pongWait = d }
}
