package httputil

import (
	"net/http"
	"sync"
	"time"
)

// OutboundTimeout bounds every outbound call; a slow collaborator fails the
// request instead of hanging it.
const OutboundTimeout = 30 * time.Second

var (
	once   sync.Once
	client *http.Client
)

// SharedClient returns the process-wide HTTP client. Construction is lazy and
// safe for concurrent first calls.
func SharedClient() *http.Client {
	once.Do(func() {
		client = &http.Client{Timeout: OutboundTimeout}
	})
	return client
}
