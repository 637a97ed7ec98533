package infra

import "time"

const (
	backoffBase = 1 * time.Second
	backoffMax  = 60 * time.Second
)

// CalculateBackoff returns an exponential reconnect delay capped at one
// minute: 1s, 2s, 4s, ...
func CalculateBackoff(retryCount int) time.Duration {
	if retryCount <= 0 {
		return backoffBase
	}
	if retryCount > 6 {
		return backoffMax
	}
	delay := backoffBase << uint(retryCount)
	if delay > backoffMax {
		return backoffMax
	}
	return delay
}
