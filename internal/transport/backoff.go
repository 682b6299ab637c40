package transport

import "time"

// retryBaseDelay is the pause before the second attempt; every further
// pause doubles it.
const retryBaseDelay = 100 * time.Millisecond

// backoffDelay returns how long to wait after the zero-based attempt fails:
// 100ms, 200ms, 400ms, doubling without cap. The caller never sleeps after
// the final attempt.
func backoffDelay(attempt int) time.Duration {
	return retryBaseDelay * time.Duration(1<<attempt)
}
