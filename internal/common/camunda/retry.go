// internal/common/camunda/retry.go
package camunda

import (
	"context"
	"fmt"
	"time"

	"tribunal-workers/internal/common/logger"
)

// RetryConfig defines retry behavior for transient failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// WithBackoff runs op until it succeeds, doubling the delay after each
// failure up to MaxDelay. MaxRetries counts attempts, not retries.
func WithBackoff(ctx context.Context, rc *RetryConfig, log logger.Logger, operationName string, op func(context.Context) error) error {
	if rc == nil {
		rc = DefaultRetryConfig
	}

	var err error
	delay := rc.BaseDelay
	for attempt := 1; attempt <= rc.MaxRetries; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if attempt == rc.MaxRetries {
			break
		}

		log.Warn(fmt.Sprintf("%s failed, retrying", operationName), map[string]interface{}{
			"error":       err.Error(),
			"attempt":     attempt,
			"maxRetries":  rc.MaxRetries,
			"nextRetryIn": delay.String(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s cancelled after %d attempts: %w", operationName, attempt, ctx.Err())
		}

		delay *= 2
		if rc.MaxDelay > 0 && delay > rc.MaxDelay {
			delay = rc.MaxDelay
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, rc.MaxRetries, err)
}
