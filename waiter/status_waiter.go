package waiter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type StatusInfo interface {
	Status() string
}

type StatusResource interface {
	ID() string
}

type StatusFetcher func(context.Context, StatusResource) (StatusInfo, error)

// Policy bounds how long and how often a resource is polled.
// A zero MaxAttempts means attempts are bounded only by PollTimeout.
type Policy struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
	MaxAttempts  int
	ErrorRetries int
}

type Config struct {
	Policy
	Resource      StatusResource
	DesiredStatus string
	Logger        logrus.FieldLogger
}

const (
	DefaultPollTimeout  = 15 * time.Minute
	DefaultPollInterval = 10 * time.Second
)

// TimeoutError is returned when the desired status is not observed within the
// policy's time or attempt bound.
type TimeoutError struct {
	Timeout    time.Duration
	Attempts   int
	LastStatus string
	resource   StatusResource
}

func (e TimeoutError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("gave up after %d attempts polling on resource %s (last status %q)", e.Attempts, e.resource.ID(), e.LastStatus)
	}
	return fmt.Sprintf("timed out after %s polling on resource %s (last status %q)", e.Timeout, e.resource.ID(), e.LastStatus)
}

func WaitForStatus(ctx context.Context, status StatusFetcher, c Config) (StatusInfo, error) {
	pollTimeout := c.PollTimeout
	if pollTimeout == 0 {
		pollTimeout = DefaultPollTimeout
	}

	pollInterval := c.PollInterval
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}

	logger := c.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	logger.Debugf("waiting on %s to be desired status %s", c.Resource.ID(), c.DesiredStatus)
	// fetches share the poll deadline so a hung fetch cannot outlive it
	fetchCtx, cancelFetch := context.WithTimeout(ctx, pollTimeout)
	defer cancelFetch()
	timeout := time.NewTimer(pollTimeout)
	defer timeout.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	attempts := 0
	fetchErrors := 0
	lastStatus := ""
	for {
		attempts++
		info, err := status(fetchCtx, c.Resource)
		if err != nil && fetchCtx.Err() != nil && ctx.Err() == nil {
			logger.Debugf("timed out waiting for %s", c.Resource.ID())
			return nil, TimeoutError{Timeout: pollTimeout, LastStatus: lastStatus, resource: c.Resource}
		}
		if err != nil {
			fetchErrors++
			if fetchErrors > c.ErrorRetries {
				logger.Debugf("describe encountered error %s", err)
				return nil, err
			}
			logger.Debugf("describe encountered error %s, retrying", err)
		} else {
			if info.Status() == c.DesiredStatus {
				logger.Debugf("%s matches desired status %s", c.Resource.ID(), c.DesiredStatus)
				return info, nil
			}
			lastStatus = info.Status()
		}

		if fetchCtx.Err() != nil && ctx.Err() == nil {
			logger.Debugf("timed out waiting for %s", c.Resource.ID())
			return nil, TimeoutError{Timeout: pollTimeout, LastStatus: lastStatus, resource: c.Resource}
		}

		if c.MaxAttempts > 0 && attempts >= c.MaxAttempts {
			return nil, TimeoutError{Attempts: attempts, LastStatus: lastStatus, resource: c.Resource}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout.C:
			logger.Debugf("timed out waiting for %s", c.Resource.ID())
			return nil, TimeoutError{Timeout: pollTimeout, LastStatus: lastStatus, resource: c.Resource}
		case <-ticker.C:
		}
	}
}
