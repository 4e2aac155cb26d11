package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gridloom/gridloom/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing.
// The market publishes its post-commit events through it so a handler failure
// can never unwind or block an already-committed purchase.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // Protects file writes

	wg       sync.WaitGroup
	done     chan struct{}
	shutOnce sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		config: config,
		done:   make(chan struct{}),
	}
}

// Publish attempts to publish an event. If it fails, it initiates a background retry loop.
// It returns nil to the caller immediately if the event is accepted for processing (even if the first attempt fails).
// This decouples the caller from the retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.Warn(LogMsgPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	select {
	case <-p.done:
		// Shutting down, no retry loop will run. Preserve the event.
		p.writeToDeadLetter(event)
		return nil
	default:
	}

	// Retries run on a detached context because the original request
	// context is usually cancelled by the time they fire.
	p.wg.Add(1)
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()
	ctx := context.Background()

	for i := 1; i <= p.config.MaxRetries; i++ {
		select {
		case <-time.After(p.config.RetryDelay * time.Duration(i)): // Simple linear backoff
		case <-p.done:
			// Shutdown interrupts the backoff, the event goes to the
			// dead letter file instead of being dropped.
			p.writeToDeadLetter(event)
			return
		}

		err := p.inner.Publish(ctx, event)
		if err == nil {
			logger.Info(LogMsgRetrySucceeded,
				"event_type", event.Type,
				"attempt", i)
			return
		}

		logger.Warn(LogMsgRetryFailed,
			"event_type", event.Type,
			"attempt", i,
			"error", err)
	}

	// All retries failed, send to dead letter queue
	p.writeToDeadLetter(event)
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error(LogMsgDeadLetterOpenFail, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	type DeadLetterEntry struct {
		Timestamp time.Time `json:"timestamp"`
		Event     Event     `json:"event"`
	}

	entry := DeadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error(LogMsgDeadLetterWriteFail, "error", err)
	} else {
		logger.Info(LogMsgDeadLetterWritten, "event_type", event.Type)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops accepting new retry loops and waits for in-flight ones to
// finish. Loops still waiting on a backoff are interrupted and their events
// written to the dead letter file. Returns ctx.Err if the context expires
// before the loops drain.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutOnce.Do(func() {
		close(p.done)
	})

	drained := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
