package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/metrics"
	"github.com/gridloom/gridloom/internal/user"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	UserService user.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (for event-based metrics)
// - Account cache refresh on completed sales
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	// Register Metrics Collector
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	// A completed sale changes the balances of both parties, so their
	// cached account snapshots must not outlive the purchase.
	deps.EventBus.Subscribe(event.ListingSold, func(ctx context.Context, evt event.Event) error {
		payload, ok := evt.Payload.(domain.ListingSoldPayload)
		if !ok {
			return nil
		}
		deps.UserService.RefreshAccount(payload.Buyer)
		deps.UserService.RefreshAccount(payload.Seller)
		return nil
	})
	slog.Info(LogMsgCacheRefreshRegistered)

	return nil
}
