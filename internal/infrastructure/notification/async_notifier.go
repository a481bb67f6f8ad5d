package notification

import (
	"context"
	"fmt"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"sync"
	"time"
)

const DefaultTimeout = 10 * time.Second

// AsyncNotifier runs every notification in its own goroutine, detached from
// the caller's cancellation and bounded by timeout. Calls always return nil;
// failures and panics are logged and counted.
type AsyncNotifier struct {
	inner   interfaces.INotifier
	metrics interfaces.IWorkflowMetrics
	timeout time.Duration
	wg      sync.WaitGroup
}

var _ interfaces.INotifier = (*AsyncNotifier)(nil)

func NewAsyncNotifier(inner interfaces.INotifier, metrics interfaces.IWorkflowMetrics, timeout time.Duration) *AsyncNotifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &AsyncNotifier{inner: inner, metrics: metrics, timeout: timeout}
}

func (n *AsyncNotifier) NotifyDecision(ctx context.Context, identity entities.Identity, request entities.PaymentRequest, status entities.SubscriptionStatus) error {
	n.dispatch(ctx, "decision", func(ctx context.Context) error {
		return n.inner.NotifyDecision(ctx, identity, request, status)
	})
	return nil
}

func (n *AsyncNotifier) NotifyWelcome(ctx context.Context, identity entities.Identity) error {
	n.dispatch(ctx, "welcome", func(ctx context.Context) error {
		return n.inner.NotifyWelcome(ctx, identity)
	})
	return nil
}

func (n *AsyncNotifier) NotifyProductAlert(ctx context.Context, product entities.Product, recipients []entities.Identity) error {
	n.dispatch(ctx, "product_alert", func(ctx context.Context) error {
		return n.inner.NotifyProductAlert(ctx, product, recipients)
	})
	return nil
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (n *AsyncNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *AsyncNotifier) dispatch(parent context.Context, event string, send func(context.Context) error) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), n.timeout)
		defer cancel()

		if err := safeSend(ctx, send); err != nil {
			log.Printf("[notify][async] send failed event=%s err=%v", event, err)
			if n.metrics != nil {
				n.metrics.NotificationFailed(event)
			}
		}
	}()
}

func safeSend(ctx context.Context, send func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()
	return send(ctx)
}
