package sequence

import (
	"context"
	"guytogo/internal/usecase/interfaces"
	"sync/atomic"
	"time"
)

// MemorySequencer is a process-local counter. It starts from the wall clock
// in nanoseconds so numbers keep increasing across restarts against a
// persistent store.
type MemorySequencer struct {
	n atomic.Int64
}

var _ interfaces.IDecisionSequencer = (*MemorySequencer)(nil)

func NewMemorySequencer() *MemorySequencer {
	s := &MemorySequencer{}
	s.n.Store(time.Now().UnixNano())
	return s
}

func (s *MemorySequencer) Next(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.n.Add(1), nil
}
