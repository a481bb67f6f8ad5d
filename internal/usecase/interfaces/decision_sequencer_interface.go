package interfaces

import "context"

// IDecisionSequencer hands out strictly increasing decision numbers so that
// "last decision wins" is well defined across processes.
type IDecisionSequencer interface {
	Next(ctx context.Context) (int64, error)
}
