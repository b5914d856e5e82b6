package service

import (
	"context"

	"rentease-backend/internal/logger"
)

type sagaStep struct {
	name       string
	do         func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// saga runs ordered write steps. When a step fails, the compensations of the
// steps that already succeeded run in reverse order and the step's error is
// returned.
type saga struct {
	name  string
	steps []sagaStep
}

func newSaga(name string) *saga {
	return &saga{name: name}
}

// step appends a write. compensate may be nil for steps with nothing to undo.
func (s *saga) step(name string, do, compensate func(ctx context.Context) error) *saga {
	s.steps = append(s.steps, sagaStep{name: name, do: do, compensate: compensate})
	return s
}

func (s *saga) run(ctx context.Context) error {
	for i, st := range s.steps {
		if err := st.do(ctx); err != nil {
			logger.Warn("Saga step failed, compensating", "saga", s.name, "step", st.name, "error", err)
			s.rollback(ctx, i)
			return err
		}
	}
	return nil
}

// rollback compensates steps[0:failed] in reverse. Compensation runs even if
// the request context was cancelled.
func (s *saga) rollback(ctx context.Context, failed int) {
	ctx = context.WithoutCancel(ctx)
	for j := failed - 1; j >= 0; j-- {
		st := s.steps[j]
		if st.compensate == nil {
			continue
		}
		if err := st.compensate(ctx); err != nil {
			logger.ErrorWithStack("Saga compensation failed", err, "saga", s.name, "step", st.name)
		}
	}
}
