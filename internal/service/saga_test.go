package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaga(t *testing.T) {
	ctx := context.Background()

	t.Run("All steps succeed", func(t *testing.T) {
		var trace []string
		err := newSaga("test").
			step("one", func(context.Context) error { trace = append(trace, "do1"); return nil }, func(context.Context) error { trace = append(trace, "undo1"); return nil }).
			step("two", func(context.Context) error { trace = append(trace, "do2"); return nil }, nil).
			run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"do1", "do2"}, trace)
	})

	t.Run("Failure compensates completed steps in reverse", func(t *testing.T) {
		var trace []string
		boom := errors.New("boom")
		err := newSaga("test").
			step("one", func(context.Context) error { trace = append(trace, "do1"); return nil }, func(context.Context) error { trace = append(trace, "undo1"); return nil }).
			step("two", func(context.Context) error { trace = append(trace, "do2"); return nil }, nil).
			step("three", func(context.Context) error { trace = append(trace, "do3"); return nil }, func(context.Context) error { trace = append(trace, "undo3"); return nil }).
			step("four", func(context.Context) error { return boom }, func(context.Context) error { trace = append(trace, "undo4"); return nil }).
			run(ctx)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"do1", "do2", "do3", "undo3", "undo1"}, trace)
	})

	t.Run("Compensation errors do not stop the rollback", func(t *testing.T) {
		var trace []string
		err := newSaga("test").
			step("one", func(context.Context) error { return nil }, func(context.Context) error { trace = append(trace, "undo1"); return nil }).
			step("two", func(context.Context) error { return nil }, func(context.Context) error { return errors.New("undo failed") }).
			step("three", func(context.Context) error { return errors.New("boom") }, nil).
			run(ctx)

		assert.EqualError(t, err, "boom")
		assert.Equal(t, []string{"undo1"}, trace)
	})

	t.Run("Compensation ignores a cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		var undoErr error
		err := newSaga("test").
			step("one", func(context.Context) error { return nil }, func(c context.Context) error { undoErr = c.Err(); return nil }).
			step("two", func(context.Context) error { cancel(); return context.Canceled }, nil).
			run(cctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.NoError(t, undoErr)
	})
}
