package effect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncAwait(t *testing.T) {
	e := FromValue(42)
	v, err := e.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestMapTransformsResult(t *testing.T) {
	e := Map(FromValue(2), func(v int) string { return "n=2" })
	v, err := e.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "n=2", v)
}

func TestFlatMapShortCircuitsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	e := FlatMap(FromFailure[int](boom), func(v int) Eff[int] {
		t.Fatal("next should not run")
		return FromValue(v)
	})
	_, err := e.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRunAsyncCompletes(t *testing.T) {
	e := RunAsync(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})
	v, err := e.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestRunAsyncPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := RunAsync(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	_, err := e.Await(ctx)
	require.Error(t, err)
}

type closer struct{ closed *bool }

func (c closer) Close() error {
	*c.closed = true
	return nil
}

func TestUsingReleasesOnSuccess(t *testing.T) {
	closed := false
	e := Using[closer, int](
		func() (closer, error) { return closer{closed: &closed}, nil },
		func(c closer) Eff[int] { return FromValue(99) },
	)
	v, err := e.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.True(t, closed)
}
