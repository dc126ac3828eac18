// Package effect implements C9's Eff[T] abstraction: a deferred,
// possibly-failing computation with Map/FlatMap, realized either
// synchronously (Sync, an immediately-evaluated Result[T]) or
// asynchronously (Async, a goroutine-backed future built on
// golang.org/x/sync/errgroup). Callers write against the Eff[T]
// interface so either realization plugs in without changing parser or
// renderer code.
package effect

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// Eff is a deferred, possibly-failing computation yielding a T.
type Eff[T any] interface {
	// Await blocks (for Async) or returns immediately (for Sync) until
	// the computation has run, returning its value or error.
	Await(ctx context.Context) (T, error)
}

// mapEff adapts an Eff[T] into an Eff[S] by applying f to a successful
// result.
type mapEff[T, S any] struct {
	src Eff[T]
	f   func(T) (S, error)
}

func (m *mapEff[T, S]) Await(ctx context.Context) (S, error) {
	v, err := m.src.Await(ctx)
	var zero S
	if err != nil {
		return zero, err
	}
	return m.f(v)
}

// Map lazily transforms a successful Eff[T] result into an Eff[S]. This
// is a free function (not a method) because Go forbids a generic method
// from introducing a type parameter the receiver doesn't already bind.
func Map[T, S any](e Eff[T], f func(T) S) Eff[S] {
	return &mapEff[T, S]{src: e, f: func(v T) (S, error) { return f(v), nil }}
}

// FlatMap sequences two fallible effects, running next's effect only if
// e succeeds.
func FlatMap[T, S any](e Eff[T], next func(T) Eff[S]) Eff[S] {
	return &flatMapEff[T, S]{src: e, next: next}
}

type flatMapEff[T, S any] struct {
	src  Eff[T]
	next func(T) Eff[S]
}

func (m *flatMapEff[T, S]) Await(ctx context.Context) (S, error) {
	v, err := m.src.Await(ctx)
	var zero S
	if err != nil {
		return zero, err
	}
	return m.next(v).Await(ctx)
}

// Sync wraps an already-evaluated Result as an Eff[T] for synchronous
// callers (tests, CLI one-shots).
type Sync[T any] struct {
	Value T
	Err   error
}

// FromValue builds a successful Sync effect.
func FromValue[T any](v T) Eff[T] { return Sync[T]{Value: v} }

// FromFailure builds a failed Sync effect.
func FromFailure[T any](err error) Eff[T] { return Sync[T]{Err: err} }

// Await implements Eff.
func (s Sync[T]) Await(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.Value, s.Err
}

// Async runs thunk in a goroutine managed by an errgroup.Group, so
// Await respects ctx cancellation (the caller's effect runtime) even
// while thunk is still in flight.
type Async[T any] struct {
	g      *errgroup.Group
	result chan T
	errc   chan error
}

// RunAsync schedules thunk on its own goroutine and returns an Eff[T]
// representing its eventual result.
func RunAsync[T any](ctx context.Context, thunk func(ctx context.Context) (T, error)) Eff[T] {
	g, gctx := errgroup.WithContext(ctx)
	a := &Async[T]{g: g, result: make(chan T, 1), errc: make(chan error, 1)}
	g.Go(func() error {
		v, err := thunk(gctx)
		if err != nil {
			a.errc <- err
			return err
		}
		a.result <- v
		return nil
	})
	return a
}

// Await blocks until thunk completes or ctx is done, whichever comes
// first.
func (a *Async[T]) Await(ctx context.Context) (T, error) {
	var zero T
	select {
	case v := <-a.result:
		return v, nil
	case err := <-a.errc:
		return zero, err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Using guarantees acquire's resource is released on every exit path
// (success, failure, or ctx cancellation) once use's effect has settled
// and before Using's own Await returns.
func Using[C io.Closer, T any](acquire func() (C, error), use func(C) Eff[T]) Eff[T] {
	return &usingEff[C, T]{acquire: acquire, use: use}
}

type usingEff[C io.Closer, T any] struct {
	acquire func() (C, error)
	use     func(C) Eff[T]
}

func (u *usingEff[C, T]) Await(ctx context.Context) (T, error) {
	var zero T
	res, err := u.acquire()
	if err != nil {
		return zero, err
	}
	defer res.Close()
	return u.use(res).Await(ctx)
}
