// Copyright 2025 go-shortvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package queue provides an in-order execution queue for blocks of vector
// code. A Queue is created once and reused; tasks run one at a time in the
// order they were submitted, and each submission yields an Event that can be
// waited on.
//
// Usage:
//
//	q := queue.New()
//	defer q.Close()
//
//	err := q.SingleTask(ctx, func() error {
//	    v := svec.Splat[float32](4, 1)
//	    fmt.Println(v)
//	    return nil
//	})
//
// A task must not call Submit, SingleTask, Wait or Close on its own queue.
// Submit holds the queue's lock until the previous task finishes, and Wait and
// Close take the same lock and then wait for every task, including the caller.
// Any of these calls from inside a task blocks forever.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrTaskPanic is wrapped by the error of a task that panicked.
	ErrTaskPanic = errors.New("queue: task panicked")

	// ErrClosed is returned for tasks submitted after Close.
	ErrClosed = errors.New("queue: closed")
)

// Queue runs submitted tasks sequentially in submission order.
type Queue struct {
	mu     sync.Mutex
	group  *errgroup.Group
	closed bool
}

// Event tracks the completion of one submitted task.
type Event struct {
	done chan struct{}
	err  error
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{group: newGroup()}
}

func newGroup() *errgroup.Group {
	g := new(errgroup.Group)
	g.SetLimit(1)
	return g
}

func completed(err error) *Event {
	ev := &Event{done: make(chan struct{}), err: err}
	close(ev.done)
	return ev
}

// Submit enqueues fn and returns an Event for its completion. Submit blocks
// while an earlier task is still running. If ctx is already done when the
// task's turn comes, fn is not run and the Event reports ctx.Err().
func (q *Queue) Submit(ctx context.Context, fn func() error) *Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return completed(ErrClosed)
	}
	if err := ctx.Err(); err != nil {
		return completed(err)
	}

	ev := &Event{done: make(chan struct{})}
	q.group.Go(func() error {
		defer close(ev.done)
		if err := ctx.Err(); err != nil {
			ev.err = err
			return err
		}
		ev.err = run(fn)
		return ev.err
	})
	return ev
}

// run calls fn, converting a panic into an error wrapping ErrTaskPanic and,
// when the panic value is an error, that error too.
func run(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = fmt.Errorf("%w: %w", ErrTaskPanic, e)
			return
		}
		err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
	}()
	return fn()
}

// SingleTask runs fn exactly once and returns after it has finished, so its
// side effects are visible to the caller.
func (q *Queue) SingleTask(ctx context.Context, fn func() error) error {
	return q.Submit(ctx, fn).Wait()
}

// Wait blocks until every task submitted so far has finished and returns the
// first error among them. The error state is reset afterwards.
// It must not be called from a task running on q.
func (q *Queue) Wait() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	g := q.group
	q.group = newGroup()
	return g.Wait()
}

// Close waits for outstanding tasks and rejects further submissions.
// Calling Close multiple times is safe, but not from a task running on q.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	_ = q.group.Wait()
}

// Wait blocks until the task has finished and returns its error.
func (e *Event) Wait() error {
	<-e.done
	return e.err
}

// Done returns a channel that is closed when the task has finished.
func (e *Event) Done() <-chan struct{} {
	return e.done
}
