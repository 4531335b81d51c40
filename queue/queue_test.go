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

package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-shortvec/svec"
)

func TestSingleTask(t *testing.T) {
	q := New()
	defer q.Close()

	var v svec.Vec[float32]
	err := q.SingleTask(context.Background(), func() error {
		v = svec.Splat[float32](4, 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1, 1}, v.Slice())
}

func TestSubmissionOrder(t *testing.T) {
	q := New()
	defer q.Close()

	const n = 100
	var order []int
	var running atomic.Int32
	events := make([]*Event, n)
	for i := range n {
		events[i] = q.Submit(context.Background(), func() error {
			if running.Add(1) != 1 {
				t.Error("more than one task in flight")
			}
			order = append(order, i)
			running.Add(-1)
			return nil
		})
	}
	require.NoError(t, q.Wait())
	for _, ev := range events {
		select {
		case <-ev.Done():
		default:
			t.Fatal("event not done after Queue.Wait")
		}
	}
	require.Len(t, order, n)
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d", i, got)
		}
	}
}

func TestTaskError(t *testing.T) {
	q := New()
	defer q.Close()

	boom := errors.New("boom")
	ev := q.Submit(context.Background(), func() error { return boom })
	assert.ErrorIs(t, ev.Wait(), boom)
	assert.ErrorIs(t, q.Wait(), boom)

	// Error state resets after Wait.
	require.NoError(t, q.SingleTask(context.Background(), func() error { return nil }))
	assert.NoError(t, q.Wait())
}

func TestTaskPanic(t *testing.T) {
	q := New()
	defer q.Close()

	err := q.SingleTask(context.Background(), func() error {
		var v svec.Vec[float32]
		_ = v.Lane(0)
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTaskPanic)
	assert.ErrorIs(t, err, svec.ErrLaneRange)

	// The queue keeps working after a panic.
	assert.NoError(t, q.SingleTask(context.Background(), func() error { return nil }))

	err = q.SingleTask(context.Background(), func() error { panic("plain") })
	assert.ErrorIs(t, err, ErrTaskPanic)
	assert.Contains(t, err.Error(), "plain")
}

func TestCancelledContext(t *testing.T) {
	q := New()
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	err := q.SingleTask(ctx, func() error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestCancelWhileQueued(t *testing.T) {
	q := New()
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	first := q.Submit(context.Background(), func() error {
		cancel()
		return nil
	})
	// The second task cannot start before the first has cancelled ctx.
	ran := false
	second := q.Submit(ctx, func() error {
		ran = true
		return nil
	})
	require.NoError(t, first.Wait())
	assert.ErrorIs(t, second.Wait(), context.Canceled)
	assert.False(t, ran)
}

func TestClose(t *testing.T) {
	q := New()
	var done atomic.Bool
	q.Submit(context.Background(), func() error {
		done.Store(true)
		return nil
	})
	q.Close()
	assert.True(t, done.Load(), "Close must wait for outstanding tasks")

	err := q.SingleTask(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrClosed)
	q.Close()
}
