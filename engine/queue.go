// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"
)

// DefaultQueueSize is used when Options.QueueSize is not positive.
const DefaultQueueSize = 64

// Queue carries commands from any number of control goroutines to the single
// real-time goroutine. Senders may block; the receiver never does.
type Queue struct {
	ch chan Command
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Command, size)}
}

// Send enqueues cmd, waiting for room until ctx is done.
func (q *Queue) Send(ctx context.Context, cmd Command) error {
	select {
	case q.ch <- cmd:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sending %v command: %w", cmd.Kind, ctx.Err())
	}
}

// TrySend enqueues cmd without waiting. It fails with ErrQueueFull.
func (q *Queue) TrySend(cmd Command) error {
	select {
	case q.ch <- cmd:
		return nil
	default:
		return fmt.Errorf("sending %v command: %w", cmd.Kind, ErrQueueFull)
	}
}

// Poll returns the oldest pending command, if any, without waiting.
func (q *Queue) Poll() (Command, bool) {
	select {
	case cmd := <-q.ch:
		return cmd, true
	default:
		return Command{}, false
	}
}

// Len returns the number of pending commands.
func (q *Queue) Len() int { return len(q.ch) }
