package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const toastBufferSize = 50

// Toast is a short-lived dashboard notification.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// ToastBuffer collects notifications pushed by the campaign until the
// client polls them away.
type ToastBuffer struct {
	mu      sync.Mutex
	pending []Toast
}

func NewToastBuffer() *ToastBuffer {
	return &ToastBuffer{}
}

// Push implements game.Notifier.
func (b *ToastBuffer) Push(message, level string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, Toast{
		ID:        uuid.New().String(),
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
	})
	if len(b.pending) > toastBufferSize {
		b.pending = b.pending[len(b.pending)-toastBufferSize:]
	}
}

// Drain returns all pending toasts and clears the buffer.
func (b *ToastBuffer) Drain() []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	if out == nil {
		out = []Toast{}
	}
	return out
}
