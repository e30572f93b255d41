package monolog

import (
	"sync"

	"go.uber.org/zap"
)

type noSinkHandler struct {
	id uint64
	fn func()
}

type committedHandler struct {
	id uint64
	fn func(*Event)
}

// notifier delivers the two context notifications synchronously, in
// subscription order. A panicking handler is recovered and logged; delivery
// continues with the next handler.
type notifier struct {
	mu        sync.RWMutex
	nextID    uint64
	noSink    []noSinkHandler
	committed []committedHandler
}

func (n *notifier) subscribeNoSink(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	id := n.nextID
	n.noSink = append(n.noSink, noSinkHandler{id: id, fn: fn})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, h := range n.noSink {
			if h.id == id {
				n.noSink = append(n.noSink[:i:i], n.noSink[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) subscribeCommitted(fn func(*Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	id := n.nextID
	n.committed = append(n.committed, committedHandler{id: id, fn: fn})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, h := range n.committed {
			if h.id == id {
				n.committed = append(n.committed[:i:i], n.committed[i+1:]...)
				return
			}
		}
	}
}

// Handlers run outside the lock so they may subscribe or unsubscribe.
func (n *notifier) publishNoSink(diag *zap.Logger) {
	n.mu.RLock()
	handlers := n.noSink
	n.mu.RUnlock()

	for _, h := range handlers {
		deliver(diag, "no_sink", func() { h.fn() })
	}
}

func (n *notifier) publishCommitted(diag *zap.Logger, e *Event) {
	n.mu.RLock()
	handlers := n.committed
	n.mu.RUnlock()

	for _, h := range handlers {
		deliver(diag, "committed", func() { h.fn(e) })
	}
}

func deliver(diag *zap.Logger, channel string, call func()) {
	defer func() {
		if r := recover(); r != nil {
			diag.Error("notification subscriber panicked",
				zap.String("channel", channel),
				zap.Any("panic", r))
		}
	}()
	call()
}
