// Package bus provides the page-scoped broadcast used to decouple the
// countdown banner from the pricing section. It is deliberately tiny:
// in-process, payload-free signals with at-most-once delivery per publish
// and no queuing for subscribers that attach later.
package bus

import "sync"

// Topic names a broadcast signal.
type Topic string

// TopicClaimDiscount is published when the user claims the launch offer.
const TopicClaimDiscount Topic = "claim-discount"

// Bus is a minimal publish/subscribe broadcast. All methods are safe for
// concurrent use, although the TUI drives it from a single event loop.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic]map[int]func()
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic]map[int]func())}
}

// Subscribe registers fn for topic and returns an unsubscribe func.
// Subscribers must unsubscribe when their component unmounts.
func (b *Bus) Subscribe(topic Topic, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish invokes every current subscriber of topic exactly once.
// Publishing to a topic with no subscribers is a no-op.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// SubscriberCount reports how many subscribers a topic currently has.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
