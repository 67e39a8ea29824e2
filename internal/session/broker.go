// Package session tracks signed-in identities and broadcasts auth state
// changes to subscribers. It replaces ambient auth context with an
// explicitly constructed broker: consumers acquire a subscription and
// must release it with the returned cancel func.
package session

import (
	"sync"
	"time"
)

// EventType describes an auth state transition.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// Event is one auth state change for one user.
type Event struct {
	Type   EventType `json:"type"`
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

// subscriber buffer; slow consumers drop events rather than block sign-in.
const eventBuffer = 8

// Broker fan-outs auth events to per-user subscribers and remembers which
// users are currently signed in. All methods are safe for concurrent use.
type Broker struct {
	mu       sync.RWMutex
	nextID   int
	subs     map[string]map[int]chan Event
	signedIn map[string]bool
	closed   bool
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{
		subs:     make(map[string]map[int]chan Event),
		signedIn: make(map[string]bool),
	}
}

// Subscribe registers interest in auth events for one user. The returned
// cancel func releases the subscription; calling it more than once is
// harmless. After cancel the channel is closed.
func (b *Broker) Subscribe(userID string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, eventBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	b.nextID++
	id := b.nextID
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[int]chan Event)
	}
	b.subs[userID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if set, ok := b.subs[userID]; ok {
				if c, ok := set[id]; ok {
					delete(set, id)
					close(c)
				}
				if len(set) == 0 {
					delete(b.subs, userID)
				}
			}
		})
	}
	return ch, cancel
}

// Publish records the state transition and delivers the event to every
// subscriber of the affected user. Delivery is non-blocking; a full
// subscriber buffer drops the event.
func (b *Broker) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	switch ev.Type {
	case EventSignedIn:
		b.signedIn[ev.UserID] = true
	case EventSignedOut:
		delete(b.signedIn, ev.UserID)
	}

	for _, ch := range b.subs[ev.UserID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// IsSignedIn reports whether the user has signed in and not yet signed out.
func (b *Broker) IsSignedIn(userID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.signedIn[userID]
}

// SubscriberCount returns the number of live subscriptions for a user.
func (b *Broker) SubscriberCount(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

// Close shuts the broker down and closes every subscriber channel.
// Subsequent Publish calls are no-ops.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for userID, set := range b.subs {
		for id, ch := range set {
			delete(set, id)
			close(ch)
		}
		delete(b.subs, userID)
	}
}
