package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type cacheEntry struct {
	text    string
	expires time.Time
}

// Cache is an expiring narrative cache used when Redis is not configured.
type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]cacheEntry
}

func NewCache() *Cache {
	return &Cache{now: time.Now, entries: make(map[string]cacheEntry)}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.entries, key)
		return "", false, nil
	}
	return e.text, true, nil
}

// Set stores text; a non-positive ttl keeps it until the process exits.
func (c *Cache) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := cacheEntry{text: text}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// Event is one published message.
type Event struct {
	Channel string
	Payload json.RawMessage
}

// Events records published events in memory.
type Events struct {
	mu     sync.Mutex
	events []Event
}

func (e *Events) Publish(ctx context.Context, channel string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, Event{Channel: channel, Payload: b})
	return nil
}

func (e *Events) Published() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Event(nil), e.events...)
}
