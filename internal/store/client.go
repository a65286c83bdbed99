// Package store implements the key/value persistence core: an in-memory
// session cache in front of a remote fire-and-forget mirror, with a durable
// local fallback. The local store is the source of truth for one device; the
// remote is an eventually-consistent cross-device mirror with no conflict
// detection (last write wins).
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client is constructed once at process start and passed to the
// repositories; it owns its cache instead of hiding it in package state.
type Client struct {
	mu    sync.RWMutex
	cache map[string]json.RawMessage

	remote  Remote
	breaker *Breaker
	local   Local

	// retries applies to remote writes only. 0 means one attempt, no retry.
	retries      int
	writeTimeout time.Duration

	wg  sync.WaitGroup
	log zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithRetries sets the remote-write retry count (default 0).
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithLogger attaches a logger; failures are logged at debug, never surfaced.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithBreaker replaces the default remote circuit breaker.
func WithBreaker(b *Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

// NewClient wires a store client over a remote mirror and a local fallback.
func NewClient(remote Remote, local Local, opts ...Option) *Client {
	c := &Client{
		cache:        make(map[string]json.RawMessage),
		remote:       remote,
		breaker:      NewBreaker(DefaultBreakerConfig()),
		local:        local,
		retries:      0,
		writeTimeout: 15 * time.Second,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get resolves key into out. Resolution order: session cache (never expires,
// including cached "known absent"), then remote, then the local fallback on
// any remote failure or undecodable payload. found is false when no source
// holds a parseable value; a corrupt value and a missing key look the same
// to the caller.
func (c *Client) Get(ctx context.Context, key string, out any) (found bool, err error) {
	c.mu.RLock()
	raw, cached := c.cache[key]
	c.mu.RUnlock()
	if cached {
		if raw == nil {
			return false, nil
		}
		return true, json.Unmarshal(raw, out)
	}

	payload, ok, rerr := c.remoteGet(ctx, key)
	if rerr == nil {
		if !ok {
			// Remote authoritative "no value": cache the absence.
			c.storeCache(key, nil)
			return false, nil
		}
		if json.Valid([]byte(payload)) {
			c.storeCache(key, json.RawMessage(payload))
			return true, json.Unmarshal([]byte(payload), out)
		}
		c.log.Debug().Str("key", key).Msg("store: remote payload unparseable, falling back to local")
	} else {
		c.log.Debug().Str("key", key).Err(rerr).Msg("store: remote read failed, falling back to local")
	}

	v, ok := c.local.Get(key)
	if !ok || !json.Valid([]byte(v)) {
		return false, nil
	}
	c.storeCache(key, json.RawMessage(v))
	return true, json.Unmarshal([]byte(v), out)
}

// Set caches the value, mirrors it to the local store best-effort, then
// fires the remote write on a background goroutine. It returns once local
// persistence has been attempted; the caller never waits on, or learns
// about, the remote outcome.
func (c *Client) Set(ctx context.Context, key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.storeCache(key, raw)

	if lerr := c.local.Set(key, string(raw)); lerr != nil {
		// Quota-style failures are swallowed; data is only as safe as the
		// next successful write.
		c.log.Debug().Str("key", key).Err(lerr).Msg("store: local mirror write failed")
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.remoteSet(key, string(raw))
	}()
	return nil
}

// Flush blocks until every in-flight remote write has been attempted.
// Call on shutdown and in tests; normal operation never needs it.
func (c *Client) Flush() {
	c.wg.Wait()
}

func (c *Client) storeCache(key string, raw json.RawMessage) {
	c.mu.Lock()
	c.cache[key] = raw
	c.mu.Unlock()
}

func (c *Client) remoteGet(ctx context.Context, key string) (payload string, found bool, err error) {
	err = c.breaker.Execute(func() error {
		var e error
		payload, found, e = c.remote.Get(ctx, key)
		return e
	})
	return payload, found, err
}

func (c *Client) remoteSet(key, value string) {
	attempts := c.retries + 1
	for i := 0; i < attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
		err := c.breaker.Execute(func() error {
			return c.remote.Set(ctx, key, value)
		})
		cancel()
		if err == nil {
			return
		}
		c.log.Debug().Str("key", key).Int("attempt", i+1).Err(err).Msg("store: remote write dropped")
	}
}
