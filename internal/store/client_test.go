package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote is an in-memory Remote that can be told to fail.
type fakeRemote struct {
	mu       sync.Mutex
	data     map[string]string
	down     bool
	getCalls int
	setCalls int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{data: make(map[string]string)}
}

func (r *fakeRemote) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if r.down {
		return "", false, errors.New("remote unreachable")
	}
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *fakeRemote) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setCalls++
	if r.down {
		return errors.New("remote unreachable")
	}
	r.data[key] = value
	return nil
}

func (r *fakeRemote) setDown(down bool) {
	r.mu.Lock()
	r.down = down
	r.mu.Unlock()
}

func (r *fakeRemote) calls() (gets, sets int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getCalls, r.setCalls
}

type doc struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestClient_SetThenGet_RemoteDown(t *testing.T) {
	remote := newFakeRemote()
	remote.setDown(true)
	c := NewClient(remote, NewMemoryLocal())

	in := doc{Name: "turni", Tags: []string{"a", "b"}, Count: 3}
	require.NoError(t, c.Set(context.Background(), "k", in))
	c.Flush()

	var out doc
	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestClient_GetFallsBackToLocalOnRemoteFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.setDown(true)
	local := NewMemoryLocal()
	require.NoError(t, local.Set("k", `{"name":"x","tags":null,"count":1}`))

	c := NewClient(remote, local)

	var out doc
	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "x", out.Name)
	assert.Equal(t, 1, out.Count)
}

func TestClient_CorruptLocalPayloadIsAbsent(t *testing.T) {
	remote := newFakeRemote()
	remote.setDown(true)
	local := NewMemoryLocal()
	require.NoError(t, local.Set("k", `{"name": truncated`))

	c := NewClient(remote, local)

	var out doc
	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_CorruptRemotePayloadFallsBackToLocal(t *testing.T) {
	remote := newFakeRemote()
	remote.data["k"] = `not json at all`
	local := NewMemoryLocal()
	require.NoError(t, local.Set("k", `{"name":"local","tags":null,"count":0}`))

	c := NewClient(remote, local)

	var out doc
	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "local", out.Name)
}

func TestClient_CachesRemoteAbsence(t *testing.T) {
	remote := newFakeRemote()
	c := NewClient(remote, NewMemoryLocal())

	var out doc
	found, err := c.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = c.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	gets, _ := remote.calls()
	assert.Equal(t, 1, gets, "second read must hit the cached absence")
}

func TestClient_CacheSkipsRemoteAfterFirstRead(t *testing.T) {
	remote := newFakeRemote()
	remote.data["k"] = `{"name":"remote","tags":null,"count":2}`
	c := NewClient(remote, NewMemoryLocal())

	var out doc
	for i := 0; i < 3; i++ {
		found, err := c.Get(context.Background(), "k", &out)
		require.NoError(t, err)
		require.True(t, found)
	}

	gets, _ := remote.calls()
	assert.Equal(t, 1, gets)
	assert.Equal(t, "remote", out.Name)
}

func TestClient_SetIsFireAndForget(t *testing.T) {
	remote := newFakeRemote()
	remote.setDown(true)
	c := NewClient(remote, NewMemoryLocal())

	// Remote is unreachable, yet Set reports success.
	require.NoError(t, c.Set(context.Background(), "k", doc{Name: "silent"}))
	c.Flush()

	_, sets := remote.calls()
	assert.Equal(t, 1, sets)

	var out doc
	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "silent", out.Name)
}

func TestClient_SetReachesRemote(t *testing.T) {
	remote := newFakeRemote()
	c := NewClient(remote, NewMemoryLocal())

	require.NoError(t, c.Set(context.Background(), "k", doc{Name: "mirrored"}))
	c.Flush()

	remote.mu.Lock()
	stored := remote.data["k"]
	remote.mu.Unlock()
	assert.JSONEq(t, `{"name":"mirrored","tags":null,"count":0}`, stored)
}

func TestClient_RetriesRemoteWrites(t *testing.T) {
	remote := newFakeRemote()
	remote.setDown(true)
	c := NewClient(remote, NewMemoryLocal(), WithRetries(2))

	require.NoError(t, c.Set(context.Background(), "k", doc{Name: "retry"}))
	c.Flush()

	_, sets := remote.calls()
	assert.Equal(t, 3, sets, "retries=2 means three attempts")
}

func TestClient_SetOverwritesCachedAbsence(t *testing.T) {
	remote := newFakeRemote()
	c := NewClient(remote, NewMemoryLocal())

	var out doc
	found, _ := c.Get(context.Background(), "k", &out)
	require.False(t, found)

	require.NoError(t, c.Set(context.Background(), "k", doc{Name: "fresh"}))
	c.Flush()

	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "fresh", out.Name)
}

func TestClient_SetNullThenGetIsAbsentValue(t *testing.T) {
	remote := newFakeRemote()
	c := NewClient(remote, NewMemoryLocal())

	// Writing an explicit null is how sessions are cleared; readers get a
	// JSON null payload, not a missing key.
	require.NoError(t, c.Set(context.Background(), "currentUser", nil))
	c.Flush()

	var out *doc
	found, err := c.Get(context.Background(), "currentUser", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, out)
}
