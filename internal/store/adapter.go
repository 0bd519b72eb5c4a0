package store

import (
	"context"
	"encoding/json"
	"log"
)

type Mode int

const (
	// ModeRemote: reads and writes go to the sheet service.
	ModeRemote Mode = iota
	// ModeLocal: the remote has failed (or was never configured); all
	// traffic goes to the local cache until the process restarts.
	ModeLocal
)

// Adapter fronts the remote backend with automatic, sticky failover to the
// local cache. A single adapter instance is shared by all repositories; the
// mode is a plain field because the system assumes one active writer.
type Adapter struct {
	remote Remote
	cache  *Cache
	mode   Mode
}

type Option func(*Adapter)

// StartOffline pins the adapter to the local cache from the start. Used
// when no sheet URL is configured, and by tests.
func StartOffline() Option {
	return func(a *Adapter) { a.mode = ModeLocal }
}

func New(remote Remote, cache *Cache, opts ...Option) *Adapter {
	a := &Adapter{remote: remote, cache: cache}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Mode() Mode { return a.mode }

func (a *Adapter) goOffline(err error) {
	if a.mode == ModeLocal {
		return
	}
	a.mode = ModeLocal
	log.Printf("store: remote unavailable, switching to local cache: %v", err)
}

func (a *Adapter) ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if a.mode == ModeRemote {
		records, err := a.remote.ReadAll(ctx, collection)
		if err == nil {
			return records, nil
		}
		a.goOffline(err)
	}
	return a.cache.ReadAll(ctx, collection)
}

func (a *Adapter) Write(ctx context.Context, op Op, collection string, record any, id string) error {
	if a.mode == ModeRemote {
		err := a.remote.Write(ctx, op, collection, record, id)
		if err == nil {
			return nil
		}
		a.goOffline(err)
	}
	return a.cache.Apply(ctx, op, collection, record, id)
}
