package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The Mongo client is process-wide: established lazily on first use, shared by
// every request and torn down explicitly at shutdown. Initialization is
// single-flight — concurrent callers block on the mutex and reuse the client
// dialed by whichever one got there first.
var (
	mu     sync.Mutex
	client *mongo.Client
)

// Connect returns the shared client, dialing it on first call. Subsequent
// calls return the existing client without touching the network.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		return client, nil
	}
	c, err := dial(ctx, uri, timeout)
	if err != nil {
		return nil, err
	}
	client = c
	return client, nil
}

// Client returns the shared client, or nil when Connect has not succeeded yet.
func Client() *mongo.Client {
	mu.Lock()
	defer mu.Unlock()
	return client
}

// Disconnect closes the shared client. Part of shutdown; safe to call when
// nothing was ever connected.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	return err
}

func dial(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return c, nil
}
