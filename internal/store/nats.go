package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsStore is an ObjectStore backed by a NATS JetStream object store bucket
type NatsStore struct {
	bucket string
	store  nats.ObjectStore
}

// NewNatsStore creates the bucket, binding to it when it already exists
func NewNatsStore(js nats.JetStreamContext, bucket string) (*NatsStore, error) {
	store, err := js.CreateObjectStore(&nats.ObjectStoreConfig{
		Bucket:      bucket,
		Description: "generated podcast audio",
		Storage:     nats.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		if !errors.Is(err, jetstream.ErrBucketExists) {
			return nil, fmt.Errorf("failed to create object store bucket %q: %w", bucket, err)
		}
		store, err = js.ObjectStore(bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to bind to object store bucket %q: %w", bucket, err)
		}
	}

	return &NatsStore{bucket: bucket, store: store}, nil
}

// Upload saves one blob under key
func (n *NatsStore) Upload(_ context.Context, key string, data []byte) error {
	if _, err := n.store.Put(&nats.ObjectMeta{Name: key}, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to put object %q to bucket %q: %w", key, n.bucket, err)
	}
	return nil
}

// Download retrieves one blob by key
func (n *NatsStore) Download(_ context.Context, key string) ([]byte, error) {
	obj, err := n.store.Get(key)
	if err != nil {
		if errors.Is(err, nats.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object %q from bucket %q: %w", key, n.bucket, err)
	}

	data, readErr := io.ReadAll(obj)
	closeErr := obj.Close()
	if readErr != nil {
		return nil, fmt.Errorf("failed to read object %q: %w", key, readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close object %q: %w", key, closeErr)
	}
	return data, nil
}
