package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSlotStoreContract exercises the behaviour every SlotStore must share.
func runSlotStoreContract(t *testing.T, store SlotStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Missing slot is nil", func(t *testing.T) {
		value, err := store.Get(ctx, "contract:missing")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("PutAll then Get", func(t *testing.T) {
		err := store.PutAll(ctx, map[string][]byte{
			"contract:a": []byte("first"),
			"contract:b": []byte(`{"json":true}`),
		})
		require.NoError(t, err)

		a, err := store.Get(ctx, "contract:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), a)

		b, err := store.Get(ctx, "contract:b")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"json":true}`), b)
	})

	t.Run("PutAll overwrites only given slots", func(t *testing.T) {
		require.NoError(t, store.PutAll(ctx, map[string][]byte{"contract:a": []byte("second")}))

		a, err := store.Get(ctx, "contract:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), a)

		b, err := store.Get(ctx, "contract:b")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"json":true}`), b)
	})
}

// failingStore wraps a SlotStore and fails on demand.
type failingStore struct {
	SlotStore
	putErr error
	getErr error
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.SlotStore.Get(ctx, key)
}

func (f *failingStore) PutAll(ctx context.Context, slots map[string][]byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.SlotStore.PutAll(ctx, slots)
}

var errDiskFull = errors.New("disk full")
