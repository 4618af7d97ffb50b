package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	items map[string][]byte
	err   error
}

func (m *memStorage) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStorage) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func TestStore(t *testing.T) {
	mem := &memStorage{}
	store := New(mem)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Zero(t, saved)

	want := Saved{Souls: 350, Marker: &SavedMarker{Souls: 50, X: 1.5, Z: -4}}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_Errors(t *testing.T) {
	boom := errors.New("disk full")

	_, err := New(&memStorage{err: boom}).Load()
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, New(&memStorage{err: boom}).Save(Saved{}), boom)

	_, err = New(&memStorage{items: map[string][]byte{soulsKey: []byte("{")}}).Load()
	assert.Error(t, err)
}
