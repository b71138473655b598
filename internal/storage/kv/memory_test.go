package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetDelete(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	v, err := m.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))
	require.NoError(t, m.Set(ctx, "k", []byte("v2")))

	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, m.Delete(ctx, "k"))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemory_SetManyListClear(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.SetMany(ctx, map[string][]byte{"a": {1}, "b": {2}}))

	all, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, m.Clear(ctx))
	all, err = m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemory_HonorsCancelledContext(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, m.Set(ctx, "k", []byte("v")), context.Canceled)
	_, err := m.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}
