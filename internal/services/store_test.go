package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/drivercal/internal/common"
	"github.com/dmitrijs2005/drivercal/internal/models"
	"github.com/dmitrijs2005/drivercal/internal/storage"
	"github.com/dmitrijs2005/drivercal/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV wraps a MemoryStore and fails writes while failWrites is set.
type failingKV struct {
	*kv.MemoryStore
	mu         sync.Mutex
	failWrites bool
	failReads  bool
}

var errDiskFull = errors.New("disk full")

func newFailingKV() *failingKV {
	return &failingKV{MemoryStore: kv.NewMemoryStore()}
}

func (f *failingKV) setFail(writes, reads bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites, f.failReads = writes, reads
}

func (f *failingKV) writesFail() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failWrites
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failReads
	f.mu.Unlock()
	if fail {
		return nil, errDiskFull
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.writesFail() {
		return errDiskFull
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *failingKV) SetMany(ctx context.Context, values map[string][]byte) error {
	if f.writesFail() {
		return errDiskFull
	}
	return f.MemoryStore.SetMany(ctx, values)
}

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("drv-%d", n), nil
	}
}

func newTestStore(t *testing.T, kvs kv.Store) *Store {
	t.Helper()
	s := NewStore(kvs, Options{
		Admin: AdminCredentials{Login: "admin", Password: "admin123"},
		NewID: sequentialIDs(),
	})
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestStore_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, kv.NewMemoryStore())

	d, err := s.RegisterDriver(ctx, "Alice", "555-0100", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "drv-1", d.ID)
	assert.Nil(t, d.PasswordHash)

	sess, err := s.Login(ctx, "555-0100", []byte("pw"), false)
	require.NoError(t, err)
	require.NotNil(t, sess.CurrentUser)
	assert.Equal(t, "Alice", sess.CurrentUser.Name)
	assert.False(t, sess.IsAdmin)

	require.NoError(t, s.SetAvailability(ctx, d.ID, "2024-03-01", true))

	rows := s.GetAllAvailability("2024-03-01")
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Driver.Name)
	assert.Equal(t, models.Available, rows[0].Availability)
}

func TestStore_NewStoreDefaults(t *testing.T) {
	s := NewStore(kv.NewMemoryStore(), Options{})
	assert.Equal(t, defaultPersistTimeout, s.timeout)
	assert.NotNil(t, s.log)

	id, err := s.newID()
	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := newTestStore(t, kv.NewMemoryStore())
	assert.Empty(t, s.Drivers())
	assert.False(t, s.Session().LoggedIn())
	assert.Equal(t, models.Unset, s.GetAvailability("x", "2024-03-01"))
}

func TestStore_LoadReadFailure(t *testing.T) {
	f := newFailingKV()
	f.setFail(false, true)

	s := NewStore(f, Options{})
	err := s.Load(context.Background())
	require.ErrorIs(t, err, common.ErrPersistence)
	require.ErrorIs(t, err, errDiskFull)
}

func TestStore_LoadCorruptRoster(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemoryStore()
	require.NoError(t, m.Set(ctx, KeyDrivers, []byte("{not json")))

	s := NewStore(m, Options{})
	require.ErrorIs(t, s.Load(ctx), common.ErrPersistence)
}

func TestStore_LoadCorruptSessionIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemoryStore()
	require.NoError(t, m.Set(ctx, KeyCurrentUser, []byte("garbage")))

	s := newTestStore(t, m)
	assert.False(t, s.Session().LoggedIn())
}

func TestStore_LoadPrefersAdminSession(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemoryStore()
	require.NoError(t, m.SetMany(ctx, map[string][]byte{
		KeyIsAdmin:     []byte("true"),
		KeyCurrentUser: []byte(`{"id":"drv-1","name":"Alice","phone":"555-0100"}`),
	}))

	s := newTestStore(t, m)
	sess := s.Session()
	assert.True(t, sess.IsAdmin)
	assert.Nil(t, sess.CurrentUser)
}

func TestStore_ReloadFromSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "drivercal.db")

	db, err := storage.InitDatabase(ctx, path)
	require.NoError(t, err)

	s := newTestStore(t, kv.NewSQLiteStore(db))
	d, err := s.RegisterDriver(ctx, "Bob", "555-0200", []byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.SetAvailabilityBatch(ctx, d.ID, []string{"2024-03-01", "2024-03-02"}, false))
	_, err = s.Login(ctx, "555-0200", []byte("secret"), false)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = storage.InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reloaded := newTestStore(t, kv.NewSQLiteStore(db))
	require.Len(t, reloaded.Drivers(), 1)
	assert.Equal(t, "Bob", reloaded.Drivers()[0].Name)
	assert.Equal(t, models.Unavailable, reloaded.GetAvailability(d.ID, "2024-03-02"))
	assert.Equal(t, models.Unset, reloaded.GetAvailability(d.ID, "2024-03-03"))

	sess := reloaded.Session()
	require.NotNil(t, sess.CurrentUser)
	assert.Equal(t, d.ID, sess.CurrentUser.ID)

	// credentials survive the round trip
	_, err = reloaded.Login(ctx, "555-0200", []byte("secret"), false)
	require.NoError(t, err)
}

func TestStore_DriversAndSessionAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, kv.NewMemoryStore())
	_, err := s.RegisterDriver(ctx, "Alice", "555-0100", []byte("pw"))
	require.NoError(t, err)
	_, err = s.Login(ctx, "555-0100", []byte("pw"), false)
	require.NoError(t, err)

	drivers := s.Drivers()
	drivers[0].Name = "Mallory"
	assert.Equal(t, "Alice", s.Drivers()[0].Name)

	sess := s.Session()
	sess.CurrentUser.Name = "Mallory"
	assert.Equal(t, "Alice", s.Session().CurrentUser.Name)
}
