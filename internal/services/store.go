// Package services holds the availability store: the driver roster, the
// availability entry log and the login session, written through to a
// kv.Store on every mutation.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/drivercal/internal/common"
	"github.com/dmitrijs2005/drivercal/internal/logging"
	"github.com/dmitrijs2005/drivercal/internal/models"
	"github.com/dmitrijs2005/drivercal/internal/storage/kv"
	"github.com/google/uuid"
)

// Storage keys.
const (
	KeyDrivers      = "drivers_list"
	KeyAvailability = "drivers_availability"
	KeyCurrentUser  = "current_user"
	KeyIsAdmin      = "is_admin"
)

const defaultPersistTimeout = 3 * time.Second

// AdminCredentials is the single admin identity.
type AdminCredentials struct {
	Login    string
	Password string
}

// Options configures a Store. Zero values get defaults.
type Options struct {
	Admin          AdminCredentials
	PersistTimeout time.Duration
	Logger         logging.Logger
	// NewID generates driver ids; defaults to UUIDv7.
	NewID func() (string, error)
}

// AvailabilityService is the surface the CLI works against.
type AvailabilityService interface {
	Session() models.Session
	Login(ctx context.Context, identifier string, password []byte, asAdmin bool) (models.Session, error)
	Logout(ctx context.Context) error
	RegisterDriver(ctx context.Context, name, phone string, password []byte) (models.Driver, error)
	SetAvailability(ctx context.Context, driverID, date string, available bool) error
	SetAvailabilityBatch(ctx context.Context, driverID string, dates []string, available bool) error
	GetAvailability(driverID, date string) models.Availability
	Lookup(driverID string) func(date string) models.Availability
	GetAllAvailability(date string) []models.DriverAvailability
	DayReport(date string) Report
	Drivers() []models.Driver
}

var _ AvailabilityService = (*Store)(nil)

// Store owns the roster, the entry log and the session for the process
// lifetime. Mutations are serialized by mu and persisted before the
// in-memory state changes.
type Store struct {
	mu      sync.RWMutex
	kv      kv.Store
	log     logging.Logger
	admin   AdminCredentials
	timeout time.Duration
	newID   func() (string, error)

	drivers []models.Driver
	entries []models.AvailabilityEntry
	session models.Session
}

// NewStore returns an empty store over kvs. Call Load before use.
func NewStore(kvs kv.Store, opts Options) *Store {
	s := &Store{
		kv:      kvs,
		log:     opts.Logger,
		admin:   opts.Admin,
		timeout: opts.PersistTimeout,
		newID:   opts.NewID,
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	s.log = s.log.With("component", "availability-store")
	if s.timeout <= 0 {
		s.timeout = defaultPersistTimeout
	}
	if s.newID == nil {
		s.newID = newUUID
	}
	return s
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load reads the roster, the entry log and the session once.
//
// A missing key means an empty collection. A read failure or an unreadable
// roster/log is returned wrapped in common.ErrPersistence; an unreadable
// session is logged and treated as logged out.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var drivers []models.Driver
	if err := s.read(ctx, KeyDrivers, &drivers); err != nil {
		return err
	}
	var entries []models.AvailabilityEntry
	if err := s.read(ctx, KeyAvailability, &entries); err != nil {
		return err
	}

	s.drivers = drivers
	s.entries = entries
	s.session = s.readSession(ctx)

	s.log.Debug(ctx, "state loaded", "drivers", len(drivers), "entries", len(entries), "admin", s.session.IsAdmin)
	return nil
}

func (s *Store) readSession(ctx context.Context) models.Session {
	var isAdmin bool
	if err := s.read(ctx, KeyIsAdmin, &isAdmin); err != nil {
		s.log.Warn(ctx, "ignoring stored admin flag", "err", err)
		isAdmin = false
	}
	if isAdmin {
		return models.AdminSession()
	}

	var user *models.Driver
	if err := s.read(ctx, KeyCurrentUser, &user); err != nil {
		s.log.Warn(ctx, "ignoring stored session user", "err", err)
		return models.Session{}
	}
	if user == nil {
		return models.Session{}
	}
	return models.DriverSession(*user)
}

// read decodes key into v. A missing key leaves v untouched.
func (s *Store) read(ctx context.Context, key string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to load", "key", key, "err", err)
		return fmt.Errorf("%w: load %s: %w", common.ErrPersistence, key, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Error(ctx, "failed to decode", "key", key, "err", err)
		return fmt.Errorf("%w: decode %s: %w", common.ErrPersistence, key, err)
	}
	return nil
}

// persist encodes v under key. Callers update memory only on success.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrPersistence, key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Error(ctx, "failed to persist", "key", key, "err", err)
		return fmt.Errorf("%w: save %s: %w", common.ErrPersistence, key, err)
	}
	return nil
}

// Session returns a copy of the current session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := models.Session{IsAdmin: s.session.IsAdmin}
	if s.session.CurrentUser != nil {
		u := s.session.CurrentUser.Public()
		out.CurrentUser = &u
	}
	return out
}

// Drivers returns the roster in registration order, without credentials.
func (s *Store) Drivers() []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Driver, len(s.drivers))
	for i, d := range s.drivers {
		out[i] = d.Public()
	}
	return out
}

func cloneEntries(in []models.AvailabilityEntry) []models.AvailabilityEntry {
	return slices.Clone(in)
}
