package services

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/dmitrijs2005/drivercal/internal/common"
	"github.com/dmitrijs2005/drivercal/internal/cryptox"
	"github.com/dmitrijs2005/drivercal/internal/models"
)

// Login authenticates as the admin or as a driver identified by phone.
// Any mismatch yields common.ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, identifier string, password []byte, asAdmin bool) (models.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || len(bytes.TrimSpace(password)) == 0 {
		return models.Session{}, common.ErrMissingCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var next models.Session
	if asAdmin {
		loginOK := cryptox.EqualStrings(identifier, s.admin.Login)
		passwordOK := cryptox.EqualStrings(string(password), s.admin.Password)
		if !loginOK || !passwordOK {
			s.log.Info(ctx, "admin login rejected")
			return models.Session{}, common.ErrInvalidCredentials
		}
		next = models.AdminSession()
	} else {
		d, ok := s.findDriver(identifier, password)
		if !ok {
			s.log.Info(ctx, "driver login rejected")
			return models.Session{}, common.ErrInvalidCredentials
		}
		next = models.DriverSession(d.Public())
	}

	s.session = next
	s.saveSession(ctx, next)
	s.log.Info(ctx, "logged in", "admin", next.IsAdmin)
	return next, nil
}

// findDriver returns the first driver whose phone matches and whose
// password verifies.
func (s *Store) findDriver(phone string, password []byte) (models.Driver, bool) {
	for _, d := range s.drivers {
		if d.Phone == phone && cryptox.VerifyPassword(password, d.Salt, d.PasswordHash) {
			return d, true
		}
	}
	return models.Driver{}, false
}

// Logout clears the session. It always succeeds.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{}
	s.saveSession(ctx, s.session)
	s.log.Info(ctx, "logged out")
	return nil
}

// saveSession writes both session keys in one batch. Failures are logged
// only; the in-memory session stays authoritative for this process.
func (s *Store) saveSession(ctx context.Context, sess models.Session) {
	user, err := json.Marshal(sess.CurrentUser)
	if err != nil {
		s.log.Error(ctx, "failed to encode session", "err", err)
		return
	}
	isAdmin, _ := json.Marshal(sess.IsAdmin)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err = s.kv.SetMany(ctx, map[string][]byte{
		KeyCurrentUser: user,
		KeyIsAdmin:     isAdmin,
	})
	if err != nil {
		s.log.Error(ctx, "failed to persist session", "err", err)
	}
}

// RegisterDriver adds a driver to the roster. The phone must not be taken.
func (s *Store) RegisterDriver(ctx context.Context, name, phone string, password []byte) (models.Driver, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" || len(bytes.TrimSpace(password)) == 0 {
		return models.Driver{}, common.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.drivers, func(d models.Driver) bool { return d.Phone == phone }) {
		return models.Driver{}, common.ErrDuplicatePhone
	}

	id, err := s.newID()
	if err != nil {
		return models.Driver{}, err
	}

	salt := cryptox.NewSalt()
	d := models.Driver{
		ID:           id,
		Name:         name,
		Phone:        phone,
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         salt,
	}

	next := append(slices.Clone(s.drivers), d)
	if err := s.persist(ctx, KeyDrivers, next); err != nil {
		return models.Driver{}, err
	}
	s.drivers = next

	s.log.Info(ctx, "driver registered", "driver_id", id)
	return d.Public(), nil
}
