package models

// Session is either a driver session (CurrentUser set), an admin session
// (IsAdmin) or logged out. The two are mutually exclusive.
type Session struct {
	CurrentUser *Driver
	IsAdmin     bool
}

func (s Session) LoggedIn() bool {
	return s.IsAdmin || s.CurrentUser != nil
}

// AdminSession returns the admin session.
func AdminSession() Session {
	return Session{IsAdmin: true}
}

// DriverSession returns a session for d.
func DriverSession(d Driver) Session {
	return Session{CurrentUser: &d}
}
