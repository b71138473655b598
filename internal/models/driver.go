package models

// Driver is a registered driver. Phone is unique across the roster and is
// the login key. Records are immutable once registered.
type Driver struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PasswordHash []byte `json:"password_hash"`
	Salt         []byte `json:"salt"`
}

// Public returns a copy without credential material.
func (d Driver) Public() Driver {
	return Driver{ID: d.ID, Name: d.Name, Phone: d.Phone}
}
