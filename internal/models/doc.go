// Package models defines the drivercal domain records: drivers, availability
// entries and the login session.
package models
