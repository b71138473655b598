// Package cli provides the interactive drivercal command line.
//
// It wires configuration, local storage, the availability store and a REPL
// with three states: logged out, driver and admin. Drivers page through
// months, pick days and save them as available or not available; the admin
// sees per-day summaries and the driver list for any date.
//
// The cobra command tree (Execute) runs the REPL by default and offers
// one-shot report and calendar commands for scripting.
package cli
