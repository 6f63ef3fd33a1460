// Package app wires the store, logger, and account-client factories for the
// CLI.
package app
