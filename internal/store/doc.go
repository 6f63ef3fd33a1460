// Package store persists the restorable login blob on disk, sealed under a
// passphrase-derived key.
package store
