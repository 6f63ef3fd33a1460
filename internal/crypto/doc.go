// Package crypto implements the login key exchange: an ephemeral P-256 key
// pair, ECDH against the server's published public key, and AES-CBC
// encryption of the account password under the shared secret.
package crypto
