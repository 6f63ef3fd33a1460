package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateKeyPair returns a fresh key pair on P-256.
func GenerateKeyPair() (*ecdh.PrivateKey, error) {
	return ecdh.P256().GenerateKey(rand.Reader)
}

// ParsePublicKey decodes a hex-encoded uncompressed P-256 point.
func ParsePublicKey(hexPoint string) (*ecdh.PublicKey, error) {
	raw, err := hex.DecodeString(hexPoint)
	if err != nil {
		return nil, fmt.Errorf("decoding public key hex: %w", err)
	}
	pub, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing public key point: %w", err)
	}
	return pub, nil
}

// PublicKeyHex serializes pub as a hex-encoded uncompressed point.
func PublicKeyHex(pub *ecdh.PublicKey) string {
	return hex.EncodeToString(pub.Bytes())
}

// SharedSecret computes the raw ECDH shared secret between priv and pub.
func SharedSecret(priv *ecdh.PrivateKey, pub *ecdh.PublicKey) ([]byte, error) {
	return priv.ECDH(pub)
}
