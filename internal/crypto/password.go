package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"fmt"
)

const (
	// padBlockSize is the PKCS#7 block the vendor server unpads with. It is
	// 32 bytes (256 bits), not the AES block; the padded length is still a
	// multiple of the AES block, so CBC is unaffected.
	padBlockSize = 32

	// ivSize is the number of leading shared-secret bytes used as the IV.
	ivSize = 16
)

// EncryptPassword encrypts password for the login request.
//
// A fresh ephemeral P-256 key pair is generated on every call, so two
// encryptions of the same password yield different ciphertexts and different
// client public keys. It returns the base64 ciphertext and the hex-encoded
// uncompressed ephemeral public point, which the server needs to recompute
// the same shared secret.
func EncryptPassword(password, serverPublicKeyHex string) (ciphertextB64, clientPublicKeyHex string, err error) {
	serverPub, err := ParsePublicKey(serverPublicKeyHex)
	if err != nil {
		return "", "", fmt.Errorf("server public key: %w", err)
	}
	priv, err := GenerateKeyPair()
	if err != nil {
		return "", "", fmt.Errorf("generating ephemeral key: %w", err)
	}
	ct, err := encryptWithKey(priv, serverPub, []byte(password))
	if err != nil {
		return "", "", err
	}
	return B64(ct), PublicKeyHex(priv.PublicKey()), nil
}

// encryptWithKey runs the deterministic half of the handshake: ECDH shared
// secret, IV from its first 16 bytes, PKCS#7 pad, AES-256-CBC keyed by the
// full secret.
func encryptWithKey(priv *ecdh.PrivateKey, serverPub *ecdh.PublicKey, password []byte) ([]byte, error) {
	secret, err := SharedSecret(priv, serverPub)
	if err != nil {
		return nil, fmt.Errorf("deriving shared secret: %w", err)
	}
	defer Zero(secret)

	block, err := aes.NewCipher(secret)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(password, padBlockSize)
	defer Zero(padded)

	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, secret[:ivSize]).CryptBlocks(ct, padded)
	return ct, nil
}

// pkcs7Pad appends PKCS#7 padding up to a multiple of blockSize.
func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+pad)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}
