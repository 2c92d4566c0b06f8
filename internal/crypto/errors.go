package crypto

import "errors"

var (
	// ErrCiphertextTooShort is returned when a blob cannot even hold a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecryption is returned when the authentication tag does not verify.
	ErrDecryption = errors.New("decryption failed")
)
