package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain owns every cryptographic operation of the vault. It knows nothing
// about storage or the interface; it only produces and protects keys.
//
// Key hierarchy:
//
//	Salt, DEK = GenerateSalt() + GenerateDEK()      (first open)
//	KEK       = DeriveKEK(masterPassword, salt)    (every open)
//	WrappedDEK = WrapDEK(DEK, KEK)                 (stored next to the salt)
//	passwd    = Seal(plain, DEK) / Open(sealed, DEK)
type KeyChain interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it is
	// stored in the vault so the same passphrase derives the same KEK.
	GenerateSalt() ([]byte, error)

	// GenerateDEK returns a random 256-bit data-encryption key. It never
	// leaves memory unwrapped.
	GenerateDEK() ([]byte, error)

	// DeriveKEK derives the key-encryption key from the master password and
	// salt with Argon2id.
	DeriveKEK(masterPassword string, salt []byte) []byte

	// WrapDEK encrypts DEK with KEK. The result is nonce || ciphertext.
	WrapDEK(DEK, KEK []byte) ([]byte, error)

	// UnwrapDEK reverses [KeyChain.WrapDEK]. A wrong KEK, which almost
	// always means a wrong master password, yields [ErrDecryption].
	UnwrapDEK(wrappedDEK, KEK []byte) ([]byte, error)

	// Seal encrypts a secret field with DEK and returns it base64-encoded.
	Seal(plaintext string, DEK []byte) (string, error)

	// Open decrypts a value produced by [KeyChain.Seal].
	Open(sealed string, DEK []byte) (string, error)
}
