// Package crypto protects session tokens persisted on the local disk.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts short secrets (access and refresh tokens) before they are
// written to the session database and decrypts them on the way back.
//
// Sealed values are self-describing: Open passes values that were stored
// before sealing was enabled through unchanged.
type Sealer interface {
	// Seal encrypts plaintext. An empty plaintext stays empty.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails with [ErrKeyRequired] when the value is
	// sealed but the sealer has no key, and with [ErrOpen] when the key is
	// wrong or the value was tampered with.
	Open(sealed string) (string, error)
}
