package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"

	"github.com/mr-tron/base58"
)

const (
	// SeedLen is the required length of a signing seed in bytes
	SeedLen = 32

	// AddressPrefix marks every Octra address
	AddressPrefix = "oct"

	addressEncodingWidth = 44 // minimum width of the base58 part before truncation
	addressMaxLen        = 48 // prefix + encoding, truncated
)

// addressPattern is advisory: a derived address that fails it is logged as a
// warning by the caller but still accepted.
var addressPattern = regexp.MustCompile(`^oct[1-9A-HJ-NP-Za-km-z]{40,48}$`)

// InvalidKeyLengthError is returned when a signing seed is not exactly 32 bytes
type InvalidKeyLengthError struct {
	Len int
}

func (e *InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("invalid private key length: %d bytes, expected %d", e.Len, SeedLen)
}

// IsInvalidKeyLengthError checks if error is InvalidKeyLengthError
func IsInvalidKeyLengthError(err error) bool {
	_, ok := err.(*InvalidKeyLengthError)
	return ok
}

// Identity is a wallet's cryptographic identity: the 32-byte seed, the
// ed25519 keypair derived from it and the derived address. Immutable once
// derived.
type Identity struct {
	Seed       []byte
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
	Address    string
}

// NewIdentity generates a fresh random identity
func NewIdentity() (*Identity, error) {
	seed := make([]byte, SeedLen)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	return IdentityFromSeed(seed)
}

// IdentityFromSeed derives an identity from a 32-byte seed. Derivation is
// deterministic: the same seed always yields the same keypair and address.
func IdentityFromSeed(seed []byte) (*Identity, error) {
	if len(seed) != SeedLen {
		return nil, &InvalidKeyLengthError{Len: len(seed)}
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	return &Identity{
		Seed:       append([]byte(nil), seed...),
		PrivateKey: priv,
		PublicKey:  pub,
		Address:    DeriveAddress(pub),
	}, nil
}

// IdentityFromBase64 derives an identity from a base64-encoded 32-byte seed
func IdentityFromBase64(encoded string) (*Identity, error) {
	seed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 private key: %w", err)
	}
	return IdentityFromSeed(seed)
}

// DeriveAddress computes the address for a public key: sha256 digest of the
// key, base58-encoded (alphabet without 0, O, I, l), left-padded with "1" to
// 44 characters, prefixed with "oct" and truncated to 48 characters total.
func DeriveAddress(pub ed25519.PublicKey) string {
	digest := sha256.Sum256(pub)
	enc := base58.Encode(digest[:])
	for len(enc) < addressEncodingWidth {
		enc = "1" + enc
	}
	addr := AddressPrefix + enc
	if len(addr) > addressMaxLen {
		addr = addr[:addressMaxLen]
	}
	return addr
}

// Sign signs message with the identity's private key
func (id *Identity) Sign(message []byte) []byte {
	return ed25519.Sign(id.PrivateKey, message)
}

// SeedBase64 returns the seed encoded as base64
func (id *Identity) SeedBase64() string {
	return base64.StdEncoding.EncodeToString(id.Seed)
}

// PublicKeyBase64 returns the public key encoded as base64
func (id *Identity) PublicKeyBase64() string {
	return base64.StdEncoding.EncodeToString(id.PublicKey)
}

// ValidAddress reports whether addr matches the expected address pattern
func ValidAddress(addr string) bool {
	return addressPattern.MatchString(addr)
}
