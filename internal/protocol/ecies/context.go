package ecies

import (
	"errors"

	"seal/internal/crypto"
)

// Context bundles everything one recipient relationship needs: the
// group, the recipient keys, the cipher and the two digests, plus the
// sizes derived from those choices. A Context is immutable after
// construction and safe to share across concurrent calls; each call
// allocates its own cipher, MAC and agreement state.
//
// The recipient keys are borrowed: the caller keeps lifetime
// responsibility for the private scalar.
type Context struct {
	group  crypto.Group
	pub    crypto.PublicKey
	priv   crypto.PrivateKey // nil for encrypt-only contexts
	cipher crypto.Cipher
	mac    crypto.Digest
	kdf    crypto.Digest

	// kdfLen is the envelope key material length produced by KDF2,
	// derived as twice the cipher key size so the material splits into
	// a cipher-key region and a mac-key region without overlap.
	kdfLen int
	// pointLen is the compressed-point octet length on the group.
	pointLen int
}

// NewContext builds a context able to both encrypt and decrypt.
func NewContext(group crypto.Group, pub crypto.PublicKey, priv crypto.PrivateKey, cipher crypto.Cipher, mac, kdf crypto.Digest) (*Context, error) {
	if priv == nil {
		return nil, errors.New("ecies: recipient private key required; use NewEncryptContext for encrypt-only use")
	}
	return newContext(group, pub, priv, cipher, mac, kdf)
}

// NewEncryptContext builds a context from the recipient's public key
// alone. Decrypt calls on it fail.
func NewEncryptContext(group crypto.Group, pub crypto.PublicKey, cipher crypto.Cipher, mac, kdf crypto.Digest) (*Context, error) {
	return newContext(group, pub, nil, cipher, mac, kdf)
}

func newContext(group crypto.Group, pub crypto.PublicKey, priv crypto.PrivateKey, cipher crypto.Cipher, mac, kdf crypto.Digest) (*Context, error) {
	if group == nil || pub == nil {
		return nil, errors.New("ecies: recipient group and public key required")
	}
	if cipher.KeySize() == 0 {
		return nil, errors.New("ecies: cipher not configured")
	}
	if !mac.Valid() || !kdf.Valid() {
		return nil, errors.New("ecies: MAC and KDF digests required")
	}
	return &Context{
		group:    group,
		pub:      pub,
		priv:     priv,
		cipher:   cipher,
		mac:      mac,
		kdf:      kdf,
		kdfLen:   2 * cipher.KeySize(),
		pointLen: group.PointOctets(),
	}, nil
}

// Group returns the recipient's group.
func (c *Context) Group() crypto.Group { return c.group }

// Cipher returns the configured symmetric cipher.
func (c *Context) Cipher() crypto.Cipher { return c.cipher }

// MACSize returns the authentication tag length.
func (c *Context) MACSize() int { return c.mac.Size() }

// KeyOctets returns the ephemeral key field length.
func (c *Context) KeyOctets() int { return c.pointLen }

// CanDecrypt reports whether the context holds the private key.
func (c *Context) CanDecrypt() bool { return c.priv != nil }

// checkKDFMaterial enforces that the KDF produces enough material for
// non-overlapping cipher and MAC key regions. Both entry points call
// it before any key agreement.
func (c *Context) checkKDFMaterial(op string) error {
	if c.cipher.KeySize()*2 > c.kdfLen {
		return errf(op, KindInvalidArgument,
			"key derivation yields %d bytes, need %d for the cipher and MAC keys", c.kdfLen, 2*c.cipher.KeySize())
	}
	return nil
}
