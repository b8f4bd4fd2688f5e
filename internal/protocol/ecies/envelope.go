package ecies

import (
	"seal/internal/util/memzero"
)

// envelopeKey is the per-message key material produced by KDF2. The
// first cipherKeyLen bytes key the cipher; the remainder keys the MAC.
// It never crosses a call boundary and is wiped on every exit path.
type envelopeKey struct {
	material     []byte
	cipherKeyLen int
}

func (k *envelopeKey) cipherKey() []byte { return k.material[:k.cipherKeyLen] }

func (k *envelopeKey) macKey() []byte { return k.material[k.cipherKeyLen:] }

func (k *envelopeKey) wipe() { memzero.Zero(k.material) }

// deriveEnvelopeKey runs the encrypt-path derivation: generate an
// ephemeral pair on the recipient's group, agree with the recipient's
// public key, stretch the secret with KDF2 and record the compressed
// ephemeral public key in keyField. The ephemeral scalar and the
// shared secret are destroyed before returning.
func deriveEnvelopeKey(ctx *Context, keyField []byte) (*envelopeKey, error) {
	const op = "encrypt"

	eph, err := ctx.group.GenerateKeyPair()
	if err != nil {
		return nil, wrap(op, KindPrimitive, err)
	}
	defer eph.Wipe()

	secret, err := eph.SharedSecret(ctx.pub)
	if err != nil {
		return nil, wrap(op, KindPrimitive, err)
	}
	defer memzero.Zero(secret)

	material, err := KDF2(ctx.kdf, secret, nil, ctx.kdfLen)
	if err != nil {
		return nil, wrap(op, KindPrimitive, err)
	}

	octets := eph.Public().Octets()
	if len(octets) != len(keyField) {
		memzero.Zero(material)
		return nil, errf(op, KindInternal,
			"serialized ephemeral key is %d octets, key field holds %d", len(octets), len(keyField))
	}
	copy(keyField, octets)

	return &envelopeKey{material: material, cipherKeyLen: ctx.cipher.KeySize()}, nil
}

// restoreEnvelopeKey runs the decrypt-path derivation: reconstruct and
// validate the ephemeral public key from keyField, agree with the
// recipient's private key and stretch identically to the encrypt
// path. Both paths yield bit-identical material for matching pairs.
func restoreEnvelopeKey(ctx *Context, keyField []byte) (*envelopeKey, error) {
	const op = "decrypt"

	if ctx.priv == nil {
		return nil, errf(op, KindInvalidArgument, "context holds no private key")
	}

	eph, err := ctx.group.ParsePoint(keyField)
	if err != nil {
		return nil, wrap(op, KindPrimitive, err)
	}

	secret, err := ctx.priv.SharedSecret(eph)
	if err != nil {
		return nil, wrap(op, KindPrimitive, err)
	}
	defer memzero.Zero(secret)

	material, err := KDF2(ctx.kdf, secret, nil, ctx.kdfLen)
	if err != nil {
		return nil, wrap(op, KindPrimitive, err)
	}

	return &envelopeKey{material: material, cipherKeyLen: ctx.cipher.KeySize()}, nil
}
