package ecies

import (
	"bytes"
	"errors"
	"testing"

	"seal/internal/crypto"
	"seal/internal/cryptogram"
)

func fullContext(t *testing.T) *Context {
	t.Helper()
	priv, err := crypto.P256.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	ctx, err := NewContext(crypto.P256, priv.Public(), priv, crypto.AES256CBC, crypto.SHA256, crypto.SHA256)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func TestNewContext_DerivedSizes(t *testing.T) {
	ctx := fullContext(t)

	if ctx.kdfLen != 2*crypto.AES256CBC.KeySize() {
		t.Errorf("kdfLen = %d, want %d", ctx.kdfLen, 2*crypto.AES256CBC.KeySize())
	}
	if ctx.pointLen != 33 {
		t.Errorf("pointLen = %d, want 33", ctx.pointLen)
	}
	if !ctx.CanDecrypt() {
		t.Error("context with a private key reports CanDecrypt() = false")
	}
}

// A context whose KDF cannot fill both key regions is rejected at
// both entry points, before any key agreement runs.
func TestInsufficientKDFMaterial_RejectedAtBothEntryPoints(t *testing.T) {
	ctx := fullContext(t)
	ctx.kdfLen = 2*ctx.cipher.KeySize() - 1 // undersized by one byte

	_, err := Encrypt(ctx, []byte("hello"))
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInvalidArgument {
		t.Fatalf("Encrypt: got %v, want an invalid-argument rejection", err)
	}

	cg, err := cryptogram.New(33, 32, 16)
	if err != nil {
		t.Fatalf("cryptogram.New: %v", err)
	}
	_, err = Decrypt(ctx, cg)
	if !errors.As(err, &e) || e.Kind != KindInvalidArgument {
		t.Fatalf("Decrypt: got %v, want an invalid-argument rejection", err)
	}
}

// Both derivation paths must produce bit-identical envelope key
// material for matching ephemeral and recipient pairs.
func TestEnvelopeKey_PathSymmetry(t *testing.T) {
	ctx := fullContext(t)

	keyField := make([]byte, ctx.pointLen)
	sealed, err := deriveEnvelopeKey(ctx, keyField)
	if err != nil {
		t.Fatalf("deriveEnvelopeKey: %v", err)
	}
	restored, err := restoreEnvelopeKey(ctx, keyField)
	if err != nil {
		t.Fatalf("restoreEnvelopeKey: %v", err)
	}

	if !bytes.Equal(sealed.material, restored.material) {
		t.Fatal("encrypt-path and decrypt-path envelope keys differ")
	}
	if len(sealed.material) != ctx.kdfLen {
		t.Fatalf("envelope key is %d bytes, want %d", len(sealed.material), ctx.kdfLen)
	}
	if len(sealed.cipherKey()) != ctx.cipher.KeySize() {
		t.Fatalf("cipher key region is %d bytes, want %d", len(sealed.cipherKey()), ctx.cipher.KeySize())
	}
	if len(sealed.macKey()) != ctx.kdfLen-ctx.cipher.KeySize() {
		t.Fatalf("mac key region is %d bytes, want %d", len(sealed.macKey()), ctx.kdfLen-ctx.cipher.KeySize())
	}
}

func TestRestoreEnvelopeKey_InvalidPoint(t *testing.T) {
	ctx := fullContext(t)

	// All-zero octets are not a valid compressed point encoding.
	if _, err := restoreEnvelopeKey(ctx, make([]byte, ctx.pointLen)); err == nil {
		t.Fatal("expected error for an invalid point")
	}
}

// A body field smaller than the cipher output is an internal
// invariant violation, not a user error, and never overflows.
func TestSealBody_CapacityEnforced(t *testing.T) {
	ctx := fullContext(t)

	key := &envelopeKey{material: make([]byte, ctx.kdfLen), cipherKeyLen: ctx.cipher.KeySize()}
	short := make([]byte, ctx.cipher.BlockSize()-1)

	err := sealBody(ctx, key, []byte("hello"), short)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInternal {
		t.Fatalf("got %v, want an internal-invariant failure", err)
	}
}

func TestNewContext_Validation(t *testing.T) {
	priv, err := crypto.P256.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	if _, err := NewContext(crypto.P256, priv.Public(), nil, crypto.AES256CBC, crypto.SHA256, crypto.SHA256); err == nil {
		t.Fatal("expected error for missing private key")
	}
	if _, err := NewEncryptContext(nil, priv.Public(), crypto.AES256CBC, crypto.SHA256, crypto.SHA256); err == nil {
		t.Fatal("expected error for missing group")
	}
	if _, err := NewEncryptContext(crypto.P256, nil, crypto.AES256CBC, crypto.SHA256, crypto.SHA256); err == nil {
		t.Fatal("expected error for missing public key")
	}
	if _, err := NewEncryptContext(crypto.P256, priv.Public(), crypto.Cipher{}, crypto.SHA256, crypto.SHA256); err == nil {
		t.Fatal("expected error for unset cipher")
	}
	if _, err := NewEncryptContext(crypto.P256, priv.Public(), crypto.AES256CBC, crypto.Digest{}, crypto.SHA256); err == nil {
		t.Fatal("expected error for unset MAC digest")
	}
}
