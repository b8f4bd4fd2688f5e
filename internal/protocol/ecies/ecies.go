package ecies

import (
	"seal/internal/cryptogram"
)

// maxCipherBlock is the sanity bound on a configured block size.
const maxCipherBlock = 32

// Encrypt seals plaintext to the context's recipient and returns the
// cryptogram: ephemeral public key, ciphertext body and tag. On any
// failure the partial cryptogram and the envelope key are wiped and
// the first error propagates.
func Encrypt(ctx *Context, plaintext []byte) (*cryptogram.Cryptogram, error) {
	const op = "encrypt"

	if ctx == nil {
		return nil, errf(op, KindInvalidArgument, "nil context")
	}
	if len(plaintext) == 0 {
		return nil, errf(op, KindInvalidArgument, "empty plaintext")
	}
	if bs := ctx.cipher.BlockSize(); bs == 0 || bs > maxCipherBlock {
		return nil, errf(op, KindInvalidArgument, "cipher block size %d out of range", ctx.cipher.BlockSize())
	}
	if err := ctx.checkKDFMaterial(op); err != nil {
		return nil, err
	}

	cg, err := cryptogram.New(ctx.pointLen, ctx.mac.Size(), ctx.cipher.SealedSize(len(plaintext)))
	if err != nil {
		return nil, wrap(op, KindInvalidArgument, err)
	}

	envKey, err := deriveEnvelopeKey(ctx, cg.Key())
	if err != nil {
		cg.Wipe()
		return nil, err
	}
	defer envKey.wipe()

	if err := sealBody(ctx, envKey, plaintext, cg.Body()); err != nil {
		cg.Wipe()
		return nil, err
	}
	if err := sealTag(ctx, envKey, cg.Body(), cg.Mac()); err != nil {
		cg.Wipe()
		return nil, err
	}
	return cg, nil
}

// Decrypt authenticates the cryptogram and, only after the tag
// verifies, decrypts the body. The body of an unauthenticated
// cryptogram is never touched by the cipher. The envelope key is
// wiped whatever the outcome.
func Decrypt(ctx *Context, cg *cryptogram.Cryptogram) ([]byte, error) {
	const op = "decrypt"

	if ctx == nil || cg == nil {
		return nil, errf(op, KindInvalidArgument, "nil context or cryptogram")
	}
	if err := ctx.checkKDFMaterial(op); err != nil {
		return nil, err
	}

	envKey, err := restoreEnvelopeKey(ctx, cg.Key())
	if err != nil {
		return nil, err
	}
	defer envKey.wipe()

	if err := verifyTag(ctx, envKey, cg.Body(), cg.Mac()); err != nil {
		return nil, err
	}
	return openBody(ctx, envKey, cg.Body())
}
