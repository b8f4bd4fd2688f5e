package ecies

// sealBody encrypts plaintext into the cryptogram body field with the
// cipher-key region of the envelope key. The body field was allocated
// at exactly the sealed size, so any capacity miss is a bug, not a
// user error.
func sealBody(ctx *Context, key *envelopeKey, plaintext, body []byte) error {
	const op = "encrypt"

	if need := ctx.cipher.SealedSize(len(plaintext)); need > len(body) {
		return errf(op, KindInternal,
			"cipher output of %d bytes exceeds the %d-byte body field", need, len(body))
	}
	n, err := ctx.cipher.Encrypt(key.cipherKey(), body, plaintext)
	if err != nil {
		return wrap(op, KindPrimitive, err)
	}
	if n != len(body) {
		return errf(op, KindInternal,
			"cipher wrote %d bytes into a %d-byte body field", n, len(body))
	}
	return nil
}

// openBody decrypts an authenticated body field and strips the
// padding. Only called after the tag has verified.
func openBody(ctx *Context, key *envelopeKey, body []byte) ([]byte, error) {
	plaintext, err := ctx.cipher.Decrypt(key.cipherKey(), body)
	if err != nil {
		return nil, wrap("decrypt", KindPrimitive, err)
	}
	return plaintext, nil
}
