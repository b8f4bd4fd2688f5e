package ecies

import (
	"crypto/hmac"

	"seal/internal/util/memzero"
)

// sealTag computes the encrypt-then-MAC tag: HMAC over the already
// encrypted body, keyed with the mac-key region of the envelope key.
func sealTag(ctx *Context, key *envelopeKey, body, tag []byte) error {
	m := hmac.New(ctx.mac.New, key.macKey())
	m.Write(body)
	sum := m.Sum(nil)
	defer memzero.Zero(sum)

	if len(sum) != len(tag) {
		return errf("encrypt", KindInternal,
			"computed tag is %d bytes, mac field holds %d", len(sum), len(tag))
	}
	copy(tag, sum)
	return nil
}

// verifyTag recomputes the tag and compares it to the stored one with
// a fixed-time, exact-length comparison. A mismatch reveals nothing
// about how much of the tag matched.
func verifyTag(ctx *Context, key *envelopeKey, body, tag []byte) error {
	m := hmac.New(ctx.mac.New, key.macKey())
	m.Write(body)
	sum := m.Sum(nil)
	defer memzero.Zero(sum)

	if len(sum) != len(tag) {
		return errf("decrypt", KindInternal,
			"computed tag is %d bytes, mac field holds %d", len(sum), len(tag))
	}
	if !hmac.Equal(sum, tag) {
		return wrap("decrypt", KindAuthentication, ErrAuthentication)
	}
	return nil
}
