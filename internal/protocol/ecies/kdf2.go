package ecies

import (
	"encoding/binary"
	"errors"

	"seal/internal/crypto"
	"seal/internal/util/memzero"
)

// kdfMaxLen bounds the secret, shared info and output sizes, keeping
// the 32-bit block counter far from overflow.
const kdfMaxLen = 1 << 30

// KDF2 implements the X9.63 / ISO 18033-2 KDF2 counter-mode key
// derivation: block i is digest(secret || counter || sharedInfo) with
// a 32-bit big-endian counter starting at 1, and the final block is
// truncated to fill outLen exactly. Identical inputs always produce
// identical output. sharedInfo may be empty.
func KDF2(digest crypto.Digest, secret, sharedInfo []byte, outLen int) ([]byte, error) {
	if !digest.Valid() {
		return nil, errors.New("kdf2: digest not configured")
	}
	if len(secret) == 0 {
		return nil, errors.New("kdf2: empty secret")
	}
	if outLen <= 0 {
		return nil, errors.New("kdf2: output length must be positive")
	}
	if len(secret) > kdfMaxLen || len(sharedInfo) > kdfMaxLen || outLen > kdfMaxLen {
		return nil, errors.New("kdf2: input exceeds size bound")
	}

	h := digest.New()
	out := make([]byte, 0, outLen)
	var counter [4]byte
	for i := uint32(1); len(out) < outLen; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		h.Reset()
		h.Write(secret)
		h.Write(counter[:])
		h.Write(sharedInfo)
		block := h.Sum(nil)

		remain := outLen - len(out)
		if remain < len(block) {
			out = append(out, block[:remain]...)
		} else {
			out = append(out, block...)
		}
		memzero.Zero(block)
	}
	return out, nil
}
