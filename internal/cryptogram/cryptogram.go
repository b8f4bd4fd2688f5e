package cryptogram

import (
	"fmt"

	"seal/internal/util/memzero"
)

// Cryptogram is the serialized ECIES output: the compressed ephemeral
// public key, the ciphertext body and the authentication tag, held in
// one contiguous buffer in wire order. Field sizes are fixed at
// allocation and every accessor is bounds-checked by construction.
type Cryptogram struct {
	buf     []byte
	keyLen  int
	bodyLen int
	macLen  int
}

// New allocates a cryptogram with the given field sizes.
func New(keyLen, macLen, bodyLen int) (*Cryptogram, error) {
	if keyLen <= 0 || macLen <= 0 || bodyLen <= 0 {
		return nil, fmt.Errorf("cryptogram field sizes must be positive (key=%d mac=%d body=%d)", keyLen, macLen, bodyLen)
	}
	return &Cryptogram{
		buf:     make([]byte, keyLen+bodyLen+macLen),
		keyLen:  keyLen,
		bodyLen: bodyLen,
		macLen:  macLen,
	}, nil
}

// Parse reinterprets a received wire buffer. The body length is
// whatever remains after the key and mac fields; raw is copied so the
// caller may reuse its buffer.
func Parse(raw []byte, keyLen, macLen int) (*Cryptogram, error) {
	if keyLen <= 0 || macLen <= 0 {
		return nil, fmt.Errorf("cryptogram field sizes must be positive (key=%d mac=%d)", keyLen, macLen)
	}
	bodyLen := len(raw) - keyLen - macLen
	if bodyLen <= 0 {
		return nil, fmt.Errorf("cryptogram of %d bytes is too short for key=%d mac=%d and a body", len(raw), keyLen, macLen)
	}
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &Cryptogram{buf: buf, keyLen: keyLen, bodyLen: bodyLen, macLen: macLen}, nil
}

// Key is the ephemeral public key field.
func (c *Cryptogram) Key() []byte { return c.buf[:c.keyLen] }

// Body is the ciphertext field.
func (c *Cryptogram) Body() []byte { return c.buf[c.keyLen : c.keyLen+c.bodyLen] }

// Mac is the authentication tag field.
func (c *Cryptogram) Mac() []byte { return c.buf[c.keyLen+c.bodyLen:] }

func (c *Cryptogram) KeyLen() int { return c.keyLen }

func (c *Cryptogram) BodyLen() int { return c.bodyLen }

func (c *Cryptogram) MacLen() int { return c.macLen }

// Bytes returns the wire form, [key | body | mac]. The slice aliases
// the cryptogram's buffer.
func (c *Cryptogram) Bytes() []byte { return c.buf }

// Wipe zeroes the buffer before release.
func (c *Cryptogram) Wipe() { memzero.Zero(c.buf) }
