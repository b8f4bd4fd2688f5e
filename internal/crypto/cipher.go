package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// Cipher describes an AES-CBC variant used for the cryptogram body.
// The IV is fixed to all zeros: the envelope key is derived from a
// fresh ephemeral key on every message, so the key never repeats for
// distinct messages and the wire format carries no IV field.
type Cipher struct {
	name    string
	keySize int
}

var (
	AES128CBC = Cipher{"aes-128-cbc", 16}
	AES192CBC = Cipher{"aes-192-cbc", 24}
	AES256CBC = Cipher{"aes-256-cbc", 32}
)

// CipherByName resolves a registered cipher.
func CipherByName(name string) (Cipher, error) {
	switch name {
	case AES128CBC.name:
		return AES128CBC, nil
	case AES192CBC.name:
		return AES192CBC, nil
	case AES256CBC.name:
		return AES256CBC, nil
	}
	return Cipher{}, fmt.Errorf("unknown cipher %q", name)
}

func (c Cipher) Name() string { return c.name }

func (c Cipher) KeySize() int { return c.keySize }

func (c Cipher) BlockSize() int { return aes.BlockSize }

// SealedSize is the ciphertext length for a plaintext of n bytes.
// PKCS#7 always pads, so a block-aligned plaintext gains a full block.
func (c Cipher) SealedSize(n int) int {
	return n + aes.BlockSize - n%aes.BlockSize
}

// Encrypt CBC-encrypts plaintext into dst with a zero IV and PKCS#7
// padding and returns the number of bytes written. dst must hold at
// least SealedSize(len(plaintext)) bytes.
func (c Cipher) Encrypt(key, dst, plaintext []byte) (int, error) {
	block, err := c.newBlock(key)
	if err != nil {
		return 0, err
	}
	n := c.SealedSize(len(plaintext))
	if n > len(dst) {
		return 0, fmt.Errorf("ciphertext needs %d bytes, destination holds %d", n, len(dst))
	}
	out := dst[:n]
	copy(out, plaintext)
	pad := byte(n - len(plaintext))
	for i := len(plaintext); i < n; i++ {
		out[i] = pad
	}
	cipher.NewCBCEncrypter(block, make([]byte, aes.BlockSize)).CryptBlocks(out, out)
	return n, nil
}

// Decrypt reverses Encrypt and strips the padding. The result may be
// up to a full block shorter than body.
func (c Cipher) Decrypt(key, body []byte) ([]byte, error) {
	block, err := c.newBlock(key)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a positive multiple of the block size", len(body))
	}
	out := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, make([]byte, aes.BlockSize)).CryptBlocks(out, body)

	pad := int(out[len(out)-1])
	if pad == 0 || pad > aes.BlockSize {
		return nil, errors.New("invalid padding")
	}
	for _, b := range out[len(out)-pad:] {
		if int(b) != pad {
			return nil, errors.New("invalid padding")
		}
	}
	return out[:len(out)-pad], nil
}

func (c Cipher) newBlock(key []byte) (cipher.Block, error) {
	if len(key) != c.keySize {
		return nil, fmt.Errorf("%s needs a %d-byte key, got %d", c.name, c.keySize, len(key))
	}
	return aes.NewCipher(key)
}
