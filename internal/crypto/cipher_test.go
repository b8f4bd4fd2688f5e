package crypto_test

import (
	"bytes"
	"testing"

	"seal/internal/crypto"
)

func TestCipher_RoundTrip(t *testing.T) {
	ciphers := []crypto.Cipher{crypto.AES128CBC, crypto.AES192CBC, crypto.AES256CBC}

	for _, c := range ciphers {
		key := bytes.Repeat([]byte{0x5a}, c.KeySize())
		for _, n := range []int{1, 15, 16, 17, 32, 100} {
			plaintext := bytes.Repeat([]byte{byte(n)}, n)
			dst := make([]byte, c.SealedSize(n))

			written, err := c.Encrypt(key, dst, plaintext)
			if err != nil {
				t.Fatalf("%s/%d: Encrypt: %v", c.Name(), n, err)
			}
			if written != len(dst) {
				t.Fatalf("%s/%d: wrote %d bytes, want %d", c.Name(), n, written, len(dst))
			}

			got, err := c.Decrypt(key, dst)
			if err != nil {
				t.Fatalf("%s/%d: Decrypt: %v", c.Name(), n, err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Fatalf("%s/%d: round trip mismatch", c.Name(), n)
			}
		}
	}
}

// PKCS#7 always pads, so the sealed size is strictly larger than the
// plaintext and block-aligned.
func TestCipher_SealedSize(t *testing.T) {
	c := crypto.AES256CBC
	for n := 0; n <= 64; n++ {
		s := c.SealedSize(n)
		if s <= n {
			t.Fatalf("SealedSize(%d) = %d, not larger than the plaintext", n, s)
		}
		if s%c.BlockSize() != 0 {
			t.Fatalf("SealedSize(%d) = %d, not block aligned", n, s)
		}
		if s-n > c.BlockSize() {
			t.Fatalf("SealedSize(%d) = %d, pads more than one block", n, s)
		}
	}
}

func TestCipher_Errors(t *testing.T) {
	c := crypto.AES256CBC
	key := make([]byte, c.KeySize())

	if _, err := c.Encrypt(key[:16], make([]byte, 16), []byte("x")); err == nil {
		t.Fatal("expected error for a wrong-size key")
	}
	if _, err := c.Encrypt(key, make([]byte, 15), []byte("x")); err == nil {
		t.Fatal("expected error for an undersized destination")
	}
	if _, err := c.Decrypt(key, make([]byte, 17)); err == nil {
		t.Fatal("expected error for a misaligned ciphertext")
	}
	if _, err := c.Decrypt(key, nil); err == nil {
		t.Fatal("expected error for an empty ciphertext")
	}

	// Flip a bit in the first ciphertext block of a two-block message:
	// CBC xors it into the final plaintext block, turning the 0x10 pad
	// byte into 0x11, which exceeds the block size.
	ct := make([]byte, c.SealedSize(16))
	if _, err := c.Encrypt(key, ct, make([]byte, 16)); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ct[15] ^= 0x01
	if _, err := c.Decrypt(key, ct); err == nil {
		t.Fatal("expected a padding error")
	}
}

func TestCipherByName(t *testing.T) {
	c, err := crypto.CipherByName("aes-192-cbc")
	if err != nil {
		t.Fatalf("CipherByName: %v", err)
	}
	if c.KeySize() != 24 {
		t.Fatalf("key size = %d, want 24", c.KeySize())
	}
	if _, err := crypto.CipherByName("des-cbc"); err == nil {
		t.Fatal("expected error for an unknown cipher")
	}
}

func TestDigestByName(t *testing.T) {
	for name, size := range map[string]int{
		"sha-256":  32,
		"sha-384":  48,
		"sha-512":  64,
		"sha3-256": 32,
	} {
		d, err := crypto.DigestByName(name)
		if err != nil {
			t.Fatalf("DigestByName(%q): %v", name, err)
		}
		if d.Size() != size {
			t.Fatalf("%s size = %d, want %d", name, d.Size(), size)
		}
		if got := d.New().Size(); got != size {
			t.Fatalf("%s hash state size = %d, want %d", name, got, size)
		}
	}
	if _, err := crypto.DigestByName("md5"); err == nil {
		t.Fatal("expected error for an unknown digest")
	}
}
