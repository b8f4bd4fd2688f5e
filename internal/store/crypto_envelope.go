package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// The current supported version of the sealed blob format on disk.
	keystoreFormatVersion = 1

	saltBytes = 16
)

var (
	// Returned when the passphrase is incorrect or the blob has been
	// modified or corrupted.
	errWrongPassphrase = errors.New("wrong passphrase or corrupted identity")
)

// blob is the on-disk JSON structure holding the sealed identity and
// the argon2id parameters used to derive its key.
type blob struct {
	V       int    `json:"v"`
	Salt    []byte `json:"salt"`
	Time    uint32 `json:"argon2_time"`
	Memory  uint32 `json:"argon2_memory"`
	Threads uint8  `json:"argon2_threads"`
	Cipher  []byte `json:"cipher"`
}

// seal derives a key from passphrase with argon2id and seals raw into
// a JSON blob with ChaCha20-Poly1305.
func seal(passphrase string, raw []byte, time, memory uint32, threads uint8) ([]byte, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key := argon2.IDKey([]byte(passphrase), salt[:], time, memory, threads, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:       keystoreFormatVersion,
		Salt:    salt[:],
		Time:    time,
		Memory:  memory,
		Threads: threads,
		Cipher:  ct,
	})
}

// open unseals the JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	if bl.Time == 0 || bl.Threads == 0 {
		return nil, errWrongPassphrase
	}

	key := argon2.IDKey([]byte(passphrase), bl.Salt, bl.Time, bl.Memory, bl.Threads, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}

// Tunables for argon2id key derivation.
func argon2ParamsDefault() (time, memory uint32, threads uint8) { return 1, 1 << 16, 4 }
