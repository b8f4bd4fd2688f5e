package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Digest identifies a hash function selectable for the KDF or the MAC.
type Digest struct {
	name    string
	size    int
	factory func() hash.Hash
}

var (
	SHA256  = Digest{"sha-256", sha256.Size, sha256.New}
	SHA384  = Digest{"sha-384", sha512.Size384, sha512.New384}
	SHA512  = Digest{"sha-512", sha512.Size, sha512.New}
	SHA3256 = Digest{"sha3-256", 32, sha3.New256}
)

// DigestByName resolves a registered digest.
func DigestByName(name string) (Digest, error) {
	switch name {
	case SHA256.name:
		return SHA256, nil
	case SHA384.name:
		return SHA384, nil
	case SHA512.name:
		return SHA512, nil
	case SHA3256.name:
		return SHA3256, nil
	}
	return Digest{}, fmt.Errorf("unknown digest %q", name)
}

func (d Digest) Name() string { return d.name }

// Size is the digest output length in bytes.
func (d Digest) Size() int { return d.size }

// New returns a fresh hash state.
func (d Digest) New() hash.Hash { return d.factory() }

// Valid reports whether d names a registered digest.
func (d Digest) Valid() bool { return d.factory != nil }
