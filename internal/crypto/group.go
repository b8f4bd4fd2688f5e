package crypto

import "fmt"

// Group abstracts one elliptic-curve group: ephemeral key generation,
// the compressed-point codec and Diffie-Hellman key agreement. A Group
// value is stateless and safe for concurrent use.
type Group interface {
	// Name is the registry name, e.g. "P-256" or "secp256k1".
	Name() string
	// PointOctets is the length of a compressed group element encoding.
	PointOctets() int
	// SecretOctets is the length of a key-agreement output, which is
	// the x coordinate left-padded to the field size.
	SecretOctets() int
	// GenerateKeyPair returns a fresh key pair on the group.
	GenerateKeyPair() (PrivateKey, error)
	// ParsePoint decodes a compressed group element and validates that
	// it is a legitimate point on the group.
	ParsePoint(octets []byte) (PublicKey, error)
	// ParseScalar reconstructs a private key from its serialized form.
	ParseScalar(b []byte) (PrivateKey, error)
}

// PublicKey is a group element usable as the peer side of an agreement.
type PublicKey interface {
	// Octets returns the compressed encoding of the point.
	Octets() []byte
}

// PrivateKey is a scalar with its public point.
type PrivateKey interface {
	Public() PublicKey
	// SharedSecret computes the Diffie-Hellman agreement with peer.
	// The result is always SecretOctets bytes long.
	SharedSecret(peer PublicKey) ([]byte, error)
	// Bytes returns the serialized scalar for storage.
	Bytes() []byte
	// Wipe destroys the scalar material.
	Wipe()
}

// GroupByName resolves a registered group.
func GroupByName(name string) (Group, error) {
	switch name {
	case "P-256":
		return P256, nil
	case "P-384":
		return P384, nil
	case "P-521":
		return P521, nil
	case "secp256k1":
		return Secp256k1, nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}
