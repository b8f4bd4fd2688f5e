package crypto

import (
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"seal/internal/util/memzero"
)

// NIST prime-field groups. Agreement is plain ECDH: the shared secret
// is the x coordinate of d*Q left-padded to the field size, matching
// what ECDH_compute_key produces without a KDF.
var (
	P256 Group = nistGroup{elliptic.P256(), "P-256"}
	P384 Group = nistGroup{elliptic.P384(), "P-384"}
	P521 Group = nistGroup{elliptic.P521(), "P-521"}
)

var errNotOnGroup = errors.New("point is not on the group")

type nistGroup struct {
	curve elliptic.Curve
	name  string
}

func (g nistGroup) Name() string { return g.name }

func (g nistGroup) fieldOctets() int { return (g.curve.Params().BitSize + 7) / 8 }

func (g nistGroup) PointOctets() int { return 1 + g.fieldOctets() }

func (g nistGroup) SecretOctets() int { return g.fieldOctets() }

func (g nistGroup) GenerateKeyPair() (PrivateKey, error) {
	d, x, y, err := elliptic.GenerateKey(g.curve, rand.Reader)
	if err != nil {
		return nil, err
	}
	return &nistPrivate{group: g, d: d, pub: nistPublic{group: g, x: x, y: y}}, nil
}

func (g nistGroup) ParsePoint(octets []byte) (PublicKey, error) {
	if len(octets) != g.PointOctets() {
		return nil, fmt.Errorf("%s point must be %d octets, got %d", g.name, g.PointOctets(), len(octets))
	}
	x, y := elliptic.UnmarshalCompressed(g.curve, octets)
	if x == nil {
		return nil, errNotOnGroup
	}
	return nistPublic{group: g, x: x, y: y}, nil
}

func (g nistGroup) ParseScalar(b []byte) (PrivateKey, error) {
	if len(b) != g.fieldOctets() {
		return nil, fmt.Errorf("%s scalar must be %d octets, got %d", g.name, g.fieldOctets(), len(b))
	}
	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(g.curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%s scalar out of range", g.name)
	}
	x, y := g.curve.ScalarBaseMult(d.Bytes())
	scalar := make([]byte, len(b))
	copy(scalar, b)
	return &nistPrivate{group: g, d: scalar, pub: nistPublic{group: g, x: x, y: y}}, nil
}

type nistPublic struct {
	group nistGroup
	x, y  *big.Int
}

func (p nistPublic) Octets() []byte {
	return elliptic.MarshalCompressed(p.group.curve, p.x, p.y)
}

type nistPrivate struct {
	group nistGroup
	d     []byte
	pub   nistPublic
}

func (k *nistPrivate) Public() PublicKey { return k.pub }

func (k *nistPrivate) SharedSecret(peer PublicKey) ([]byte, error) {
	pp, ok := peer.(nistPublic)
	if !ok || pp.group.name != k.group.name {
		return nil, fmt.Errorf("peer key is not on %s", k.group.name)
	}
	x, _ := k.group.curve.ScalarMult(pp.x, pp.y, k.d)
	if x == nil || x.Sign() == 0 {
		return nil, errors.New("shared secret is the point at infinity")
	}
	secret := make([]byte, k.group.SecretOctets())
	x.FillBytes(secret)
	return secret, nil
}

func (k *nistPrivate) Bytes() []byte {
	// Left-pad so short scalars keep a fixed serialized size.
	out := make([]byte, k.group.fieldOctets())
	copy(out[len(out)-len(k.d):], k.d)
	return out
}

func (k *nistPrivate) Wipe() { memzero.Zero(k.d) }
