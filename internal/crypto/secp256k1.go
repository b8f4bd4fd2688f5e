package crypto

import (
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 is the Bitcoin curve, provided by the decred
// implementation which carries its own compressed-point codec and
// constant-time scalar arithmetic.
var Secp256k1 Group = secpGroup{}

type secpGroup struct{}

func (secpGroup) Name() string { return "secp256k1" }

func (secpGroup) PointOctets() int { return secp.PubKeyBytesLenCompressed }

func (secpGroup) SecretOctets() int { return 32 }

func (secpGroup) GenerateKeyPair() (PrivateKey, error) {
	priv, err := secp.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &secpPrivate{priv: priv}, nil
}

func (g secpGroup) ParsePoint(octets []byte) (PublicKey, error) {
	// ParsePubKey also accepts the uncompressed and hybrid forms, so
	// pin the length to the compressed encoding first.
	if len(octets) != g.PointOctets() {
		return nil, fmt.Errorf("secp256k1 point must be %d octets, got %d", g.PointOctets(), len(octets))
	}
	pub, err := secp.ParsePubKey(octets)
	if err != nil {
		return nil, err
	}
	return secpPublic{pub: pub}, nil
}

func (g secpGroup) ParseScalar(b []byte) (PrivateKey, error) {
	if len(b) != g.SecretOctets() {
		return nil, fmt.Errorf("secp256k1 scalar must be %d octets, got %d", g.SecretOctets(), len(b))
	}
	var key secp.ModNScalar
	if overflow := key.SetByteSlice(b); overflow || key.IsZero() {
		return nil, fmt.Errorf("secp256k1 scalar out of range")
	}
	return &secpPrivate{priv: secp.NewPrivateKey(&key)}, nil
}

type secpPublic struct {
	pub *secp.PublicKey
}

func (p secpPublic) Octets() []byte { return p.pub.SerializeCompressed() }

type secpPrivate struct {
	priv *secp.PrivateKey
}

func (k *secpPrivate) Public() PublicKey { return secpPublic{pub: k.priv.PubKey()} }

func (k *secpPrivate) SharedSecret(peer PublicKey) ([]byte, error) {
	pp, ok := peer.(secpPublic)
	if !ok {
		return nil, fmt.Errorf("peer key is not on secp256k1")
	}
	return secp.GenerateSharedSecret(k.priv, pp.pub), nil
}

func (k *secpPrivate) Bytes() []byte { return k.priv.Serialize() }

func (k *secpPrivate) Wipe() { k.priv.Zero() }
