package domain

// Identity is a stored recipient key pair: the curve it lives on, the
// serialized private scalar and the compressed public point.
type Identity struct {
	Curve   string `json:"curve"`
	Private []byte `json:"private"`
	Public  []byte `json:"public"`
}

// Recipient returns the shareable public half.
func (i Identity) Recipient() Recipient {
	return Recipient{Curve: i.Curve, Public: i.Public}
}

// Recipient is the public half of an identity, enough to encrypt to
// its holder.
type Recipient struct {
	Curve  string `json:"curve"`
	Public []byte `json:"public"`
}
