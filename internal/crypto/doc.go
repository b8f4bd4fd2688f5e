// Package crypto provides the primitive capabilities the ECIES core
// composes, behind small provider interfaces.
//
// Contents
//
//   - Group: elliptic-curve providers with ephemeral key generation,
//     validating compressed-point codec and Diffie-Hellman agreement.
//     P-256/P-384/P-521 sit on crypto/elliptic; secp256k1 sits on the
//     decred implementation.
//   - Cipher: AES-CBC descriptors with zero-IV encryption and PKCS#7
//     padding (AES128CBC, AES192CBC, AES256CBC).
//   - Digest: selectable hash functions for the KDF and the MAC
//     (SHA256, SHA384, SHA512, SHA3256).
//   - Short public-key fingerprints for display (Fingerprint).
//
// # Notes
//
// All providers are stateless values safe for concurrent use; each
// call allocates its own working state. Callers should treat shared
// secrets as sensitive and wipe them with memzero when done.
package crypto
