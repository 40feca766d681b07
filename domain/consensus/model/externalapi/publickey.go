package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DomainPublicKeySize is the size of a serialized x-only Schnorr public key
const DomainPublicKeySize = 32

// DomainSignatureSize is the size of a serialized Schnorr signature
const DomainSignatureSize = 64

// DomainPublicKey is a serialized Schnorr public key. It identifies
// whoever is authorized to spend a claim.
type DomainPublicKey [DomainPublicKeySize]byte

// NewDomainPublicKeyFromString parses a hex-encoded public key
func NewDomainPublicKeyFromString(publicKeyString string) (DomainPublicKey, error) {
	var publicKey DomainPublicKey
	publicKeyBytes, err := hex.DecodeString(publicKeyString)
	if err != nil {
		return publicKey, errors.WithStack(err)
	}
	if len(publicKeyBytes) != DomainPublicKeySize {
		return publicKey, errors.Errorf("invalid public key size. Want: %d, got: %d",
			DomainPublicKeySize, len(publicKeyBytes))
	}
	copy(publicKey[:], publicKeyBytes)
	return publicKey, nil
}

// String returns the public key as a hexadecimal string
func (publicKey DomainPublicKey) String() string {
	return hex.EncodeToString(publicKey[:])
}

// DomainSignature is a serialized Schnorr signature
type DomainSignature [DomainSignatureSize]byte

// String returns the signature as a hexadecimal string
func (signature DomainSignature) String() string {
	return hex.EncodeToString(signature[:])
}

// DomainTransactionSignature is a signature attached to a transaction
// along with the public key that produced it
type DomainTransactionSignature struct {
	PublicKey DomainPublicKey
	Signature DomainSignature
}

// Clone returns a clone of DomainTransactionSignature
func (signature *DomainTransactionSignature) Clone() *DomainTransactionSignature {
	clone := *signature
	return &clone
}
