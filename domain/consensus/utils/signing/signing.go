package signing

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// PublicKey returns the serialized public key of keyPair, the form in
// which owners appear in claims
func PublicKey(keyPair *secp256k1.SchnorrKeyPair) (externalapi.DomainPublicKey, error) {
	var publicKey externalapi.DomainPublicKey
	schnorrPublicKey, err := keyPair.SchnorrPublicKey()
	if err != nil {
		return publicKey, errors.WithStack(err)
	}
	serialized, err := schnorrPublicKey.Serialize()
	if err != nil {
		return publicKey, errors.WithStack(err)
	}
	copy(publicKey[:], serialized[:])
	return publicKey, nil
}

// KeyPairFromSeed deterministically derives a key pair from seed
func KeyPairFromSeed(seed []byte) (*secp256k1.SchnorrKeyPair, error) {
	writer := hashes.NewKeyDerivationWriter()
	writer.InfallibleWrite(seed)
	privateKeyBytes := writer.Finalize().ByteSlice()
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKeyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "seed derives an invalid private key")
	}
	return keyPair, nil
}

// RawTransactionSignature signs tx's signing hash with keyPair
func RawTransactionSignature(tx *externalapi.DomainTransaction,
	keyPair *secp256k1.SchnorrKeyPair) (*externalapi.DomainTransactionSignature, error) {

	hash, err := consensushashing.TransactionSigningHash(tx)
	if err != nil {
		return nil, err
	}
	secpHash := secp256k1.Hash(*hash.ByteArray())
	signature, err := keyPair.SchnorrSign(&secpHash)
	if err != nil {
		return nil, errors.Errorf("cannot sign tx: %s", err)
	}

	publicKey, err := PublicKey(keyPair)
	if err != nil {
		return nil, err
	}
	return &externalapi.DomainTransactionSignature{
		PublicKey: publicKey,
		Signature: externalapi.DomainSignature(*signature.Serialize()),
	}, nil
}

// SignTransaction attaches a signature of every given key pair to tx.
// It must be called after tx's inputs and outputs are final.
func SignTransaction(tx *externalapi.DomainTransaction, keyPairs ...*secp256k1.SchnorrKeyPair) error {
	for _, keyPair := range keyPairs {
		signature, err := RawTransactionSignature(tx, keyPair)
		if err != nil {
			return err
		}
		tx.Signatures = append(tx.Signatures, signature)
	}
	return nil
}

// VerifySignature returns whether signature is a valid signature of
// signingHash by its public key. Malformed public keys or signatures
// are reported as invalid signatures.
func VerifySignature(signingHash *externalapi.DomainHash, signature *externalapi.DomainTransactionSignature) bool {
	publicKey, err := secp256k1.DeserializeSchnorrPubKey(signature.PublicKey[:])
	if err != nil {
		return false
	}
	schnorrSignature, err := secp256k1.DeserializeSchnorrSignatureFromSlice(signature.Signature[:])
	if err != nil {
		return false
	}
	secpHash := secp256k1.Hash(*signingHash.ByteArray())
	return publicKey.SchnorrVerify(&secpHash, schnorrSignature)
}
