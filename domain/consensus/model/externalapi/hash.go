package externalapi

import (
	"encoding/hex"
)

// DomainHashSize is the size in bytes of every hash the ledger produces:
// transaction ids, signature hashes and the domain record commitment.
const DomainHashSize = 32

// DomainHash is a 32-byte blake2b digest
type DomainHash struct {
	hashArray [DomainHashSize]byte
}

// NewDomainHashFromByteArray wraps a finalized digest
func NewDomainHashFromByteArray(hashBytes *[DomainHashSize]byte) *DomainHash {
	return &DomainHash{hashArray: *hashBytes}
}

func (hash DomainHash) String() string {
	return hex.EncodeToString(hash.hashArray[:])
}

// ByteArray returns a copy of the digest. The caller may modify it freely.
func (hash *DomainHash) ByteArray() *[DomainHashSize]byte {
	digest := hash.hashArray
	return &digest
}

// ByteSlice returns a copy of the digest as a slice
func (hash *DomainHash) ByteSlice() []byte {
	return hash.ByteArray()[:]
}

// Equal returns whether hash and other hold the same digest. Two nil hashes
// are equal.
func (hash *DomainHash) Equal(other *DomainHash) bool {
	if hash == nil || other == nil {
		return hash == other
	}
	return hash.hashArray == other.hashArray
}
