package hashes

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

var (
	transactionIDDomain          = []byte("TransactionID")
	transactionSigningHashDomain = []byte("TransactionSigningHash")
	domainRecordDomain           = []byte("DomainRecord")
	keyDerivationDomain          = []byte("KeyDerivation")
)

// NewTransactionIDWriter returns a new HashWriter used for transaction IDs
func NewTransactionIDWriter() HashWriter {
	return newKeyedWriter(transactionIDDomain)
}

// NewTransactionSigningHashWriter returns a new HashWriter used for signing on a transaction
func NewTransactionSigningHashWriter() HashWriter {
	return newKeyedWriter(transactionSigningHashDomain)
}

// NewDomainRecordWriter returns a new HashWriter used for hashing domain records
func NewDomainRecordWriter() HashWriter {
	return newKeyedWriter(domainRecordDomain)
}

// NewKeyDerivationWriter returns a new HashWriter used for deriving private keys from seeds
func NewKeyDerivationWriter() HashWriter {
	return newKeyedWriter(keyDerivationDomain)
}

func newKeyedWriter(domain []byte) HashWriter {
	blake, err := blake2b.New256(domain)
	if err != nil {
		panic(errors.Wrapf(err, "this should never happen. %s is less than 64 bytes", domain))
	}
	return HashWriter{blake}
}
