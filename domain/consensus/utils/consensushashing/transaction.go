package consensushashing

import (
	"io"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/hashes"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// TransactionID generates the Hash for the transaction without the signatures.
// Signatures commit to the transaction's ID, so they can't be part of it.
// It panics on a malformed transaction, so transactions that didn't pass
// validation must go through CalculateTransactionID instead.
func TransactionID(tx *externalapi.DomainTransaction) *externalapi.DomainTransactionID {
	transactionID, err := CalculateTransactionID(tx)
	if err != nil {
		panic(errors.Wrap(err, "TransactionID() failed. this should never fail for structurally-valid transactions"))
	}
	return transactionID
}

// CalculateTransactionID returns the ID of tx, or an error if tx is too
// malformed to be serialized: a nil input, output or output claim.
func CalculateTransactionID(tx *externalapi.DomainTransaction) (*externalapi.DomainTransactionID, error) {
	writer := hashes.NewTransactionIDWriter()
	err := serializeTransaction(writer, tx)
	if err != nil {
		return nil, err
	}
	return (*externalapi.DomainTransactionID)(writer.Finalize()), nil
}

// TransactionSigningHash returns the hash every signature attached to tx must sign
func TransactionSigningHash(tx *externalapi.DomainTransaction) (*externalapi.DomainHash, error) {
	writer := hashes.NewTransactionSigningHashWriter()
	err := serializeTransaction(writer, tx)
	if err != nil {
		return nil, err
	}
	return writer.Finalize(), nil
}

// serializeTransaction writes everything in tx that signatures commit to:
// the version, the spent outpoints and the outputs with their claims.
func serializeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := serialization.WriteElements(w, tx.Version, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for i, input := range tx.Inputs {
		if input == nil {
			return errors.Errorf("input %d is nil", i)
		}
		err = serialization.WriteElements(w, input.PreviousOutpoint.TransactionID, input.PreviousOutpoint.Index)
		if err != nil {
			return err
		}
	}

	err = serialization.WriteElement(w, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for i, output := range tx.Outputs {
		if output == nil {
			return errors.Errorf("output %d is nil", i)
		}
		err = serialization.WriteElement(w, output.Value)
		if err != nil {
			return err
		}
		err = serialization.WriteClaim(w, output.Claim)
		if err != nil {
			return err
		}
	}
	return nil
}
