package transactionvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/constants"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/signing"
	"github.com/pkg/errors"
)

// validateTransactionInIsolation runs the checks that need nothing but the
// transaction itself. It returns the total output value and the set of
// public keys that validly signed the transaction.
func (v *transactionValidator) validateTransactionInIsolation(tx *externalapi.DomainTransaction) (
	totalSompiOut uint64, signers map[externalapi.DomainPublicKey]struct{}, err error) {

	err = v.checkTransactionVersion(tx)
	if err != nil {
		return 0, nil, err
	}

	err = v.checkTransactionElements(tx)
	if err != nil {
		return 0, nil, err
	}

	err = v.checkTransactionInputCount(tx)
	if err != nil {
		return 0, nil, err
	}

	err = v.checkDuplicateTransactionInputs(tx)
	if err != nil {
		return 0, nil, err
	}

	totalSompiOut, err = v.checkTransactionAmountRanges(tx)
	if err != nil {
		return 0, nil, err
	}

	err = v.checkOutputClaims(tx)
	if err != nil {
		return 0, nil, err
	}

	signers, err = v.checkTransactionSignatures(tx)
	if err != nil {
		return 0, nil, err
	}

	return totalSompiOut, signers, nil
}

func (v *transactionValidator) checkTransactionVersion(tx *externalapi.DomainTransaction) error {
	if tx.Version > constants.MaxTransactionVersion {
		return errors.Wrapf(ruleerrors.ErrTransactionVersionIsUnknown, "validation failed: unknown transaction version %d", tx.Version)
	}
	return nil
}

// checkTransactionElements makes sure none of the transaction's inputs,
// outputs or signatures is nil, so the rest of the checks may
// dereference them
func (v *transactionValidator) checkTransactionElements(tx *externalapi.DomainTransaction) error {
	for i, input := range tx.Inputs {
		if input == nil {
			return errors.Wrapf(ruleerrors.ErrMalformedTransaction, "input %d is nil", i)
		}
	}
	for i, output := range tx.Outputs {
		if output == nil {
			return errors.Wrapf(ruleerrors.ErrMalformedTransaction, "output %d is nil", i)
		}
	}
	for i, signature := range tx.Signatures {
		if signature == nil {
			return errors.Wrapf(ruleerrors.ErrMalformedTransaction, "signature %d is nil", i)
		}
	}
	return nil
}

func (v *transactionValidator) checkTransactionInputCount(tx *externalapi.DomainTransaction) error {
	// A non-coinbase transaction must have at least one input.
	if len(tx.Inputs) == 0 {
		return errors.Wrapf(ruleerrors.ErrNoTxInputs, "transaction has no inputs")
	}
	return nil
}

func (v *transactionValidator) checkDuplicateTransactionInputs(tx *externalapi.DomainTransaction) error {
	existingTxOut := make(map[externalapi.DomainOutpoint]struct{})
	for _, txIn := range tx.Inputs {
		if _, exists := existingTxOut[txIn.PreviousOutpoint]; exists {
			return errors.Wrapf(ruleerrors.ErrDuplicateTxInputs, "transaction "+
				"contains duplicate inputs")
		}
		existingTxOut[txIn.PreviousOutpoint] = struct{}{}
	}
	return nil
}

func (v *transactionValidator) checkTransactionAmountRanges(tx *externalapi.DomainTransaction) (uint64, error) {
	// Ensure the transaction amounts are in range. Each transaction
	// output must not be more than the max allowed per transaction. Also,
	// the total of all outputs must abide by the same restrictions. All
	// amounts in a transaction are in a unit value known as a sompi. One
	// kaspa is a quantity of sompi as defined by the SompiPerKaspa constant.
	var totalSompi uint64
	for _, txOut := range tx.Outputs {
		sompi := txOut.Value
		if sompi > constants.MaxSompi {
			return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "transaction output value of %d is "+
				"higher than max allowed value of %d", sompi, constants.MaxSompi)
		}

		// Binary arithmetic guarantees that any overflow is detected and reported.
		// This is impossible for Kaspa, but perhaps possible if an alt increases
		// the total money supply.
		newTotalSompi := totalSompi + sompi
		if newTotalSompi < totalSompi {
			return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "total value of all transaction "+
				"outputs exceeds max allowed value of %d",
				constants.MaxSompi)
		}
		totalSompi = newTotalSompi
		if totalSompi > constants.MaxSompi {
			return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "total value of all "+
				"transaction outputs is %d which is higher than max "+
				"allowed value of %d", totalSompi,
				constants.MaxSompi)
		}
	}

	return totalSompi, nil
}

func (v *transactionValidator) checkOutputClaims(tx *externalapi.DomainTransaction) error {
	for i, txOut := range tx.Outputs {
		if isNilClaim(txOut.Claim) {
			return errors.Wrapf(ruleerrors.ErrUnknownClaimKind, "output %d has no claim", i)
		}
	}
	return nil
}

// checkTransactionSignatures verifies every signature attached to tx and
// returns the set of signers
func (v *transactionValidator) checkTransactionSignatures(tx *externalapi.DomainTransaction) (
	map[externalapi.DomainPublicKey]struct{}, error) {

	signers := make(map[externalapi.DomainPublicKey]struct{}, len(tx.Signatures))
	if len(tx.Signatures) == 0 {
		return signers, nil
	}

	signingHash, err := consensushashing.TransactionSigningHash(tx)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrUnknownClaimKind, "cannot calculate the signing hash: %s", err)
	}

	for i, signature := range tx.Signatures {
		if _, exists := signers[signature.PublicKey]; exists {
			return nil, errors.Wrapf(ruleerrors.ErrDuplicateSignature, "signature %d: %s already "+
				"signed the transaction", i, signature.PublicKey)
		}
		if !signing.VerifySignature(signingHash, signature) {
			return nil, errors.Wrapf(ruleerrors.ErrInvalidSignature, "signature %d by %s is invalid",
				i, signature.PublicKey)
		}
		signers[signature.PublicKey] = struct{}{}
	}
	return signers, nil
}

// isNilClaim returns whether claim is nil, either as an interface or as a
// nil pointer of a known claim type
func isNilClaim(claim externalapi.Claim) bool {
	switch claim := claim.(type) {
	case nil:
		return true
	case *externalapi.ClaimBySignature:
		return claim == nil
	case *externalapi.ClaimDomain:
		return claim == nil
	}
	return false
}
