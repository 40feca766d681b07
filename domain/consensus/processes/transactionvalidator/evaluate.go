package transactionvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// EvaluateTransaction decides whether tx may be admitted into the block
// whose accumulated state is blockState. Inputs must be populated with
// their UTXO entries.
//
// If tx is accepted, its effects are recorded in blockState and tx.Fee is
// populated. If tx is rejected, blockState is left untouched and the
// returned error is a ruleerrors.RuleError. Any other error is a failure
// to read the ledger.
func (v *transactionValidator) EvaluateTransaction(tx *externalapi.DomainTransaction,
	blockState *model.BlockEvaluationState) (*externalapi.TransactionSummary, error) {

	// The in-isolation checks reject whatever the transaction ID can't be
	// calculated for, so they come first
	totalSompiOut, signers, err := v.validateTransactionInIsolation(tx)
	if err != nil {
		return nil, err
	}

	transactionID := consensushashing.TransactionID(tx)
	log.Tracef("Evaluating transaction %s at height %d", transactionID, blockState.BlockHeight())

	state := newTransactionEvaluationState(tx, transactionID, signers)
	state.totalOut = totalSompiOut

	err = v.checkMissingUTXOEntries(tx)
	if err != nil {
		return nil, err
	}

	for _, input := range tx.Inputs {
		err := v.validateInput(input, state, blockState)
		if err != nil {
			return nil, err
		}
	}

	for _, output := range tx.Outputs {
		err := v.validateOutput(output, state, blockState)
		if err != nil {
			return nil, err
		}
	}

	err = v.checkDomainRelease(state, blockState)
	if err != nil {
		return nil, err
	}

	err = v.checkTransactionBalance(state)
	if err != nil {
		return nil, err
	}

	summary := state.summary()
	blockState.AcceptTransaction(state.spentOutpoints, state.claimedNames, summary)
	tx.Fee = summary.Fee

	log.Debugf("Accepted transaction %s at height %d with fee %d (%d required)",
		transactionID, blockState.BlockHeight(), summary.Fee, summary.RequiredFees)
	return summary, nil
}

func (v *transactionValidator) checkMissingUTXOEntries(tx *externalapi.DomainTransaction) error {
	var missingOutpoints []*externalapi.DomainOutpoint
	for _, input := range tx.Inputs {
		if input.UTXOEntry == nil {
			missingOutpoints = append(missingOutpoints, &input.PreviousOutpoint)
		}
	}
	if len(missingOutpoints) > 0 {
		return ruleerrors.NewErrMissingTxOut(missingOutpoints)
	}
	return nil
}

// validateInput runs the checks every input goes through, and then the
// checks of the input's claim kind
func (v *transactionValidator) validateInput(input *externalapi.DomainTransactionInput,
	state *transactionEvaluationState, blockState *model.BlockEvaluationState) error {

	if blockState.IsOutpointSpent(&input.PreviousOutpoint) {
		return errors.Wrapf(ruleerrors.ErrDoubleSpendInSameBlock, "transaction %s spends "+
			"outpoint %s that was already spent by another transaction in this block",
			state.transactionID, input.PreviousOutpoint)
	}

	totalSompiIn, err := v.checkEntryAmounts(input.UTXOEntry, state.totalIn)
	if err != nil {
		return err
	}
	state.totalIn = totalSompiIn
	state.spentOutpoints = append(state.spentOutpoints, &input.PreviousOutpoint)

	claim := input.UTXOEntry.Claim()
	if isNilClaim(claim) {
		return errors.Wrapf(ruleerrors.ErrUnknownClaimKind, "input %s spends an output with no claim",
			input.PreviousOutpoint)
	}

	switch claim := claim.(type) {
	case *externalapi.ClaimBySignature:
		return v.validateSignatureClaimInput(claim, state)
	case *externalapi.ClaimDomain:
		return v.validateDomainInput(claim, input, state)
	default:
		return errors.Wrapf(ruleerrors.ErrUnknownClaimKind, "input %s spends an output with "+
			"claim kind %s", input.PreviousOutpoint, claim.Kind())
	}
}

// validateOutput runs the checks of the output's claim kind
func (v *transactionValidator) validateOutput(output *externalapi.DomainTransactionOutput,
	state *transactionEvaluationState, blockState *model.BlockEvaluationState) error {

	switch claim := output.Claim.(type) {
	case *externalapi.ClaimBySignature:
		return nil
	case *externalapi.ClaimDomain:
		return v.validateDomainOutput(claim, output.Value, state, blockState)
	default:
		return errors.Wrapf(ruleerrors.ErrUnknownClaimKind, "output has claim kind %s", claim.Kind())
	}
}

func (v *transactionValidator) checkEntryAmounts(entry externalapi.UTXOEntry, totalSompiInBefore uint64) (totalSompiInAfter uint64, err error) {
	// The total of all outputs must not be more than the max
	// allowed per transaction. Also, we could potentially overflow
	// the accumulator so check for overflow.
	originTxSompi := entry.Amount()
	totalSompiInAfter = totalSompiInBefore + originTxSompi
	if totalSompiInAfter < totalSompiInBefore ||
		totalSompiInAfter > constants.MaxSompi {
		return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "total value of all transaction "+
			"inputs is %d which is higher than max "+
			"allowed value of %d", totalSompiInBefore,
			constants.MaxSompi)
	}
	return totalSompiInAfter, nil
}

func (v *transactionValidator) checkTransactionBalance(state *transactionEvaluationState) error {
	// Ensure the transaction does not spend more than its inputs.
	if state.totalIn < state.totalOut {
		return errors.Wrapf(ruleerrors.ErrSpendTooHigh, "total value of all transaction inputs for "+
			"transaction %s is %d which is less than the amount "+
			"spent of %d", state.transactionID, state.totalIn, state.totalOut)
	}

	fee := state.totalIn - state.totalOut
	if fee < state.requiredFees {
		return errors.Wrapf(ruleerrors.ErrInsufficientRequiredFees, "transaction %s pays a fee of %d "+
			"while %d is required", state.transactionID, fee, state.requiredFees)
	}
	return nil
}
