package transactionvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/domainnames"
	"github.com/pkg/errors"
)

// validateDomainInput checks an input that spends a domain claim. The
// claim, its amount and its outpoint are kept for the validation of the
// transaction's domain output.
func (v *transactionValidator) validateDomainInput(claim *externalapi.ClaimDomain,
	input *externalapi.DomainTransactionInput, state *transactionEvaluationState) error {

	if state.seenDomainInput {
		return errors.Wrapf(ruleerrors.ErrDuplicateDomainInput, "transaction %s spends more than "+
			"one domain claim", state.transactionID)
	}

	exists, err := v.ledgerView.HasDomainRecord(claim.Name)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(ruleerrors.ErrDomainRecordNotFound, "transaction %s spends a claim of "+
			"domain %s which has no record", state.transactionID, claim.Name)
	}

	state.seenDomainInput = true
	state.domainInput = claim
	state.domainInputAmount = input.UTXOEntry.Amount()
	state.domainInputOutpoint = input.PreviousOutpoint
	return nil
}

// validateDomainOutput checks an output that claims a domain. Depending on
// the transaction's domain input and on the status of the name, the output
// is either a fresh claim, a bid in an open auction, or an update of a
// settled claim.
func (v *transactionValidator) validateDomainOutput(claim *externalapi.ClaimDomain, amount uint64,
	state *transactionEvaluationState, blockState *model.BlockEvaluationState) error {

	if state.seenDomainOutput {
		return errors.Wrapf(ruleerrors.ErrDuplicateDomainOutput, "transaction %s creates more than "+
			"one domain claim", state.transactionID)
	}
	state.seenDomainOutput = true

	err := v.checkDomainClaimFields(claim, amount)
	if err != nil {
		return err
	}

	status, err := domainnames.CheckNameStatus(claim.Name, blockState.NamePool(), v.ledgerView,
		blockState.BlockHeight(), v.params)
	if err != nil {
		return err
	}

	if !state.seenDomainInput {
		return v.validateNewDomainClaim(claim, status, state)
	}

	if status.NewOrExpired {
		return errors.Wrapf(ruleerrors.ErrDomainNewOrExpired, "domain %s has no live claim to "+
			"bid on or update", claim.Name)
	}
	if claim.Name != state.domainInput.Name {
		return errors.Wrapf(ruleerrors.ErrDomainNameMismatch, "transaction %s spends a claim of "+
			"%s but claims %s", state.transactionID, state.domainInput.Name, claim.Name)
	}

	// The name was already claimed earlier in this block, so the
	// committed record no longer describes it.
	record := status.PreviousRecord
	if record == nil {
		return errors.Wrapf(ruleerrors.ErrDomainUnavailable, "domain %s was already claimed "+
			"in block %d", claim.Name, blockState.BlockHeight())
	}

	if state.domainInputOutpoint != record.LastUpdateOutpoint {
		return errors.Wrapf(ruleerrors.ErrStaleDomainInput, "transaction %s spends %s while "+
			"domain %s was last claimed by %s", state.transactionID, state.domainInputOutpoint,
			claim.Name, record.LastUpdateOutpoint)
	}

	if !domainnames.AuctionIsClosed(record, blockState.BlockHeight(), v.params) {
		return v.validateDomainBid(claim, amount, status, state)
	}
	return v.validateDomainUpdate(claim, amount, record, state, blockState)
}

func (v *transactionValidator) checkDomainClaimFields(claim *externalapi.ClaimDomain, amount uint64) error {
	if !domainnames.IsValidName(claim.Name, v.params) {
		return errors.Wrapf(ruleerrors.ErrInvalidDomainName, "%q is not a valid domain name", claim.Name)
	}
	if !domainnames.IsValidValue(claim.Value, v.params) {
		return errors.Wrapf(ruleerrors.ErrInvalidDomainValue, "domain %s value of %d bytes is "+
			"longer than the max allowed length of %d", claim.Name, len(claim.Value), v.params.MaxDomainValueLength)
	}
	if !domainnames.IsValidState(claim.State) {
		return errors.Wrapf(ruleerrors.ErrInvalidDomainState, "domain %s has unknown state %s",
			claim.Name, claim.State)
	}
	if !domainnames.IsValidAmount(amount, v.params) {
		return errors.Wrapf(ruleerrors.ErrInvalidDomainAmount, "domain %s amount of %d is out of "+
			"range", claim.Name, amount)
	}
	return nil
}

// validateNewDomainClaim checks a domain output with no domain input,
// which may only claim a name no one holds
func (v *transactionValidator) validateNewDomainClaim(claim *externalapi.ClaimDomain,
	status *domainnames.NameStatus, state *transactionEvaluationState) error {

	if !status.NewOrExpired || !status.Available {
		return errors.Wrapf(ruleerrors.ErrDomainUnavailable, "domain %s is already claimed", claim.Name)
	}
	state.claimName(claim.Name)
	return nil
}

// validateDomainBid checks a bid in an open auction. The bid must raise the
// previous one by the minimum margin, the outbid owner must be refunded
// through a claim-by-signature output, and whatever of the increment is
// not refunded is required as fee.
func (v *transactionValidator) validateDomainBid(claim *externalapi.ClaimDomain, amount uint64,
	status *domainnames.NameStatus, state *transactionEvaluationState) error {

	if !status.Available {
		return errors.Wrapf(ruleerrors.ErrDomainUnavailable, "domain %s is not open for bids", claim.Name)
	}
	if state.domainInput.State != externalapi.DomainStatePossiblyInAuction {
		return errors.Wrapf(ruleerrors.ErrDomainInputNotInAuction, "transaction %s bids on domain %s "+
			"by spending a claim in state %s", state.transactionID, claim.Name, state.domainInput.State)
	}

	amountBack, ok := domainnames.IsValidBidPrice(state.domainInputAmount, amount, v.params)
	if !ok {
		return errors.Wrapf(ruleerrors.ErrInvalidBidPrice, "bid of %d on domain %s doesn't raise "+
			"the previous bid of %d by at least %d%%", amount, claim.Name, state.domainInputAmount,
			v.params.MinBidIncreasePercent)
	}
	state.addRequiredFees(amount - amountBack)

	outbidOwner := state.domainInput.Owner
	if !hasRefundOutput(state.transaction, outbidOwner, amountBack) {
		return ruleerrors.NewErrMissingBidRefund(outbidOwner, amountBack)
	}

	state.claimName(claim.Name)
	return nil
}

// validateDomainUpdate checks an update of a settled claim, which both the
// current and the new owner must authorize
func (v *transactionValidator) validateDomainUpdate(claim *externalapi.ClaimDomain, amount uint64,
	record *externalapi.DomainRecord, state *transactionEvaluationState, blockState *model.BlockEvaluationState) error {

	if domainnames.DomainIsExpired(record, blockState.BlockHeight(), v.params) {
		return errors.Wrapf(ruleerrors.ErrDomainExpired, "domain %s expired", claim.Name)
	}
	if claim.State == externalapi.DomainStateNotInAuction && amount != state.domainInputAmount {
		return errors.Wrapf(ruleerrors.ErrDomainAmountChanged, "update of domain %s changes its "+
			"amount from %d to %d", claim.Name, state.domainInputAmount, amount)
	}
	if !state.hasSignature(claim.Owner) {
		return ruleerrors.NewErrMissingDomainSignature(claim.Name, claim.Owner)
	}
	if !state.hasSignature(state.domainInput.Owner) {
		return ruleerrors.NewErrMissingDomainSignature(claim.Name, state.domainInput.Owner)
	}

	state.claimName(claim.Name)
	return nil
}

// checkDomainRelease requires the owner's signature on a transaction that
// spends a domain claim without claiming the domain again. Spending the
// output that currently claims the name releases it, and nothing else in
// the block may touch the name afterwards. Spending an outdated claim,
// one that was superseded when the expired name was claimed again, only
// recovers its amount.
func (v *transactionValidator) checkDomainRelease(state *transactionEvaluationState,
	blockState *model.BlockEvaluationState) error {

	if !state.seenDomainInput || state.seenDomainOutput {
		return nil
	}
	name := state.domainInput.Name
	if !state.hasSignature(state.domainInput.Owner) {
		return ruleerrors.NewErrMissingDomainSignature(name, state.domainInput.Owner)
	}

	isCurrentClaim, err := v.isCurrentDomainClaim(name, state.domainInputOutpoint, blockState)
	if err != nil {
		return err
	}
	if !isCurrentClaim {
		log.Tracef("Transaction %s spends an outdated claim of domain %s", state.transactionID, name)
		return nil
	}
	state.claimName(name)
	return nil
}

// isCurrentDomainClaim returns whether outpoint is the output that claims
// name as of the block in progress
func (v *transactionValidator) isCurrentDomainClaim(name string, outpoint externalapi.DomainOutpoint,
	blockState *model.BlockEvaluationState) (bool, error) {

	if blockState.NamePool().Contains(name) {
		return false, nil
	}
	record, err := v.ledgerView.DomainRecord(name)
	if database.IsNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.LastUpdateOutpoint == outpoint, nil
}

func hasRefundOutput(tx *externalapi.DomainTransaction, owner externalapi.DomainPublicKey, amount uint64) bool {
	for _, output := range tx.Outputs {
		claim, ok := output.Claim.(*externalapi.ClaimBySignature)
		if ok && claim.Owner == owner && output.Value >= amount {
			return true
		}
	}
	return false
}
