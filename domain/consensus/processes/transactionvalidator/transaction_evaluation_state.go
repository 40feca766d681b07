package transactionvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
)

// transactionEvaluationState is the scratch state of a single
// transaction's evaluation. Nothing in it outlives the evaluation
// unless the transaction is accepted.
type transactionEvaluationState struct {
	transaction   *externalapi.DomainTransaction
	transactionID *externalapi.DomainTransactionID
	signers       map[externalapi.DomainPublicKey]struct{}

	totalIn        uint64
	totalOut       uint64
	requiredFees   uint64
	spentOutpoints []*externalapi.DomainOutpoint
	claimedNames   []string

	seenDomainInput     bool
	domainInput         *externalapi.ClaimDomain
	domainInputAmount   uint64
	domainInputOutpoint externalapi.DomainOutpoint

	seenDomainOutput bool
}

func newTransactionEvaluationState(transaction *externalapi.DomainTransaction,
	transactionID *externalapi.DomainTransactionID,
	signers map[externalapi.DomainPublicKey]struct{}) *transactionEvaluationState {

	return &transactionEvaluationState{
		transaction:   transaction,
		transactionID: transactionID,
		signers:       signers,
	}
}

// hasSignature returns whether the transaction carries a valid
// signature of owner
func (s *transactionEvaluationState) hasSignature(owner externalapi.DomainPublicKey) bool {
	_, ok := s.signers[owner]
	return ok
}

func (s *transactionEvaluationState) addRequiredFees(amount uint64) {
	s.requiredFees += amount
}

// claimName stages name for insertion into the block's name pool
func (s *transactionEvaluationState) claimName(name string) {
	s.claimedNames = append(s.claimedNames, name)
}

func (s *transactionEvaluationState) summary() *externalapi.TransactionSummary {
	return &externalapi.TransactionSummary{
		TotalIn:      s.totalIn,
		TotalOut:     s.totalOut,
		Fee:          s.totalIn - s.totalOut,
		RequiredFees: s.requiredFees,
	}
}
