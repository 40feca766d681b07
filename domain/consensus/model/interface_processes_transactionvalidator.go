package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// TransactionValidator decides whether a transaction may be admitted into
// the block whose accumulated state is blockState
type TransactionValidator interface {
	EvaluateTransaction(transaction *externalapi.DomainTransaction,
		blockState *BlockEvaluationState) (*externalapi.TransactionSummary, error)
}
