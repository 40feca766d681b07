package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// ConsensusStateManager manages the node's consensus state
type ConsensusStateManager interface {
	PopulateTransactionWithUTXOEntries(transaction *externalapi.DomainTransaction) error
	NextBlockHeight() (uint64, error)
	ApplyBlock(block *externalapi.DomainBlock) error
}
