package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// BlockValidator exposes a set of validation classes, after which
// it's possible to determine whether a block is valid
type BlockValidator interface {
	ValidateBlockTransactions(block *externalapi.DomainBlock) ([]*externalapi.TransactionSummary, error)
}
