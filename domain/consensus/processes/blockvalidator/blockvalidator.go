package blockvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
)

// blockValidator exposes a set of validation classes, after which
// it's possible to determine whether a block is valid
type blockValidator struct {
	consensusStateManager model.ConsensusStateManager
	transactionValidator  model.TransactionValidator
}

// New instantiates a new BlockValidator
func New(
	consensusStateManager model.ConsensusStateManager,
	transactionValidator model.TransactionValidator,
) model.BlockValidator {

	return &blockValidator{
		consensusStateManager: consensusStateManager,
		transactionValidator:  transactionValidator,
	}
}
