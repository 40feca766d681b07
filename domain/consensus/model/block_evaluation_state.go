package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// BlockEvaluationState accumulates the effects of the transactions
// accepted so far into a single block. It must not be shared between
// blocks.
type BlockEvaluationState struct {
	blockHeight       uint64
	namePool          *NamePool
	spentOutpoints    map[externalapi.DomainOutpoint]struct{}
	totalFees         uint64
	totalRequiredFees uint64
}

// NewBlockEvaluationState returns the state of an empty block at the given height
func NewBlockEvaluationState(blockHeight uint64) *BlockEvaluationState {
	return &BlockEvaluationState{
		blockHeight:    blockHeight,
		namePool:       NewNamePool(),
		spentOutpoints: make(map[externalapi.DomainOutpoint]struct{}),
	}
}

// BlockHeight returns the height of the block in progress
func (bes *BlockEvaluationState) BlockHeight() uint64 {
	return bes.blockHeight
}

// NamePool returns the names claimed so far in the block
func (bes *BlockEvaluationState) NamePool() *NamePool {
	return bes.namePool
}

// IsOutpointSpent returns whether an accepted transaction in the block
// already spends outpoint
func (bes *BlockEvaluationState) IsOutpointSpent(outpoint *externalapi.DomainOutpoint) bool {
	_, ok := bes.spentOutpoints[*outpoint]
	return ok
}

// TotalFees returns the sum of the fees of all accepted transactions
func (bes *BlockEvaluationState) TotalFees() uint64 {
	return bes.totalFees
}

// TotalRequiredFees returns the sum of the fees consensus rules
// required of all accepted transactions
func (bes *BlockEvaluationState) TotalRequiredFees() uint64 {
	return bes.totalRequiredFees
}

// AcceptTransaction records the effects of an accepted transaction.
// It's called only after every rule passed, so a rejected transaction
// leaves the state untouched.
func (bes *BlockEvaluationState) AcceptTransaction(spentOutpoints []*externalapi.DomainOutpoint,
	claimedNames []string, summary *externalapi.TransactionSummary) {

	for _, outpoint := range spentOutpoints {
		bes.spentOutpoints[*outpoint] = struct{}{}
	}
	for _, name := range claimedNames {
		bes.namePool.Add(name)
	}
	bes.totalFees += summary.Fee
	bes.totalRequiredFees += summary.RequiredFees
}
