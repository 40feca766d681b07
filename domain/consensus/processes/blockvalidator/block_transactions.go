package blockvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/infrastructure/logger"
	"github.com/pkg/errors"
)

// ValidateBlockTransactions re-evaluates the transactions of block, in
// order, against a fresh block state. The block is rejected if any of its
// transactions is rejected.
func (v *blockValidator) ValidateBlockTransactions(block *externalapi.DomainBlock) (
	[]*externalapi.TransactionSummary, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateBlockTransactions")
	defer onEnd()

	err := v.checkBlockHeight(block)
	if err != nil {
		return nil, err
	}

	blockState := model.NewBlockEvaluationState(block.Height)
	summaries := make([]*externalapi.TransactionSummary, 0, len(block.Transactions))
	var invalidTransactions []ruleerrors.InvalidTransaction
	for _, transaction := range block.Transactions {
		err := v.consensusStateManager.PopulateTransactionWithUTXOEntries(transaction)
		if err != nil {
			return nil, err
		}

		summary, err := v.transactionValidator.EvaluateTransaction(transaction, blockState)
		if err != nil {
			if !ruleerrors.IsRuleError(err) {
				return nil, err
			}
			// A malformed transaction may have no ID, in which case it's reported without one
			transactionID, _ := consensushashing.CalculateTransactionID(transaction)
			invalidTransactions = append(invalidTransactions, ruleerrors.InvalidTransaction{
				Transaction:   transaction,
				TransactionID: transactionID,
				Error:         err,
			})
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(invalidTransactions) > 0 {
		return nil, ruleerrors.NewErrInvalidTransactionsInNewBlock(invalidTransactions)
	}
	return summaries, nil
}

func (v *blockValidator) checkBlockHeight(block *externalapi.DomainBlock) error {
	nextBlockHeight, err := v.consensusStateManager.NextBlockHeight()
	if err != nil {
		return err
	}
	if block.Height != nextBlockHeight {
		return errors.Wrapf(ruleerrors.ErrWrongBlockHeight, "block height is %d while the next "+
			"height is %d", block.Height, nextBlockHeight)
	}
	return nil
}
