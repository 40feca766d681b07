package blockbuilder

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/infrastructure/logger"
)

type blockBuilder struct {
	consensusStateManager model.ConsensusStateManager
	transactionValidator  model.TransactionValidator
}

// New creates a new instance of a BlockBuilder
func New(
	consensusStateManager model.ConsensusStateManager,
	transactionValidator model.TransactionValidator,
) model.BlockBuilder {

	return &blockBuilder{
		consensusStateManager: consensusStateManager,
		transactionValidator:  transactionValidator,
	}
}

// BuildBlock builds a block on top of the current head out of the given
// transactions. Transactions are evaluated in order and the rejected ones
// are left out of the block and returned alongside it.
func (bb *blockBuilder) BuildBlock(transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "BuildBlock")
	defer onEnd()

	return bb.buildBlock(transactions)
}

func (bb *blockBuilder) buildBlock(transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error) {

	blockHeight, err := bb.consensusStateManager.NextBlockHeight()
	if err != nil {
		return nil, nil, err
	}

	blockState := model.NewBlockEvaluationState(blockHeight)
	acceptedTransactions := make([]*externalapi.DomainTransaction, 0, len(transactions))
	var invalidTransactions []ruleerrors.InvalidTransaction
	for _, transaction := range transactions {
		err := bb.consensusStateManager.PopulateTransactionWithUTXOEntries(transaction)
		if err != nil {
			return nil, nil, err
		}

		_, err = bb.transactionValidator.EvaluateTransaction(transaction, blockState)
		if err != nil {
			if !ruleerrors.IsRuleError(err) {
				return nil, nil, err
			}
			// A malformed transaction may have no ID, in which case it's reported without one
			transactionID, _ := consensushashing.CalculateTransactionID(transaction)
			log.Debugf("Leaving transaction %s out of block %d: %s", transactionID, blockHeight, err)
			invalidTransactions = append(invalidTransactions, ruleerrors.InvalidTransaction{
				Transaction:   transaction,
				TransactionID: transactionID,
				Error:         err,
			})
			continue
		}
		acceptedTransactions = append(acceptedTransactions, transaction)
	}

	log.Debugf("Built block %d with %d transactions and %d in fees (%d required), %d transactions rejected",
		blockHeight, len(acceptedTransactions), blockState.TotalFees(), blockState.TotalRequiredFees(),
		len(invalidTransactions))

	return &externalapi.DomainBlock{
		Height:       blockHeight,
		Transactions: acceptedTransactions,
	}, invalidTransactions, nil
}
