package consensus

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
)

// TestConsensus wraps the Consensus interface with some methods that are needed by tests only
type TestConsensus interface {
	Consensus

	Params() *dagconfig.Params
	DatabaseContext() model.DBManager

	// AddBlock builds a block out of transactions and inserts it
	AddBlock(transactions []*externalapi.DomainTransaction) (
		*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error)

	UTXOStore() model.UTXOStore
	DomainRecordStore() model.DomainRecordStore
	ConsensusStateStore() model.ConsensusStateStore
	TransactionValidator() model.TransactionValidator
	ConsensusStateManager() model.ConsensusStateManager
	BlockBuilder() model.BlockBuilder
	BlockValidator() model.BlockValidator
}

type testConsensus struct {
	*consensus
	params *dagconfig.Params
}

func (tc *testConsensus) Params() *dagconfig.Params {
	return tc.params
}

func (tc *testConsensus) DatabaseContext() model.DBManager {
	return tc.databaseContext
}

func (tc *testConsensus) UTXOStore() model.UTXOStore {
	return tc.utxoStore
}

func (tc *testConsensus) DomainRecordStore() model.DomainRecordStore {
	return tc.domainRecordStore
}

func (tc *testConsensus) ConsensusStateStore() model.ConsensusStateStore {
	return tc.consensusStateStore
}

func (tc *testConsensus) TransactionValidator() model.TransactionValidator {
	return tc.transactionValidator
}

func (tc *testConsensus) ConsensusStateManager() model.ConsensusStateManager {
	return tc.consensusStateManager
}

func (tc *testConsensus) BlockBuilder() model.BlockBuilder {
	return tc.blockBuilder
}

func (tc *testConsensus) BlockValidator() model.BlockValidator {
	return tc.blockValidator
}

func (tc *testConsensus) AddBlock(transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error) {

	block, invalidTransactions, err := tc.BuildBlock(transactions)
	if err != nil {
		return nil, nil, err
	}

	_, err = tc.ValidateAndInsertBlock(block)
	if err != nil {
		return nil, nil, err
	}
	return block, invalidTransactions, nil
}
