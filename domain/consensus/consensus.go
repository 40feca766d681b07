package consensus

import (
	"sync"

	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
	"github.com/pkg/errors"
)

// Consensus maintains the current core state of the node
type Consensus interface {
	BuildBlock(transactions []*externalapi.DomainTransaction) (
		*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error)
	ValidateAndInsertBlock(block *externalapi.DomainBlock) ([]*externalapi.TransactionSummary, error)

	AddGenesisUTXO(outpoint *externalapi.DomainOutpoint, amount uint64, claim externalapi.Claim) error

	GetDomainRecord(name string) (*externalapi.DomainRecord, error)
	GetDomainRecords() ([]*externalapi.DomainRecord, error)
	GetUTXOEntry(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, error)
	HeadHeight() (uint64, error)
	DomainRecordsCommitment() (*externalapi.DomainHash, error)
}

type consensus struct {
	lock            *sync.Mutex
	databaseContext model.DBManager

	blockBuilder          model.BlockBuilder
	blockValidator        model.BlockValidator
	consensusStateManager model.ConsensusStateManager
	transactionValidator  model.TransactionValidator

	utxoStore           model.UTXOStore
	domainRecordStore   model.DomainRecordStore
	consensusStateStore model.ConsensusStateStore
}

// BuildBlock builds a block on top of the current head out of the given
// transactions. Rejected transactions are left out of the block.
func (s *consensus) BuildBlock(transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error) {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.blockBuilder.BuildBlock(transactions)
}

// ValidateAndInsertBlock validates the given block and, if valid, applies it
// to the current state
func (s *consensus) ValidateAndInsertBlock(block *externalapi.DomainBlock) ([]*externalapi.TransactionSummary, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	summaries, err := s.blockValidator.ValidateBlockTransactions(block)
	if err != nil {
		return nil, err
	}

	err = s.consensusStateManager.ApplyBlock(block)
	if err != nil {
		return nil, err
	}

	log.Infof("Inserted block %d with %d transactions", block.Height, len(block.Transactions))
	return summaries, nil
}

// AddGenesisUTXO seeds the ledger with an output, as if it was created
// before the first block. It's only allowed before any block was applied.
func (s *consensus) AddGenesisUTXO(outpoint *externalapi.DomainOutpoint, amount uint64, claim externalapi.Claim) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stagingArea := model.NewStagingArea()
	headHeight, err := s.consensusStateStore.HeadHeight(s.databaseContext, stagingArea)
	if err != nil {
		return err
	}
	if headHeight != 0 {
		return errors.Errorf("cannot add a genesis output at head height %d", headHeight)
	}

	s.utxoStore.StageAdd(stagingArea, outpoint, utxo.NewUTXOEntry(amount, claim, 0))
	if domainClaim, ok := claim.(*externalapi.ClaimDomain); ok {
		s.domainRecordStore.Stage(stagingArea, &externalapi.DomainRecord{
			Name:                  domainClaim.Name,
			Value:                 domainClaim.Value,
			Owner:                 domainClaim.Owner,
			State:                 domainClaim.State,
			Amount:                amount,
			LastUpdateOutpoint:    *outpoint,
			LastUpdateBlockHeight: 0,
		})
	}

	dbTx, err := s.databaseContext.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	err = stagingArea.Commit(dbTx)
	if err != nil {
		return err
	}
	return dbTx.Commit()
}

func (s *consensus) GetDomainRecord(name string) (*externalapi.DomainRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.domainRecordStore.DomainRecord(s.databaseContext, model.NewStagingArea(), name)
}

func (s *consensus) GetDomainRecords() ([]*externalapi.DomainRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.domainRecordStore.AllDomainRecords(s.databaseContext)
}

func (s *consensus) GetUTXOEntry(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.utxoStore.UTXOEntry(s.databaseContext, model.NewStagingArea(), outpoint)
}

func (s *consensus) HeadHeight() (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.consensusStateStore.HeadHeight(s.databaseContext, model.NewStagingArea())
}

func (s *consensus) DomainRecordsCommitment() (*externalapi.DomainHash, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.domainRecordStore.Commitment(s.databaseContext, model.NewStagingArea())
}
