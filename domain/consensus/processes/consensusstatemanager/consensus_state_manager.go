package consensusstatemanager

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
)

// consensusStateManager manages the node's consensus state: the UTXO set,
// the domain records and the height of the last applied block
type consensusStateManager struct {
	databaseContext model.DBManager

	utxoStore           model.UTXOStore
	domainRecordStore   model.DomainRecordStore
	consensusStateStore model.ConsensusStateStore
}

// New instantiates a new ConsensusStateManager
func New(
	databaseContext model.DBManager,
	utxoStore model.UTXOStore,
	domainRecordStore model.DomainRecordStore,
	consensusStateStore model.ConsensusStateStore) model.ConsensusStateManager {

	return &consensusStateManager{
		databaseContext: databaseContext,

		utxoStore:           utxoStore,
		domainRecordStore:   domainRecordStore,
		consensusStateStore: consensusStateStore,
	}
}

// NextBlockHeight returns the height of the block to be applied next
func (csm *consensusStateManager) NextBlockHeight() (uint64, error) {
	headHeight, err := csm.consensusStateStore.HeadHeight(csm.databaseContext, model.NewStagingArea())
	if err != nil {
		return 0, err
	}
	return headHeight + 1, nil
}
