package consensusstatestore

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
)

type consensusStateStagingShard struct {
	store            *consensusStateStore
	stagedHeadHeight *uint64
}

func (css *consensusStateStore) stagingShard(stagingArea *model.StagingArea) *consensusStateStagingShard {
	return stagingArea.GetOrCreateShard("ConsensusStateStore", func() model.StagingShard {
		return &consensusStateStagingShard{
			store:            css,
			stagedHeadHeight: nil,
		}
	}).(*consensusStateStagingShard)
}

func (csss *consensusStateStagingShard) Commit(dbTx model.DBTransaction) error {
	if csss.stagedHeadHeight == nil {
		return nil
	}

	err := dbTx.Put(headHeightKey, serializeHeadHeight(*csss.stagedHeadHeight))
	if err != nil {
		return err
	}
	csss.store.headHeightCache = csss.stagedHeadHeight
	return nil
}

func (csss *consensusStateStagingShard) isStaged() bool {
	return csss.stagedHeadHeight != nil
}
