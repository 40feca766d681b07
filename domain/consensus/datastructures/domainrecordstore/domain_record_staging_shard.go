package domainrecordstore

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
)

type domainRecordStagingShard struct {
	store    *domainRecordStore
	toAdd    map[string]*externalapi.DomainRecord
	toDelete map[string]struct{}
}

func (drs *domainRecordStore) stagingShard(stagingArea *model.StagingArea) *domainRecordStagingShard {
	return stagingArea.GetOrCreateShard("DomainRecordStore", func() model.StagingShard {
		return &domainRecordStagingShard{
			store:    drs,
			toAdd:    make(map[string]*externalapi.DomainRecord),
			toDelete: make(map[string]struct{}),
		}
	}).(*domainRecordStagingShard)
}

func (drss *domainRecordStagingShard) Commit(dbTx model.DBTransaction) error {
	if !drss.isStaged() {
		return nil
	}

	// The commitment is computed against the records as they were
	// before this shard is written.
	commitment, err := drss.store.stagedCommitment(dbTx, drss)
	if err != nil {
		return err
	}

	for name := range drss.toDelete {
		err := dbTx.Delete(drss.store.nameAsKey(name))
		if err != nil {
			return err
		}
	}

	for name, record := range drss.toAdd {
		recordBytes, err := utxo.SerializeDomainRecord(record)
		if err != nil {
			return err
		}
		err = dbTx.Put(drss.store.nameAsKey(name), recordBytes)
		if err != nil {
			return err
		}
	}

	return dbTx.Put(commitmentKey, commitment.Serialize())
}

func (drss *domainRecordStagingShard) isStaged() bool {
	return len(drss.toAdd) != 0 || len(drss.toDelete) != 0
}
