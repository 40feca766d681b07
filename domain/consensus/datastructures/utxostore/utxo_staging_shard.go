package utxostore

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
)

type utxoStagingShard struct {
	store    *utxoStore
	toAdd    map[externalapi.DomainOutpoint]externalapi.UTXOEntry
	toRemove map[externalapi.DomainOutpoint]struct{}
}

func (us *utxoStore) stagingShard(stagingArea *model.StagingArea) *utxoStagingShard {
	return stagingArea.GetOrCreateShard("UTXOStore", func() model.StagingShard {
		return &utxoStagingShard{
			store:    us,
			toAdd:    make(map[externalapi.DomainOutpoint]externalapi.UTXOEntry),
			toRemove: make(map[externalapi.DomainOutpoint]struct{}),
		}
	}).(*utxoStagingShard)
}

func (uss *utxoStagingShard) Commit(dbTx model.DBTransaction) error {
	for outpoint := range uss.toRemove {
		key, err := uss.store.outpointAsKey(&outpoint)
		if err != nil {
			return err
		}
		err = dbTx.Delete(key)
		if err != nil {
			return err
		}
		uss.store.cache.Remove(&outpoint)
	}

	for outpoint, entry := range uss.toAdd {
		key, err := uss.store.outpointAsKey(&outpoint)
		if err != nil {
			return err
		}
		entryBytes, err := utxo.SerializeUTXOEntry(entry)
		if err != nil {
			return err
		}
		err = dbTx.Put(key, entryBytes)
		if err != nil {
			return err
		}
		uss.store.cache.Add(&outpoint, entry)
	}

	return nil
}

func (uss *utxoStagingShard) isStaged() bool {
	return len(uss.toAdd) != 0 || len(uss.toRemove) != 0
}
