package utxostore

import (
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxolrucache"
	"github.com/pkg/errors"
)

var utxoSetBucket = database.MakeBucket([]byte("utxo-set"))

// utxoStore represents a store of unspent transaction outputs
type utxoStore struct {
	cache *utxolrucache.LRUCache
}

// New instantiates a new UTXOStore
func New(cacheSize int) model.UTXOStore {
	return &utxoStore{
		cache: utxolrucache.New(cacheSize),
	}
}

// StageAdd stages the creation of the output at outpoint
func (us *utxoStore) StageAdd(stagingArea *model.StagingArea, outpoint *externalapi.DomainOutpoint,
	entry externalapi.UTXOEntry) {

	stagingShard := us.stagingShard(stagingArea)
	delete(stagingShard.toRemove, *outpoint)
	stagingShard.toAdd[*outpoint] = entry
}

// StageRemove stages the spending of the output at outpoint
func (us *utxoStore) StageRemove(stagingArea *model.StagingArea, outpoint *externalapi.DomainOutpoint) {
	stagingShard := us.stagingShard(stagingArea)
	delete(stagingShard.toAdd, *outpoint)
	stagingShard.toRemove[*outpoint] = struct{}{}
}

func (us *utxoStore) IsStaged(stagingArea *model.StagingArea) bool {
	return us.stagingShard(stagingArea).isStaged()
}

// UTXOEntry gets the entry of the unspent output at outpoint. It returns
// database.ErrNotFound if there is no such output.
func (us *utxoStore) UTXOEntry(dbContext model.DBReader, stagingArea *model.StagingArea,
	outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, error) {

	stagingShard := us.stagingShard(stagingArea)

	if _, ok := stagingShard.toRemove[*outpoint]; ok {
		return nil, errors.Wrapf(database.ErrNotFound, "outpoint %s is staged for removal", outpoint)
	}
	if entry, ok := stagingShard.toAdd[*outpoint]; ok {
		return entry, nil
	}

	if entry, ok := us.cache.Get(outpoint); ok {
		return entry, nil
	}

	key, err := us.outpointAsKey(outpoint)
	if err != nil {
		return nil, err
	}
	entryBytes, err := dbContext.Get(key)
	if err != nil {
		return nil, err
	}

	entry, err := utxo.DeserializeUTXOEntry(entryBytes)
	if err != nil {
		return nil, err
	}
	us.cache.Add(outpoint, entry)
	return entry, nil
}

// HasUTXOEntry returns whether there's an unspent output at outpoint
func (us *utxoStore) HasUTXOEntry(dbContext model.DBReader, stagingArea *model.StagingArea,
	outpoint *externalapi.DomainOutpoint) (bool, error) {

	stagingShard := us.stagingShard(stagingArea)

	if _, ok := stagingShard.toRemove[*outpoint]; ok {
		return false, nil
	}
	if _, ok := stagingShard.toAdd[*outpoint]; ok {
		return true, nil
	}

	if us.cache.Has(outpoint) {
		return true, nil
	}

	key, err := us.outpointAsKey(outpoint)
	if err != nil {
		return false, err
	}
	return dbContext.Has(key)
}

func (us *utxoStore) outpointAsKey(outpoint *externalapi.DomainOutpoint) (model.DBKey, error) {
	outpointBytes, err := utxo.SerializeOutpoint(outpoint)
	if err != nil {
		return nil, err
	}
	return utxoSetBucket.Key(outpointBytes), nil
}
