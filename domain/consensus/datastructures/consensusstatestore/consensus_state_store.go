package consensusstatestore

import (
	"encoding/binary"

	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/pkg/errors"
)

var headHeightKey = database.MakeBucket(nil).Key([]byte("head-height"))

// consensusStateStore represents a store for the current consensus state
type consensusStateStore struct {
	headHeightCache *uint64
}

// New instantiates a new ConsensusStateStore
func New() model.ConsensusStateStore {
	return &consensusStateStore{}
}

// StageHeadHeight stages the height of the last applied block
func (css *consensusStateStore) StageHeadHeight(stagingArea *model.StagingArea, headHeight uint64) {
	css.stagingShard(stagingArea).stagedHeadHeight = &headHeight
}

func (css *consensusStateStore) IsStaged(stagingArea *model.StagingArea) bool {
	return css.stagingShard(stagingArea).isStaged()
}

// HeadHeight returns the height of the last applied block. A fresh
// ledger, which only holds genesis outputs, is at height 0.
func (css *consensusStateStore) HeadHeight(dbContext model.DBReader, stagingArea *model.StagingArea) (uint64, error) {
	stagingShard := css.stagingShard(stagingArea)

	if stagingShard.stagedHeadHeight != nil {
		return *stagingShard.stagedHeadHeight, nil
	}

	if css.headHeightCache != nil {
		return *css.headHeightCache, nil
	}

	headHeightBytes, err := dbContext.Get(headHeightKey)
	if database.IsNotFoundError(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	headHeight, err := deserializeHeadHeight(headHeightBytes)
	if err != nil {
		return 0, err
	}
	css.headHeightCache = &headHeight
	return headHeight, nil
}

func serializeHeadHeight(headHeight uint64) []byte {
	headHeightBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(headHeightBytes, headHeight)
	return headHeightBytes
}

func deserializeHeadHeight(headHeightBytes []byte) (uint64, error) {
	if len(headHeightBytes) != 8 {
		return 0, errors.Errorf("head height is expected to be 8 bytes long but got %d", len(headHeightBytes))
	}
	return binary.LittleEndian.Uint64(headHeightBytes), nil
}
