package model

// ConsensusStateStore represents a store for the current consensus state
type ConsensusStateStore interface {
	StageHeadHeight(stagingArea *StagingArea, headHeight uint64)
	IsStaged(stagingArea *StagingArea) bool
	HeadHeight(dbContext DBReader, stagingArea *StagingArea) (uint64, error)
}
