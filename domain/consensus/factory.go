package consensus

import (
	"io/ioutil"
	"os"
	"sync"

	consensusdatabase "github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/datastructures/consensusstatestore"
	"github.com/kaspanet/kaspadns/domain/consensus/datastructures/domainrecordstore"
	"github.com/kaspanet/kaspadns/domain/consensus/datastructures/utxostore"
	"github.com/kaspanet/kaspadns/domain/consensus/processes/blockbuilder"
	"github.com/kaspanet/kaspadns/domain/consensus/processes/blockvalidator"
	"github.com/kaspanet/kaspadns/domain/consensus/processes/consensusstatemanager"
	"github.com/kaspanet/kaspadns/domain/consensus/processes/transactionvalidator"
	"github.com/kaspanet/kaspadns/infrastructure/db/database"
	"github.com/kaspanet/kaspadns/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(config *Config, db database.Database) (Consensus, error)
	NewTestConsensus(config *Config, testName string) (
		tc TestConsensus, teardown func(keepDataDir bool), err error)
}

type factory struct{}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{}
}

// NewConsensus instantiates a new Consensus
func (f *factory) NewConsensus(config *Config, db database.Database) (Consensus, error) {
	return f.newConsensus(config, db)
}

func (f *factory) newConsensus(config *Config, db database.Database) (*consensus, error) {
	err := config.Params.Validate()
	if err != nil {
		return nil, err
	}

	dbManager := consensusdatabase.New(db)

	// Data Structures
	utxoStore := utxostore.New(config.UTXOCacheSize)
	domainRecordStore := domainrecordstore.New()
	consensusStateStore := consensusstatestore.New()

	// Processes
	transactionValidator := transactionvalidator.New(
		domainRecordStore.LedgerView(dbManager),
		&config.Params)
	consensusStateManager := consensusstatemanager.New(
		dbManager,
		utxoStore,
		domainRecordStore,
		consensusStateStore)
	blockBuilder := blockbuilder.New(
		consensusStateManager,
		transactionValidator)
	blockValidator := blockvalidator.New(
		consensusStateManager,
		transactionValidator)

	log.Infof("Consensus for %s initialized", config.Name)

	return &consensus{
		lock:            &sync.Mutex{},
		databaseContext: dbManager,

		blockBuilder:          blockBuilder,
		blockValidator:        blockValidator,
		consensusStateManager: consensusStateManager,
		transactionValidator:  transactionValidator,

		utxoStore:           utxoStore,
		domainRecordStore:   domainRecordStore,
		consensusStateStore: consensusStateStore,
	}, nil
}

// NewTestConsensus instantiates a Consensus over a fresh LevelDB in a
// temporary directory
func (f *factory) NewTestConsensus(config *Config, testName string) (
	tc TestConsensus, teardown func(keepDataDir bool), err error) {

	dataDir, err := ioutil.TempDir("", testName)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	db, err := ldb.NewLevelDB(dataDir, 8)
	if err != nil {
		os.RemoveAll(dataDir)
		return nil, nil, err
	}

	consensusAsImplementation, err := f.newConsensus(config, db)
	if err != nil {
		db.Close()
		os.RemoveAll(dataDir)
		return nil, nil, err
	}

	tstConsensus := &testConsensus{
		consensus: consensusAsImplementation,
		params:    &config.Params,
	}

	teardown = func(keepDataDir bool) {
		db.Close()
		if !keepDataDir {
			err := os.RemoveAll(dataDir)
			if err != nil {
				log.Errorf("Error removing data directory for test consensus: %s", err)
			}
		}
	}
	return tstConsensus, teardown, nil
}
