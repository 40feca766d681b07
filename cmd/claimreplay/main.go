package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/kaspanet/kaspadns/domain/consensus"
	"github.com/kaspanet/kaspadns/infrastructure/db/database/ldb"
	"github.com/kaspanet/kaspadns/infrastructure/logger"
	"github.com/kaspanet/kaspadns/util/panics"
	"github.com/kaspanet/kaspadns/util/profiling"
	"github.com/kaspanet/kaspadns/version"
	"github.com/pkg/errors"
)

const levelDBCacheSizeMiB = 64

func main() {
	cfg, err := parseConfig()
	if err != nil {
		os.Exit(1)
	}

	err = cfg.InitLog(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.BackendLog.Close()
	defer panics.HandlePanic(log, nil)

	log.Infof("Version %s", version.Version())

	if cfg.Profile != "" {
		profiling.Start(cfg.Profile, log)
	}

	err = replayFile(cfg)
	if err != nil {
		log.Criticalf("Replay failed: %+v", err)
		logger.BackendLog.Close()
		os.Exit(1)
	}
}

func replayFile(cfg *configFlags) error {
	f, err := readFixture(cfg.BlocksFile)
	if err != nil {
		return err
	}

	dataDir, err := openDataDir(cfg)
	if err != nil {
		return err
	}
	if !cfg.KeepData {
		defer os.RemoveAll(dataDir)
	}

	db, err := ldb.NewLevelDB(dataDir, levelDBCacheSizeMiB)
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := consensus.NewFactory().NewConsensus(consensus.NewConfig(cfg.NetParams()), db)
	if err != nil {
		return err
	}

	r := &replayer{
		consensus: c,
		resolver:  newFixtureResolver(cfg.NetParams().Prefix),
		build:     cfg.Build,
		out:       os.Stdout,
	}
	result, err := r.replay(f)
	if err != nil {
		return err
	}

	log.Infof("Replayed %d blocks: %d accepted, %d rejected, %d transactions rejected",
		len(f.Blocks), result.acceptedBlocks, result.rejectedBlocks, result.rejectedTransactions)
	return nil
}

// openDataDir returns the directory the replayed ledger is kept in. A kept
// ledger must start empty, since genesis outputs may only be seeded before
// the first block.
func openDataDir(cfg *configFlags) (string, error) {
	if !cfg.KeepData {
		dataDir, err := ioutil.TempDir("", appName)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return dataDir, nil
	}

	dataDir := cfg.DataDir(cfg.NetParams().Name)
	entries, err := ioutil.ReadDir(dataDir)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.WithStack(err)
	}
	if len(entries) > 0 {
		return "", errors.Errorf("data directory %s is not empty", dataDir)
	}
	err = os.MkdirAll(dataDir, 0700)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return dataDir, nil
}
