package main

import (
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/kaspadns/infrastructure/config"
	"github.com/pkg/errors"
)

const appName = "claimreplay"

type configFlags struct {
	BlocksFile string `long:"blocks" short:"f" description:"JSON file of the genesis outputs and blocks to replay" required:"true"`
	Build      bool   `long:"build" description:"Build each block out of its transactions, leaving out rejected ones, instead of validating it as given"`
	KeepData   bool   `long:"keep-data" description:"Keep the replayed ledger in the app directory instead of a temporary one"`
	Profile    string `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65535"`
	config.AppFlags
	config.NetworkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{AppFlags: config.DefaultAppFlags()}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	err = cfg.ResolveAppFlags()
	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	// Validate profile port number
	if cfg.Profile != "" {
		profilePort, err := strconv.Atoi(cfg.Profile)
		if err != nil || profilePort < 1024 || profilePort > 65535 {
			return nil, errors.Errorf("the profile port must be between 1024 and 65535")
		}
	}

	return cfg, nil
}
