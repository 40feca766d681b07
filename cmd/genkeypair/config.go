package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/kaspadns/infrastructure/config"
)

type configFlags struct {
	Mnemonic       string `long:"mnemonic" short:"m" description:"Derive the key pair from this BIP-39 mnemonic instead of generating a new one"`
	WithPassphrase bool   `long:"with-passphrase" short:"p" description:"Prompt for a BIP-39 passphrase to derive the key pair with"`
	config.NetworkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
