package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/kaspadns/domain/consensus/utils/owneraddress"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/signing"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		os.Exit(1)
	}

	err = run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(cfg *configFlags) error {
	mnemonic := cfg.Mnemonic
	if mnemonic == "" {
		var err error
		mnemonic, err = createMnemonic()
		if err != nil {
			return err
		}
	}

	passphrase := ""
	if cfg.WithPassphrase {
		var err error
		passphrase, err = getPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
	}

	keyPair, err := keyPairFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return err
	}
	publicKey, err := signing.PublicKey(keyPair)
	if err != nil {
		return err
	}
	address, err := owneraddress.Encode(publicKey, cfg.NetParams().Prefix)
	if err != nil {
		return err
	}
	privateKey := keyPair.SerializePrivateKey()
	if privateKey == nil {
		return errors.New("couldn't serialize the private key")
	}

	fmt.Printf("Mnemonic:\t%s\n", mnemonic)
	fmt.Printf("Private key:\t%x\n", privateKey[:])
	fmt.Printf("Public key:\t%s\n", publicKey)
	fmt.Printf("Address:\t%s\n", address)
	return nil
}
