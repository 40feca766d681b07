package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/signing"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/term"
)

const mnemonicEntropyBits = 256

func createMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", errors.WithStack(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return mnemonic, nil
}

func keyPairFromMnemonic(mnemonic string, passphrase string) (*secp256k1.SchnorrKeyPair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return signing.KeyPairFromSeed(seed)
}

// getPassphrase reads a passphrase from the terminal without echoing it,
// restoring the terminal if interrupted
func getPassphrase(prompt string) (string, error) {
	stdin := int(syscall.Stdin)
	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return "", errors.WithStack(err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		_, ok := <-interrupt
		if ok {
			_ = term.Restore(stdin, initialTermState)
			os.Exit(1)
		}
	}()
	defer func() {
		signal.Stop(interrupt)
		close(interrupt)
	}()

	fmt.Print(prompt)
	passphrase, err := term.ReadPassword(stdin)
	fmt.Println()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(passphrase), nil
}
