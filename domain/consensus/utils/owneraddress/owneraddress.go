// Package owneraddress encodes claim owners as human readable bech32
// addresses, prefixed by the network they belong to.
package owneraddress

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// ErrWrongPrefix indicates an address that belongs to a different network
var ErrWrongPrefix = errors.New("address has the wrong prefix")

// Encode returns the address of owner on the network with the given prefix
func Encode(owner externalapi.DomainPublicKey, prefix string) (string, error) {
	converted, err := bech32.ConvertBits(owner[:], 8, 5, true)
	if err != nil {
		return "", errors.WithStack(err)
	}
	address, err := bech32.Encode(prefix, converted)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return address, nil
}

// Decode parses address and returns the owner it encodes. The address must
// carry expectedPrefix.
func Decode(address string, expectedPrefix string) (externalapi.DomainPublicKey, error) {
	var owner externalapi.DomainPublicKey

	prefix, data, err := bech32.Decode(address)
	if err != nil {
		return owner, errors.Wrapf(err, "couldn't decode address %s", address)
	}
	if prefix != expectedPrefix {
		return owner, errors.Wrapf(ErrWrongPrefix, "expected prefix %s but got %s", expectedPrefix, prefix)
	}

	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return owner, errors.Wrapf(err, "couldn't decode address %s", address)
	}
	if len(converted) != externalapi.DomainPublicKeySize {
		return owner, errors.Errorf("address %s encodes %d bytes while an owner is %d bytes",
			address, len(converted), externalapi.DomainPublicKeySize)
	}
	copy(owner[:], converted)
	return owner, nil
}
