// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"time"

	"github.com/pkg/errors"
)

// Net represents which network a message belongs to.
type Net uint32

// Constants used to indicate the message network. They can also be used
// to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// Mainnet represents the main network.
	Mainnet Net = 0x3ddcf71d

	// Testnet represents the test network.
	Testnet Net = 0xddb8af8f

	// Simnet represents the simulation test network.
	Simnet Net = 0x374dcf1c

	// Devnet represents the development test network.
	Devnet Net = 0x732d87e1
)

const (
	mainnetTargetTimePerBlock        = 30 * time.Second
	year                             = 365 * 24 * time.Hour
	defaultMaxDomainNameLength       = 128
	defaultMaxDomainValueLength      = 1024
	defaultMinBidIncreasePercent     = 10
	defaultBidIncrementRefundPercent = 50
)

// blocksPer returns how many blocks are expected to be produced during
// duration, given the target time per block
func blocksPer(duration time.Duration, targetTimePerBlock time.Duration) uint64 {
	return uint64(duration / targetTimePerBlock)
}

// Params defines a network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net Net

	// Prefix is the human-readable part for Bech32 encoded owner addresses
	Prefix string

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// MaxDomainNameLength is the maximum length of a claimed name, in bytes
	MaxDomainNameLength int

	// MaxDomainValueLength is the maximum size of the value attached to a
	// claimed name
	MaxDomainValueLength int

	// MinDomainClaimAmount is the minimum amount, in sompi, a domain claim
	// output must lock
	MinDomainClaimAmount uint64

	// DomainAuctionDuration is the number of blocks after a bid during
	// which the name can be outbid.
	DomainAuctionDuration uint64

	// DomainExpirationDuration is the number of blocks after its last
	// update at which a domain claim lapses and the name can be claimed
	// anew. On mainnet it is one block-year.
	DomainExpirationDuration uint64

	// MinBidIncreasePercent is the minimum increase, in percent of the
	// previous bid, a new bid must offer.
	MinBidIncreasePercent uint64

	// BidIncrementRefundPercent is the part of a bid's increment over the
	// previous bid, in percent, that is paid to the outbid owner on top of
	// their bid. The remaining part of the increment is burned as fee.
	BidIncrementRefundPercent uint64
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:                      "kaspadns-mainnet",
	Net:                       Mainnet,
	Prefix:                    "kaspadns",
	TargetTimePerBlock:        mainnetTargetTimePerBlock,
	MaxDomainNameLength:       defaultMaxDomainNameLength,
	MaxDomainValueLength:      defaultMaxDomainValueLength,
	MinDomainClaimAmount:      100_000_000,
	DomainAuctionDuration:     blocksPer(3*24*time.Hour, mainnetTargetTimePerBlock),
	DomainExpirationDuration:  blocksPer(year, mainnetTargetTimePerBlock),
	MinBidIncreasePercent:     defaultMinBidIncreasePercent,
	BidIncrementRefundPercent: defaultBidIncrementRefundPercent,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:                      "kaspadns-testnet",
	Net:                       Testnet,
	Prefix:                    "kaspadnstest",
	TargetTimePerBlock:        mainnetTargetTimePerBlock,
	MaxDomainNameLength:       defaultMaxDomainNameLength,
	MaxDomainValueLength:      defaultMaxDomainValueLength,
	MinDomainClaimAmount:      1000,
	DomainAuctionDuration:     blocksPer(6*time.Hour, mainnetTargetTimePerBlock),
	DomainExpirationDuration:  blocksPer(30*24*time.Hour, mainnetTargetTimePerBlock),
	MinBidIncreasePercent:     defaultMinBidIncreasePercent,
	BidIncrementRefundPercent: defaultBidIncrementRefundPercent,
}

// SimnetParams defines the network parameters for the simulation test
// network. Its auction and expiration windows are a handful of blocks so
// that a name's whole lifecycle fits in a test.
var SimnetParams = Params{
	Name:                      "kaspadns-simnet",
	Net:                       Simnet,
	Prefix:                    "kaspadnssim",
	TargetTimePerBlock:        time.Millisecond,
	MaxDomainNameLength:       defaultMaxDomainNameLength,
	MaxDomainValueLength:      defaultMaxDomainValueLength,
	MinDomainClaimAmount:      1,
	DomainAuctionDuration:     3,
	DomainExpirationDuration:  10,
	MinBidIncreasePercent:     defaultMinBidIncreasePercent,
	BidIncrementRefundPercent: defaultBidIncrementRefundPercent,
}

// DevnetParams defines the network parameters for the development network.
var DevnetParams = Params{
	Name:                      "kaspadns-devnet",
	Net:                       Devnet,
	Prefix:                    "kaspadnsdev",
	TargetTimePerBlock:        time.Second,
	MaxDomainNameLength:       defaultMaxDomainNameLength,
	MaxDomainValueLength:      defaultMaxDomainValueLength,
	MinDomainClaimAmount:      1,
	DomainAuctionDuration:     blocksPer(10*time.Minute, time.Second),
	DomainExpirationDuration:  blocksPer(24*time.Hour, time.Second),
	MinBidIncreasePercent:     defaultMinBidIncreasePercent,
	BidIncrementRefundPercent: defaultBidIncrementRefundPercent,
}

// Validate checks that the domain parameters are consistent with each other
func (p *Params) Validate() error {
	if p.DomainAuctionDuration == 0 {
		return errors.Errorf("%s: the domain auction duration must be positive", p.Name)
	}
	if p.DomainExpirationDuration <= p.DomainAuctionDuration {
		return errors.Errorf("%s: the domain expiration duration (%d) must be longer than "+
			"the auction duration (%d)", p.Name, p.DomainExpirationDuration, p.DomainAuctionDuration)
	}
	if p.MinBidIncreasePercent == 0 {
		return errors.Errorf("%s: the minimum bid increase must be positive", p.Name)
	}
	if p.BidIncrementRefundPercent > 100 {
		return errors.Errorf("%s: the bid increment refund cannot be more than 100%%", p.Name)
	}
	if p.MaxDomainNameLength <= 0 {
		return errors.Errorf("%s: the maximum domain name length must be positive", p.Name)
	}
	if p.MaxDomainValueLength < 0 {
		return errors.Errorf("%s: the maximum domain value length cannot be negative", p.Name)
	}
	return nil
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet describes an error where the parameters for a network
	// were requested by a name that was never registered.
	ErrUnknownNet = errors.New("unknown network")
)

var (
	registeredNets = make(map[Net]struct{})
	netsByName     = make(map[string]*Params)
)

// Register registers the network parameters for a network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	if _, ok := netsByName[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	netsByName[params.Name] = params

	return nil
}

// ParamsByName returns the registered parameters of the network called name
func ParamsByName(name string) (*Params, error) {
	params, ok := netsByName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNet, "network %s", name)
	}
	return params, nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&SimnetParams)
	mustRegister(&DevnetParams)
}
