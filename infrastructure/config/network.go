package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet               bool   `long:"testnet" description:"Use the test network"`
	Simnet                bool   `long:"simnet" description:"Use the simulation test network"`
	Devnet                bool   `long:"devnet" description:"Use the development test network"`
	OverrideDAGParamsFile string `long:"override-dag-params-file" description:"Overrides domain params (allowed only on devnet)"`

	ActiveNetParams *dagconfig.Params
}

type overrideDAGParamsConfig struct {
	TargetTimePerBlockInMilliSeconds *int64  `json:"targetTimePerBlockInMilliSeconds"`
	MaxDomainNameLength              *int    `json:"maxDomainNameLength"`
	MaxDomainValueLength             *int    `json:"maxDomainValueLength"`
	MinDomainClaimAmount             *uint64 `json:"minDomainClaimAmount"`
	DomainAuctionDuration            *uint64 `json:"domainAuctionDuration"`
	DomainExpirationDuration         *uint64 `json:"domainExpirationDuration"`
	MinBidIncreasePercent            *uint64 `json:"minBidIncreasePercent"`
	BidIncrementRefundPercent        *uint64 `json:"bidIncrementRefundPercent"`
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Default net is mainnet
	selectedParams := dagconfig.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		selectedParams = dagconfig.TestnetParams
	}
	if networkFlags.Simnet {
		numNets++
		selectedParams = dagconfig.SimnetParams
	}
	if networkFlags.Devnet {
		numNets++
		selectedParams = dagconfig.DevnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, simnet, devnet, etc.) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	// The selected params are a copy, so overriding them never touches
	// the registered networks
	networkFlags.ActiveNetParams = &selectedParams

	err := networkFlags.overrideDAGParams()
	if err != nil {
		return err
	}

	return networkFlags.ActiveNetParams.Validate()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideDAGParams() error {

	if networkFlags.OverrideDAGParamsFile == "" {
		return nil
	}

	if !networkFlags.Devnet {
		return errors.Errorf("override-dag-params-file is allowed only when using devnet")
	}

	overrideDAGParamsFile, err := os.Open(networkFlags.OverrideDAGParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideDAGParamsFile.Close()

	decoder := json.NewDecoder(overrideDAGParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideDAGParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse %s", networkFlags.OverrideDAGParamsFile)
	}

	params := networkFlags.ActiveNetParams

	if config.TargetTimePerBlockInMilliSeconds != nil {
		params.TargetTimePerBlock = time.Duration(*config.TargetTimePerBlockInMilliSeconds) * time.Millisecond
	}

	if config.MaxDomainNameLength != nil {
		params.MaxDomainNameLength = *config.MaxDomainNameLength
	}

	if config.MaxDomainValueLength != nil {
		params.MaxDomainValueLength = *config.MaxDomainValueLength
	}

	if config.MinDomainClaimAmount != nil {
		params.MinDomainClaimAmount = *config.MinDomainClaimAmount
	}

	if config.DomainAuctionDuration != nil {
		params.DomainAuctionDuration = *config.DomainAuctionDuration
	}

	if config.DomainExpirationDuration != nil {
		params.DomainExpirationDuration = *config.DomainExpirationDuration
	}

	if config.MinBidIncreasePercent != nil {
		params.MinBidIncreasePercent = *config.MinBidIncreasePercent
	}

	if config.BidIncrementRefundPercent != nil {
		params.BidIncrementRefundPercent = *config.BidIncrementRefundPercent
	}

	return nil
}
