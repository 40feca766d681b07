// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"testing"

	"github.com/pkg/errors"
)

// TestMustRegisterPanic ensures the mustRegister function panics when used to
// register an invalid network.
func TestMustRegisterPanic(t *testing.T) {
	t.Parallel()

	// Setup a defer to catch the expected panic to ensure it actually
	// paniced.
	defer func() {
		if err := recover(); err == nil {
			t.Error("mustRegister did not panic as expected")
		}
	}()

	// Intentionally try to register duplicate params to force a panic.
	mustRegister(&MainnetParams)
}

func TestDefaultParamsAreValid(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &SimnetParams, &DevnetParams} {
		err := params.Validate()
		if err != nil {
			t.Errorf("TestDefaultParamsAreValid: %s: unexpected error: %s", params.Name, err)
		}
	}
}

func TestMainnetExpirationIsOneBlockYear(t *testing.T) {
	// 365 days of 30 second blocks
	const expectedBlocksPerYear = 1_051_200
	if MainnetParams.DomainExpirationDuration != expectedBlocksPerYear {
		t.Fatalf("TestMainnetExpirationIsOneBlockYear: expected %d, got %d",
			expectedBlocksPerYear, MainnetParams.DomainExpirationDuration)
	}
	if MainnetParams.DomainAuctionDuration != 8640 {
		t.Fatalf("TestMainnetExpirationIsOneBlockYear: expected a 3 day auction of 8640 blocks, got %d",
			MainnetParams.DomainAuctionDuration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(params *Params)
		expectError bool
	}{
		{"valid", func(params *Params) {}, false},
		{"zero auction", func(params *Params) { params.DomainAuctionDuration = 0 }, true},
		{"expiration before auction end", func(params *Params) {
			params.DomainExpirationDuration = params.DomainAuctionDuration
		}, true},
		{"no bid increase", func(params *Params) { params.MinBidIncreasePercent = 0 }, true},
		{"refund above increment", func(params *Params) { params.BidIncrementRefundPercent = 101 }, true},
		{"empty names", func(params *Params) { params.MaxDomainNameLength = 0 }, true},
	}

	for _, test := range tests {
		params := SimnetParams
		test.modify(&params)
		err := params.Validate()
		if (err != nil) != test.expectError {
			t.Errorf("TestValidate: %s: expected error: %t, but got %v", test.name, test.expectError, err)
		}
	}
}

func TestParamsByName(t *testing.T) {
	params, err := ParamsByName(SimnetParams.Name)
	if err != nil {
		t.Fatalf("TestParamsByName: unexpected error: %s", err)
	}
	if params != &SimnetParams {
		t.Fatalf("TestParamsByName: expected the simnet params, got %s", params.Name)
	}

	_, err = ParamsByName("banana")
	if !errors.Is(err, ErrUnknownNet) {
		t.Fatalf("TestParamsByName: expected ErrUnknownNet, got %v", err)
	}
}
