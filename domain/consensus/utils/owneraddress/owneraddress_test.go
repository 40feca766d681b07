package owneraddress

import (
	"strings"
	"testing"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
	"github.com/pkg/errors"
)

func TestEncodeDecode(t *testing.T) {
	owner := externalapi.DomainPublicKey{0x01, 0x02, 0x03, 0xff}

	for _, params := range []*dagconfig.Params{&dagconfig.MainnetParams, &dagconfig.TestnetParams,
		&dagconfig.SimnetParams, &dagconfig.DevnetParams} {

		address, err := Encode(owner, params.Prefix)
		if err != nil {
			t.Fatalf("TestEncodeDecode: %s: Encode: %s", params.Name, err)
		}
		if !strings.HasPrefix(address, params.Prefix+"1") {
			t.Fatalf("TestEncodeDecode: %s: address %s doesn't start with its prefix", params.Name, address)
		}

		decoded, err := Decode(address, params.Prefix)
		if err != nil {
			t.Fatalf("TestEncodeDecode: %s: Decode: %s", params.Name, err)
		}
		if decoded != owner {
			t.Fatalf("TestEncodeDecode: %s: expected %s, got %s", params.Name, owner, decoded)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	owner := externalapi.DomainPublicKey{0xaa}
	address, err := Encode(owner, dagconfig.SimnetParams.Prefix)
	if err != nil {
		t.Fatalf("TestDecodeErrors: Encode: %s", err)
	}

	_, err = Decode(address, dagconfig.MainnetParams.Prefix)
	if !errors.Is(err, ErrWrongPrefix) {
		t.Fatalf("TestDecodeErrors: expected ErrWrongPrefix, got %v", err)
	}

	corrupted := address[:len(address)-1] + "q"
	if corrupted == address {
		corrupted = address[:len(address)-1] + "p"
	}
	_, err = Decode(corrupted, dagconfig.SimnetParams.Prefix)
	if err == nil {
		t.Fatalf("TestDecodeErrors: a corrupted checksum was accepted")
	}

	zeroAddress, err := Encode(externalapi.DomainPublicKey{}, dagconfig.SimnetParams.Prefix)
	if err != nil {
		t.Fatalf("TestDecodeErrors: Encode: %s", err)
	}
	if _, err := Decode(zeroAddress, dagconfig.SimnetParams.Prefix); err != nil {
		t.Fatalf("TestDecodeErrors: the zero owner should round trip: %s", err)
	}
}
