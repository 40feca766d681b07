package domainnames

import (
	"math/bits"
	"strings"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/constants"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
)

// MaxLabelLength is the maximum length of a single dot-separated label
const MaxLabelLength = 63

// IsValidName returns whether name is a sequence of dot-separated labels,
// each made of lowercase letters, digits and inner hyphens
func IsValidName(name string, params *dagconfig.Params) bool {
	if len(name) == 0 || len(name) > params.MaxDomainNameLength {
		return false
	}
	for _, label := range strings.Split(name, ".") {
		if !isValidLabel(label) {
			return false
		}
	}
	return true
}

func isValidLabel(label string) bool {
	if len(label) == 0 || len(label) > MaxLabelLength {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		isLetter := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if !isLetter && !isDigit && c != '-' {
			return false
		}
	}
	return true
}

// IsValidValue returns whether value fits in a domain claim
func IsValidValue(value []byte, params *dagconfig.Params) bool {
	return len(value) <= params.MaxDomainValueLength
}

// IsValidState returns whether state is a known domain state
func IsValidState(state externalapi.DomainState) bool {
	return state == externalapi.DomainStateNotInAuction ||
		state == externalapi.DomainStatePossiblyInAuction
}

// IsValidAmount returns whether amount may be locked in a domain claim
func IsValidAmount(amount uint64, params *dagconfig.Params) bool {
	return amount >= params.MinDomainClaimAmount && amount <= constants.MaxSompi
}

// IsValidBidPrice returns whether bid outbids previousBid by at least
// MinBidIncreasePercent. If it does, it also returns the amount owed
// back to the outbid party: the previous bid plus BidIncrementRefundPercent
// of the increment. The rest of the increment is burned as fee.
func IsValidBidPrice(previousBid uint64, bid uint64, params *dagconfig.Params) (amountBack uint64, ok bool) {
	if bid <= previousBid || bid > constants.MaxSompi {
		return 0, false
	}

	if lessThan128(mul128(bid, 100), mul128(previousBid, 100+params.MinBidIncreasePercent)) {
		return 0, false
	}

	increment := bid - previousBid
	return previousBid + percentOf(increment, params.BidIncrementRefundPercent), true
}

// percentOf returns floor(amount*percent/100) without overflowing for
// amounts up to MaxSompi
func percentOf(amount uint64, percent uint64) uint64 {
	return amount/100*percent + amount%100*percent/100
}

type uint128 struct {
	hi, lo uint64
}

func mul128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi: hi, lo: lo}
}

func lessThan128(a, b uint128) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	return a.lo < b.lo
}
