package ruleerrors

import (
	"errors"
	"testing"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	pkgerrors "github.com/pkg/errors"
)

func TestNewErrMissingTxOut(t *testing.T) {
	outer := NewErrMissingTxOut([]*externalapi.DomainOutpoint{{TransactionID: externalapi.DomainTransactionID{}, Index: 5}})
	expectedOuterErr := "ErrMissingTxOut: missing the following outpoint: " +
		"[(0000000000000000000000000000000000000000000000000000000000000000: 5)]"
	inner := &ErrMissingTxOut{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrMissingTxOut: Outer should contain ErrMissingTxOut in it")
	}

	if len(inner.MissingOutpoints) != 1 {
		t.Fatalf("TestNewErrMissingTxOut: Expected len(inner.MissingOutpoints) 1, found: %d", len(inner.MissingOutpoints))
	}
	if inner.MissingOutpoints[0].Index != 5 {
		t.Fatalf("TestNewErrMissingTxOut: Expected 5. found: %d", inner.MissingOutpoints[0].Index)
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestNewErrMissingTxOut: Outer should contain RuleError in it")
	}
	if rule.message != "ErrMissingTxOut" {
		t.Fatalf("TestNewErrMissingTxOut: Expected message = 'ErrMissingTxOut', found: '%s'", rule.message)
	}
	if rule.Category() != CategoryExistence {
		t.Fatalf("TestNewErrMissingTxOut: Expected category %s, found: %s", CategoryExistence, rule.Category())
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrMissingTxOut: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestNewErrMissingBidRefund(t *testing.T) {
	owner := externalapi.DomainPublicKey{0xaa}
	outer := NewErrMissingBidRefund(owner, 110)

	inner := &ErrMissingBidRefund{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrMissingBidRefund: Outer should contain ErrMissingBidRefund in it")
	}
	if inner.Owner != owner || inner.Amount != 110 {
		t.Fatalf("TestNewErrMissingBidRefund: unexpected inner error %+v", inner)
	}

	category, ok := CategoryOf(outer)
	if !ok {
		t.Fatal("TestNewErrMissingBidRefund: Outer should contain RuleError in it")
	}
	if category != CategoryEconomic {
		t.Fatalf("TestNewErrMissingBidRefund: Expected category %s, found: %s", CategoryEconomic, category)
	}
}

func TestWrappedRuleErrors(t *testing.T) {
	tests := []struct {
		err              error
		expectedCategory Category
	}{
		{ErrDuplicateDomainOutput, CategoryStructural},
		{ErrDomainRecordNotFound, CategoryExistence},
		{ErrDomainUnavailable, CategoryLifecycle},
		{ErrInvalidBidPrice, CategoryEconomic},
		{ErrMissingSignature, CategoryAuthorization},
	}

	for _, test := range tests {
		wrapped := pkgerrors.Wrapf(test.err, "context for %s", test.err)
		if !errors.Is(wrapped, test.err) {
			t.Fatalf("TestWrappedRuleErrors: %s: wrapped error should be %s", wrapped, test.err)
		}
		if !IsRuleError(wrapped) {
			t.Fatalf("TestWrappedRuleErrors: %s: wrapped error should be a rule error", wrapped)
		}
		category, ok := CategoryOf(wrapped)
		if !ok || category != test.expectedCategory {
			t.Fatalf("TestWrappedRuleErrors: %s: Expected category %s, found: %s", wrapped,
				test.expectedCategory, category)
		}
	}

	if IsRuleError(pkgerrors.New("not a rule error")) {
		t.Fatal("TestWrappedRuleErrors: a plain error should not be a rule error")
	}
	if _, ok := CategoryOf(pkgerrors.New("not a rule error")); ok {
		t.Fatal("TestWrappedRuleErrors: a plain error should not have a category")
	}
}

func TestNewErrInvalidTransactionsInNewBlock(t *testing.T) {
	transactionID := &externalapi.DomainTransactionID{}
	outer := NewErrInvalidTransactionsInNewBlock([]InvalidTransaction{{
		Transaction:   &externalapi.DomainTransaction{Fee: 1337},
		TransactionID: transactionID,
		Error:         ErrNoTxInputs,
	}})
	expectedOuterErr := "ErrInvalidTransactionsInNewBlock: [(" + transactionID.String() + ": ErrNoTxInputs)]"
	inner := &ErrInvalidTransactionsInNewBlock{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrInvalidTransactionsInNewBlock: Outer should contain ErrInvalidTransactionsInNewBlock in it")
	}

	if len(inner.InvalidTransactions) != 1 {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: Expected len(inner.InvalidTransactions) 1, found: %d",
			len(inner.InvalidTransactions))
	}
	if inner.InvalidTransactions[0].Error != ErrNoTxInputs {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: Expected ErrNoTxInputs. found: %v", inner.InvalidTransactions[0].Error)
	}
	if inner.InvalidTransactions[0].Transaction.Fee != 1337 {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: Expected 1337. found: %v", inner.InvalidTransactions[0].Transaction.Fee)
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}
