package model

import (
	"testing"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
)

func TestNamePool(t *testing.T) {
	pool := NewNamePool()
	for _, name := range []string{"bob", "alice", "carol"} {
		if !pool.Add(name) {
			t.Fatalf("TestNamePool: Add(%s) unexpectedly reported a duplicate", name)
		}
	}
	if pool.Add("alice") {
		t.Fatalf("TestNamePool: adding alice twice unexpectedly succeeded")
	}
	if !pool.Contains("carol") || pool.Contains("dave") {
		t.Fatalf("TestNamePool: unexpected Contains results")
	}

	names := pool.Names()
	expected := []string{"bob", "alice", "carol"}
	if len(names) != len(expected) || pool.Len() != len(expected) {
		t.Fatalf("TestNamePool: expected %d names, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("TestNamePool: expected names %v, got %v", expected, names)
		}
	}
}

func TestBlockEvaluationStateAcceptTransaction(t *testing.T) {
	state := NewBlockEvaluationState(7)
	outpoint := &externalapi.DomainOutpoint{Index: 1}
	if state.IsOutpointSpent(outpoint) {
		t.Fatalf("TestBlockEvaluationStateAcceptTransaction: a fresh state has a spent outpoint")
	}

	state.AcceptTransaction([]*externalapi.DomainOutpoint{outpoint}, []string{"alice"},
		&externalapi.TransactionSummary{Fee: 10, RequiredFees: 4})
	state.AcceptTransaction(nil, nil, &externalapi.TransactionSummary{Fee: 5})

	if !state.IsOutpointSpent(&externalapi.DomainOutpoint{Index: 1}) {
		t.Fatalf("TestBlockEvaluationStateAcceptTransaction: expected the outpoint to be spent")
	}
	if !state.NamePool().Contains("alice") {
		t.Fatalf("TestBlockEvaluationStateAcceptTransaction: expected alice in the name pool")
	}
	if state.TotalFees() != 15 || state.TotalRequiredFees() != 4 {
		t.Fatalf("TestBlockEvaluationStateAcceptTransaction: expected fees 15/4, got %d/%d",
			state.TotalFees(), state.TotalRequiredFees())
	}
	if state.BlockHeight() != 7 {
		t.Fatalf("TestBlockEvaluationStateAcceptTransaction: expected height 7, got %d", state.BlockHeight())
	}
}
