package externalapi

import (
	"testing"
)

func TestClaimEqual(t *testing.T) {
	owner := DomainPublicKey{1}
	otherOwner := DomainPublicKey{2}

	tests := []struct {
		name           string
		claim          Claim
		other          Claim
		expectedResult bool
	}{
		{
			name:           "same signature claims",
			claim:          &ClaimBySignature{Owner: owner},
			other:          &ClaimBySignature{Owner: owner},
			expectedResult: true,
		},
		{
			name:           "different signature owners",
			claim:          &ClaimBySignature{Owner: owner},
			other:          &ClaimBySignature{Owner: otherOwner},
			expectedResult: false,
		},
		{
			name:           "different claim kinds",
			claim:          &ClaimBySignature{Owner: owner},
			other:          &ClaimDomain{Name: "alice", Owner: owner},
			expectedResult: false,
		},
		{
			name:           "same domain claims",
			claim:          &ClaimDomain{Name: "alice", Value: []byte{1, 2}, Owner: owner, State: DomainStatePossiblyInAuction},
			other:          &ClaimDomain{Name: "alice", Value: []byte{1, 2}, Owner: owner, State: DomainStatePossiblyInAuction},
			expectedResult: true,
		},
		{
			name:           "different domain values",
			claim:          &ClaimDomain{Name: "alice", Value: []byte{1, 2}, Owner: owner},
			other:          &ClaimDomain{Name: "alice", Value: []byte{1, 3}, Owner: owner},
			expectedResult: false,
		},
		{
			name:           "different domain states",
			claim:          &ClaimDomain{Name: "alice", State: DomainStateNotInAuction},
			other:          &ClaimDomain{Name: "alice", State: DomainStatePossiblyInAuction},
			expectedResult: false,
		},
	}

	for _, test := range tests {
		result := test.claim.Equal(test.other)
		if result != test.expectedResult {
			t.Fatalf("TestClaimEqual: %s: Expected %t, got %t", test.name, test.expectedResult, result)
		}
	}
}

func TestClaimClone(t *testing.T) {
	claim := &ClaimDomain{Name: "alice", Value: []byte{1, 2, 3}, Owner: DomainPublicKey{7},
		State: DomainStatePossiblyInAuction}
	clone := claim.Clone()
	if !claim.Equal(clone) {
		t.Fatalf("TestClaimClone: clone %+v is not equal to the original %+v", clone, claim)
	}

	clone.(*ClaimDomain).Value[0] = 9
	if claim.Value[0] != 1 {
		t.Fatalf("TestClaimClone: modifying the clone's value modified the original")
	}
}

func TestDomainTransactionClone(t *testing.T) {
	tx := &DomainTransaction{
		Version: 1,
		Inputs: []*DomainTransactionInput{{
			PreviousOutpoint: DomainOutpoint{TransactionID: DomainTransactionID{}, Index: 3},
		}},
		Outputs: []*DomainTransactionOutput{
			{Value: 10, Claim: &ClaimBySignature{Owner: DomainPublicKey{1}}},
			{Value: 20, Claim: &ClaimDomain{Name: "bob", Owner: DomainPublicKey{2}}},
		},
		Signatures: []*DomainTransactionSignature{{PublicKey: DomainPublicKey{1}}},
	}

	clone := tx.Clone()
	if len(clone.Outputs) != 2 || !clone.Outputs[1].Claim.Equal(tx.Outputs[1].Claim) {
		t.Fatalf("TestDomainTransactionClone: unexpected outputs in clone")
	}
	clone.Outputs[0].Value = 11
	if tx.Outputs[0].Value != 10 {
		t.Fatalf("TestDomainTransactionClone: modifying the clone modified the original")
	}
	if clone.Inputs[0].PreviousOutpoint.Index != 3 {
		t.Fatalf("TestDomainTransactionClone: expected input index 3, got %d", clone.Inputs[0].PreviousOutpoint.Index)
	}
}

func TestDomainRecordAge(t *testing.T) {
	record := &DomainRecord{Name: "alice", LastUpdateBlockHeight: 10}
	if age := record.Age(15); age != 5 {
		t.Fatalf("TestDomainRecordAge: expected age 5, got %d", age)
	}
	if age := record.Age(3); age != 0 {
		t.Fatalf("TestDomainRecordAge: expected age 0 for an older height, got %d", age)
	}
}
