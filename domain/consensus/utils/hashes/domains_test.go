package hashes

import (
	"testing"
)

func TestDomainSeparation(t *testing.T) {
	constructors := map[string]func() HashWriter{
		"TransactionID":          NewTransactionIDWriter,
		"TransactionSigningHash": NewTransactionSigningHashWriter,
		"DomainRecord":           NewDomainRecordWriter,
		"KeyDerivation":          NewKeyDerivationWriter,
	}

	seen := make(map[string]string)
	for name, constructor := range constructors {
		writer := constructor()
		writer.InfallibleWrite([]byte("same data"))
		hash := writer.Finalize().String()
		if other, ok := seen[hash]; ok {
			t.Fatalf("TestDomainSeparation: %s and %s produced the same hash %s", name, other, hash)
		}
		seen[hash] = name

		again := constructor()
		again.InfallibleWrite([]byte("same data"))
		if again.Finalize().String() != hash {
			t.Fatalf("TestDomainSeparation: %s is not deterministic", name)
		}
	}
}
