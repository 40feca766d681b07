package utxolrucache

import (
	"testing"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
)

func TestLRUCacheCapacity(t *testing.T) {
	cache := New(2)
	entry := utxo.NewUTXOEntry(10, &externalapi.ClaimBySignature{}, 0)
	outpoints := []externalapi.DomainOutpoint{{Index: 0}, {Index: 1}, {Index: 2}}
	for i := range outpoints {
		cache.Add(&outpoints[i], entry)
	}
	if cache.Len() != 2 {
		t.Fatalf("TestLRUCacheCapacity: expected 2 entries, got %d", cache.Len())
	}

	cache.Remove(&outpoints[2])
	cache.Remove(&outpoints[1])
	cache.Remove(&outpoints[0])
	if cache.Len() != 0 {
		t.Fatalf("TestLRUCacheCapacity: expected an empty cache, got %d entries", cache.Len())
	}

	disabled := New(0)
	disabled.Add(&outpoints[0], entry)
	if disabled.Has(&outpoints[0]) {
		t.Fatalf("TestLRUCacheCapacity: a zero capacity cache cached an entry")
	}
}
