package multiset

import (
	"testing"
)

func TestMultisetIsOrderIndependent(t *testing.T) {
	first := New()
	first.Add([]byte("a"))
	first.Add([]byte("b"))
	first.Add([]byte("c"))

	second := New()
	second.Add([]byte("c"))
	second.Add([]byte("a"))
	second.Add([]byte("b"))

	if !first.Hash().Equal(second.Hash()) {
		t.Fatalf("TestMultisetIsOrderIndependent: expected %s, got %s", first.Hash(), second.Hash())
	}

	second.Remove([]byte("c"))
	if first.Hash().Equal(second.Hash()) {
		t.Fatalf("TestMultisetIsOrderIndependent: removing an element didn't change the hash")
	}

	emptied := second.Clone()
	emptied.Remove([]byte("a"))
	emptied.Remove([]byte("b"))
	if !emptied.Hash().Equal(New().Hash()) {
		t.Fatalf("TestMultisetIsOrderIndependent: removing all elements should result in the empty set")
	}
	if second.Hash().Equal(emptied.Hash()) {
		t.Fatalf("TestMultisetIsOrderIndependent: Clone shares state with the original")
	}
}

func TestMultisetFromBytes(t *testing.T) {
	ms := New()
	ms.Add([]byte("record"))

	deserialized, err := FromBytes(ms.Serialize())
	if err != nil {
		t.Fatalf("TestMultisetFromBytes: FromBytes: %s", err)
	}
	if !deserialized.Hash().Equal(ms.Hash()) {
		t.Fatalf("TestMultisetFromBytes: expected %s, got %s", ms.Hash(), deserialized.Hash())
	}

	_, err = FromBytes([]byte{1, 2, 3})
	if err == nil {
		t.Fatalf("TestMultisetFromBytes: expected an error for a short serialization")
	}
}
