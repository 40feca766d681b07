package database_test

import (
	"bytes"
	"testing"

	"github.com/kaspanet/kaspadns/infrastructure/db/database"
)

func TestTransactionRollback(t *testing.T) {
	testName := "TestTransactionRollback"
	db, teardownFunc := prepareLDBForTest(t, testName)
	defer teardownFunc()

	entries := populateDatabaseForTest(t, db, testName)

	dbTx, err := db.Begin()
	if err != nil {
		t.Fatalf("%s: Begin unexpectedly failed: %s", testName, err)
	}
	defer func() {
		err := dbTx.RollbackUnlessClosed()
		if err != nil {
			t.Fatalf("%s: RollbackUnlessClosed unexpectedly failed: %s", testName, err)
		}
	}()

	err = dbTx.Delete(entries[0].key)
	if err != nil {
		t.Fatalf("%s: Delete unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Put(entries[1].key, []byte("changed"))
	if err != nil {
		t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Rollback()
	if err != nil {
		t.Fatalf("%s: Rollback unexpectedly failed: %s", testName, err)
	}

	// Nothing written in the rolled back transaction should be visible
	for _, entry := range entries[:2] {
		value, err := db.Get(entry.key)
		if err != nil {
			t.Fatalf("%s: Get unexpectedly failed: %s", testName, err)
		}
		if !bytes.Equal(value, entry.value) {
			t.Fatalf("%s: Get returned wrong value. Want: %s, got: %s",
				testName, entry.value, value)
		}
	}
}

func TestTransactionCommit(t *testing.T) {
	testName := "TestTransactionCommit"
	db, teardownFunc := prepareLDBForTest(t, testName)
	defer teardownFunc()

	entries := populateDatabaseForTest(t, db, testName)

	dbTx, err := db.Begin()
	if err != nil {
		t.Fatalf("%s: Begin unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Delete(entries[0].key)
	if err != nil {
		t.Fatalf("%s: Delete unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Commit()
	if err != nil {
		t.Fatalf("%s: Commit unexpectedly failed: %s", testName, err)
	}

	exists, err := db.Has(entries[0].key)
	if err != nil {
		t.Fatalf("%s: Has unexpectedly failed: %s", testName, err)
	}
	if exists {
		t.Fatalf("%s: a key deleted in a committed transaction still exists", testName)
	}

	err = dbTx.Commit()
	if err == nil {
		t.Fatalf("%s: committing a closed transaction unexpectedly succeeded", testName)
	}
}

func TestCursorIteratesBucketOnly(t *testing.T) {
	testName := "TestCursorIteratesBucketOnly"
	db, teardownFunc := prepareLDBForTest(t, testName)
	defer teardownFunc()

	populateDatabaseForTest(t, db, testName)

	bucket := database.MakeBucket([]byte("records"))
	for _, suffix := range []string{"a", "b", "c"} {
		err := db.Put(bucket.Key([]byte(suffix)), []byte(suffix))
		if err != nil {
			t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
		}
	}

	cursor, err := db.Cursor(bucket)
	if err != nil {
		t.Fatalf("%s: Cursor unexpectedly failed: %s", testName, err)
	}
	defer cursor.Close()

	var suffixes []string
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("%s: Key unexpectedly failed: %s", testName, err)
		}
		suffixes = append(suffixes, string(key.Suffix()))
	}
	if len(suffixes) != 3 || suffixes[0] != "a" || suffixes[2] != "c" {
		t.Fatalf("%s: expected suffixes [a b c], got %v", testName, suffixes)
	}
}
