package database_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/kaspanet/kaspadns/infrastructure/db/database"
	"github.com/kaspanet/kaspadns/infrastructure/db/database/ldb"
)

func prepareLDBForTest(t *testing.T, testName string) (db database.Database, teardownFunc func()) {
	path, err := ioutil.TempDir("", testName)
	if err != nil {
		t.Fatalf("%s: TempDir unexpectedly failed: %s", testName, err)
	}
	db, err = ldb.NewLevelDB(path, 8)
	if err != nil {
		t.Fatalf("%s: NewLevelDB unexpectedly failed: %s", testName, err)
	}
	teardownFunc = func() {
		err := db.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly failed: %s", testName, err)
		}
		os.RemoveAll(path)
	}
	return db, teardownFunc
}

type keyValuePair struct {
	key   *database.Key
	value []byte
}

// populateDatabaseForTest writes a handful of UTXO-like entries into the
// root bucket
func populateDatabaseForTest(t *testing.T, db database.Database, testName string) []keyValuePair {
	entries := make([]keyValuePair, 5)
	for i := range entries {
		entries[i] = keyValuePair{
			key:   database.MakeBucket(nil).Key([]byte(fmt.Sprintf("outpoint%d", i))),
			value: []byte(fmt.Sprintf("entry%d", i)),
		}
		err := db.Put(entries[i].key, entries[i].value)
		if err != nil {
			t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
		}
	}
	return entries
}
