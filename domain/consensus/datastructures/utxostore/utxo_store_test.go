package utxostore

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
	"github.com/kaspanet/kaspadns/infrastructure/db/database/ldb"
)

func prepareDBManagerForTest(t *testing.T, testName string) (dbManager model.DBManager, teardownFunc func()) {
	path, err := ioutil.TempDir("", testName)
	if err != nil {
		t.Fatalf("%s: TempDir unexpectedly failed: %s", testName, err)
	}
	db, err := ldb.NewLevelDB(path, 8)
	if err != nil {
		t.Fatalf("%s: NewLevelDB unexpectedly failed: %s", testName, err)
	}
	teardownFunc = func() {
		err = db.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly failed: %s", testName, err)
		}
		err = os.RemoveAll(path)
		if err != nil {
			t.Fatalf("%s: RemoveAll unexpectedly failed: %s", testName, err)
		}
	}
	return database.New(db), teardownFunc
}

func commitStagingArea(t *testing.T, dbManager model.DBManager, stagingArea *model.StagingArea) {
	dbTx, err := dbManager.Begin()
	if err != nil {
		t.Fatalf("Begin: %s", err)
	}
	defer dbTx.RollbackUnlessClosed()

	err = stagingArea.Commit(dbTx)
	if err != nil {
		t.Fatalf("Commit staging area: %s", err)
	}
	err = dbTx.Commit()
	if err != nil {
		t.Fatalf("Commit: %s", err)
	}
}

func TestUTXOStore(t *testing.T) {
	for _, cacheSize := range []int{0, 10} {
		testUTXOStore(t, cacheSize)
	}
}

func testUTXOStore(t *testing.T, cacheSize int) {
	dbManager, teardownFunc := prepareDBManagerForTest(t, "TestUTXOStore")
	defer teardownFunc()

	store := New(cacheSize)
	outpoint := &externalapi.DomainOutpoint{Index: 1}
	entry := utxo.NewUTXOEntry(1000, &externalapi.ClaimDomain{Name: "d1", Value: []byte{}}, 3)

	stagingArea := model.NewStagingArea()
	if store.IsStaged(stagingArea) {
		t.Fatalf("TestUTXOStore: a fresh staging area is staged")
	}
	store.StageAdd(stagingArea, outpoint, entry)
	if !store.IsStaged(stagingArea) {
		t.Fatalf("TestUTXOStore: StageAdd didn't stage anything")
	}

	staged, err := store.UTXOEntry(dbManager, stagingArea, outpoint)
	if err != nil {
		t.Fatalf("TestUTXOStore: UTXOEntry of a staged entry: %s", err)
	}
	if !staged.Equal(entry) {
		t.Fatalf("TestUTXOStore: staged entry differs from the added entry")
	}
	has, err := store.HasUTXOEntry(dbManager, model.NewStagingArea(), outpoint)
	if err != nil {
		t.Fatalf("TestUTXOStore: HasUTXOEntry: %s", err)
	}
	if has {
		t.Fatalf("TestUTXOStore: a staged entry is visible to another staging area")
	}

	commitStagingArea(t, dbManager, stagingArea)

	// A new store makes sure the entry is read from the database
	committed, err := New(cacheSize).UTXOEntry(dbManager, model.NewStagingArea(), outpoint)
	if err != nil {
		t.Fatalf("TestUTXOStore: UTXOEntry of a committed entry: %s", err)
	}
	if !committed.Equal(entry) {
		t.Fatalf("TestUTXOStore: committed entry differs from the added entry")
	}

	stagingArea = model.NewStagingArea()
	store.StageRemove(stagingArea, outpoint)
	_, err = store.UTXOEntry(dbManager, stagingArea, outpoint)
	if !database.IsNotFoundError(err) {
		t.Fatalf("TestUTXOStore: expected ErrNotFound for an entry staged for removal, got %v", err)
	}
	commitStagingArea(t, dbManager, stagingArea)

	has, err = store.HasUTXOEntry(dbManager, model.NewStagingArea(), outpoint)
	if err != nil {
		t.Fatalf("TestUTXOStore: HasUTXOEntry: %s", err)
	}
	if has {
		t.Fatalf("TestUTXOStore: a removed entry is still in the store")
	}
	_, err = store.UTXOEntry(dbManager, model.NewStagingArea(), outpoint)
	if !database.IsNotFoundError(err) {
		t.Fatalf("TestUTXOStore: expected ErrNotFound for a removed entry, got %v", err)
	}
}
