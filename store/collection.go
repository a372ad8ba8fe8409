package store

import (
	"fmt"
	"time"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/firelite/utils"
)

// CollectionReference is a transient view over one collection: a snapshot
// taken when Store.Collection was called plus a back reference to the store.
// It goes stale if another reference flushes after this one was created; the
// last flush wins.
type CollectionReference struct {
	Name string

	store    *Store
	snapshot Collection
}

// Get returns the in-memory snapshot. No re-read.
func (c *CollectionReference) Get() Collection {
	return c.snapshot
}

// Doc returns a handle for id over this snapshot. The id does not need to
// exist yet.
func (c *CollectionReference) Doc(id string) *DocumentReference {
	return &DocumentReference{
		ID:         id,
		collection: c,
	}
}

// Add inserts document under a fresh id 'doc<unixMillis>' and flushes. Two
// adds within the same millisecond collide (documented limitation, see
// DESIGN.md).
func (c *CollectionReference) Add(document Document) (*DocumentReference, error) {

	id := fmt.Sprintf("doc%d", time.Now().UnixMilli())
	c.snapshot[id] = document

	err := c.flush()
	if err != nil {
		return nil, err
	}

	return c.Doc(id), nil
}

// Find runs a fullscan of the snapshot against a connor filter expression and
// returns the matching documents ordered by document id.
func (c *CollectionReference) Find(filter map[string]any) ([]Document, error) {

	result := []Document{}
	for _, id := range utils.GetKeys(c.snapshot) {
		document := c.snapshot[id]
		match, err := connor.Match(filter, document)
		if err != nil {
			return nil, fmt.Errorf("match: %w", err)
		}
		if match {
			result = append(result, document)
		}
	}

	return result, nil
}

// flush is the read-merge-write cycle: re-read the whole tree, overwrite only
// this collection's key with the snapshot, write the whole tree back. Sibling
// collections are preserved. The gap between read and write is an unprotected
// race window: a concurrent flush of the same collection is silently lost.
func (c *CollectionReference) flush() error {

	tree, err := c.store.Read()
	if err != nil {
		return err
	}

	tree[c.Name] = c.snapshot

	return c.store.Write(tree)
}
