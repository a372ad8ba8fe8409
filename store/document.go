package store

import "fmt"

// DocumentReference identifies one document id inside a CollectionReference
// snapshot. It holds no data on its own; every operation acts on the owning
// snapshot and flushes through the store.
type DocumentReference struct {
	ID string

	collection *CollectionReference
}

// Get looks up the document in the snapshot.
func (d *DocumentReference) Get() (Document, error) {

	document, exists := d.collection.snapshot[d.ID]
	if !exists {
		return nil, fmt.Errorf("%w: '%s' in collection '%s'", ErrDocumentNotFound, d.ID, d.collection.Name)
	}

	return document, nil
}

// Set overwrites the document at this id and flushes.
func (d *DocumentReference) Set(document Document) error {
	d.collection.snapshot[d.ID] = document
	return d.collection.flush()
}

// Update shallow-merges partial over the existing document (a missing
// document is an empty base) and flushes. Nested values are replaced as a
// whole, not merged.
func (d *DocumentReference) Update(partial Document) error {

	merged := Document{}
	for field, value := range d.collection.snapshot[d.ID] {
		merged[field] = value
	}
	for field, value := range partial {
		merged[field] = value
	}

	d.collection.snapshot[d.ID] = merged

	return d.collection.flush()
}

// Delete removes the document from the snapshot and flushes.
func (d *DocumentReference) Delete() error {
	delete(d.collection.snapshot, d.ID)
	return d.collection.flush()
}
