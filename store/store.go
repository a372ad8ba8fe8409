package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is a single schemaless record: field name to JSON-like value
// (string, float64, bool, nested map, slice or nil).
type Document map[string]any

// Collection maps document id to Document.
type Collection map[string]Document

// DocumentTree is the whole persisted state: collection name to Collection.
type DocumentTree map[string]Collection

// Store owns the backing file. Every read loads the whole tree and every
// write rewrites the whole file, there is no incremental path. Writes are not
// atomic: a crash mid-write can leave the file truncated.
type Store struct {
	path string
}

func Open(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Read loads and parses the whole document tree. A missing file is a first
// run and yields an empty tree.
func (s *Store) Read() (DocumentTree, error) {

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return DocumentTree{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read '%s': %s", ErrIO, s.path, err.Error())
	}

	tree := DocumentTree{}
	if len(data) == 0 {
		return tree, nil
	}

	err = json.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("%w: decode '%s': %s", ErrCorruptState, s.path, err.Error())
	}

	return tree, nil
}

// Write serializes the whole tree as indented JSON (human diffable) and
// replaces the file contents.
func (s *Store) Write(tree DocumentTree) error {

	data, err := json.MarshalIndent(tree, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	data = append(data, '\n')

	err = os.WriteFile(s.path, data, 0666)
	if err != nil {
		return fmt.Errorf("%w: write '%s': %s", ErrIO, s.path, err.Error())
	}

	return nil
}

// Collection reads the full tree and returns a reference bound to a snapshot
// of the named collection (empty if absent) and to this store.
func (s *Store) Collection(name string) (*CollectionReference, error) {

	tree, err := s.Read()
	if err != nil {
		return nil, err
	}

	snapshot, exists := tree[name]
	if !exists {
		snapshot = Collection{}
	}

	return &CollectionReference{
		Name:     name,
		store:    s,
		snapshot: snapshot,
	}, nil
}
