// Package badgerstore implementa los repositorios sobre un BadgerDB embebido.
// Cada documento es un valor JSON con clave <colección>:<usuario>:<id>.
package badgerstore

import (
	"fmt"

	"medication-reminder/internal/platform/apperr"

	"github.com/dgraph-io/badger/v4"
)

var ErrNotFound = apperr.ErrNotFound

// Open abre (o crea) la base en path. Con path vacío queda en memoria,
// útil para tests y demos.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithCompactL0OnClose(true).
		WithValueLogFileSize(16 << 20).
		WithMemTableSize(16 << 20)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}
