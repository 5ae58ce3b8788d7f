package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	collMedications   = "medications"
	collBloodPressure = "blood_pressure_readings"
	collDiabetic      = "diabetic_readings"
	collSubscriptions = "subscriptions"
	collContacts      = "emergency_contacts"
)

var errExists = errors.New("document already exists")

// collection guarda documentos JSON de tipo T. sortAt define el orden de list.
type collection[T any] struct {
	db     *badger.DB
	name   string
	sortAt func(T) time.Time
}

// Los segmentos se escapan para que un ":" en el id de usuario no rompa la clave.
func (c collection[T]) key(owner, id string) []byte {
	return []byte(c.name + ":" + url.QueryEscape(owner) + ":" + url.QueryEscape(id))
}

func (c collection[T]) ownerPrefix(owner string) []byte {
	return []byte(c.name + ":" + url.QueryEscape(owner) + ":")
}

func (c collection[T]) insert(ctx context.Context, owner, id string, v T) error {
	return c.write(ctx, owner, id, v, func(exists bool) error {
		if exists {
			return errExists
		}
		return nil
	})
}

func (c collection[T]) update(ctx context.Context, owner, id string, v T) error {
	return c.write(ctx, owner, id, v, func(exists bool) error {
		if !exists {
			return ErrNotFound
		}
		return nil
	})
}

func (c collection[T]) upsert(ctx context.Context, owner, id string, v T) error {
	return c.write(ctx, owner, id, v, func(bool) error { return nil })
}

func (c collection[T]) write(ctx context.Context, owner, id string, v T, check func(exists bool) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.name, err)
	}

	k := c.key(owner, id)
	return c.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(k)
		switch {
		case err == nil:
			if err := check(true); err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			if err := check(false); err != nil {
				return err
			}
		default:
			return err
		}
		return txn.Set(k, body)
	})
}

func (c collection[T]) get(ctx context.Context, owner, id string) (T, error) {
	var v T
	if err := ctx.Err(); err != nil {
		return v, err
	}

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(owner, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(b []byte) error {
			return json.Unmarshal(b, &v)
		})
	})
	return v, err
}

func (c collection[T]) delete(ctx context.Context, owner, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := c.key(owner, id)
	return c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete(k)
	})
}

func (c collection[T]) list(ctx context.Context, owner string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	prefix := c.ownerPrefix(owner)
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var v T
			if err := it.Item().Value(func(b []byte) error {
				return json.Unmarshal(b, &v)
			}); err != nil {
				return fmt.Errorf("unmarshal %s: %w", c.name, err)
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if c.sortAt != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return c.sortAt(out[i]).Before(c.sortAt(out[j]))
		})
	}
	return out, nil
}

// owners recorre sólo las claves (sin valores) y extrae el segmento de usuario.
func (c collection[T]) owners(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	prefix := []byte(c.name + ":")
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rest := strings.TrimPrefix(string(it.Item().Key()), string(prefix))
			seg, _, ok := strings.Cut(rest, ":")
			if !ok {
				continue
			}
			owner, err := url.QueryUnescape(seg)
			if err != nil {
				continue
			}
			if _, dup := seen[owner]; dup {
				continue
			}
			seen[owner] = struct{}{}
			out = append(out, owner)
		}
		return nil
	})
	return out, err
}
