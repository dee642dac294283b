package payments

import (
	"encoding/json"

	"github.com/tidwall/buntdb"
)

// SettingsStore persists raw gateway options keyed by gateway id.
type SettingsStore interface {
	Load(id string) (map[string]string, error)
	Save(id string, values map[string]string) error
}

type BuntStore struct {
	DB *buntdb.DB
}

func settingsKey(id string) string {
	return "gateway:" + id + ":settings"
}

func (s BuntStore) Load(id string) (map[string]string, error) {
	values := map[string]string{}
	err := s.DB.View(func(tx *buntdb.Tx) error {
		encoded, err := tx.Get(settingsKey(id))
		if err == buntdb.ErrNotFound {
			return nil
		}

		if err != nil {
			return err
		}

		return json.Unmarshal([]byte(encoded), &values)
	})

	return values, err
}

func (s BuntStore) Save(id string, values map[string]string) error {
	encoded, err := json.Marshal(values)
	if err != nil {
		return err
	}

	return s.DB.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(settingsKey(id), string(encoded), nil)
		return err
	})
}
