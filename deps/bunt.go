package deps

import (
	"github.com/tidwall/buntdb"
)

// IgniteBuntDB opens the gateway settings store. Use ":memory:" as path to
// keep settings in process.
func IgniteBuntDB(container Deps) (Deps, error) {
	path := container.Config().UString("settings.path", "settings.db")
	db, err := buntdb.Open(path)
	if err != nil {
		return container, err
	}

	log.Infof("settings store ready	path=%s", path)
	container.SettingsProvider = db
	return container, nil
}
