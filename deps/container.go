package deps

import (
	"github.com/getsentry/raven-go"
	"github.com/olebedev/config"
	"github.com/tidwall/buntdb"
	"gopkg.in/mgo.v2"
)

type Deps struct {
	ConfigProvider          *config.Config
	ErrorsProvider          *raven.Client
	SettingsProvider        *buntdb.DB
	DatabaseSessionProvider *mgo.Session
	DatabaseProvider        *mgo.Database
}

func (d Deps) Config() *config.Config {
	return d.ConfigProvider
}

// Close releases the settings file and the mongo session.
func (d Deps) Close() error {
	if d.DatabaseSessionProvider != nil {
		d.DatabaseSessionProvider.Close()
	}

	if d.SettingsProvider != nil {
		return d.SettingsProvider.Close()
	}

	return nil
}

func (d Deps) Errors() *raven.Client {
	return d.ErrorsProvider
}

func (d Deps) Settings() *buntdb.DB {
	return d.SettingsProvider
}

// Mgo is nil when no mongo url is configured.
func (d Deps) Mgo() *mgo.Database {
	return d.DatabaseProvider
}

func (d Deps) SiteURL() string {
	return d.Config().UString("application.site_url", "http://localhost:3200")
}
