package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olebedev/config"
	"github.com/tidwall/buntdb"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIgniteConfig(t *testing.T) {
	Convey("Given no env file", t, func() {
		os.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.json"))
		defer os.Unsetenv("ENV_FILE")

		container, err := IgniteConfig(Deps{})

		Convey("defaults are used", func() {
			So(err, ShouldBeNil)
			So(container.SiteURL(), ShouldEqual, "http://localhost:3200")
		})
	})

	Convey("Given an env file", t, func() {
		file := filepath.Join(t.TempDir(), "env.json")
		err := os.WriteFile(file, []byte(`{"application": {"site_url": "https://shop.test"}}`), 0644)
		So(err, ShouldBeNil)

		os.Setenv("ENV_FILE", file)
		defer os.Unsetenv("ENV_FILE")

		container, err := IgniteConfig(Deps{})

		So(err, ShouldBeNil)
		So(container.SiteURL(), ShouldEqual, "https://shop.test")
	})
}

func TestIgniteStores(t *testing.T) {
	Convey("Given an in memory settings path and no mongo url", t, func() {
		conf, err := config.ParseJson(`{"settings": {"path": ":memory:"}}`)
		So(err, ShouldBeNil)

		container := Deps{ConfigProvider: conf}
		container, err = IgniteBuntDB(container)
		So(err, ShouldBeNil)

		container, err = IgniteMongoDB(container)
		So(err, ShouldBeNil)

		So(container.Settings(), ShouldNotBeNil)
		So(container.Mgo(), ShouldBeNil)

		Convey("closing releases the settings store", func() {
			So(container.Close(), ShouldBeNil)
			So(container.Settings().View(func(tx *buntdb.Tx) error { return nil }), ShouldEqual, buntdb.ErrDatabaseClosed)
		})
	})

	Convey("Sentry stays off without a dsn", t, func() {
		conf, err := config.ParseJson(`{}`)
		So(err, ShouldBeNil)

		container, err := IgniteSentry(Deps{ConfigProvider: conf})
		So(err, ShouldBeNil)
		So(container.Errors(), ShouldBeNil)
	})

	Convey("Closing an empty container is a no-op", t, func() {
		So(Deps{}.Close(), ShouldBeNil)
	})
}
