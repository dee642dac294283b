package deps

import (
	"gopkg.in/mgo.v2"
)

func IgniteMongoDB(container Deps) (Deps, error) {
	url := container.Config().UString("mongo.url", "")
	if url == "" {
		log.Warning("mongo.url not configured, orders will be kept in memory")
		return container, nil
	}

	session, err := mgo.Dial(url)
	if err != nil {
		log.Error(err)
		return container, err
	}

	db := session.DB(container.Config().UString("mongo.name", "cashapp"))

	// Ensure indexes
	err = db.C("gcommerce_orders").EnsureIndex(mgo.Index{
		Key:        []string{"reference"},
		Unique:     true,
		Background: true,
	})
	if err != nil {
		return container, err
	}

	container.DatabaseSessionProvider = session
	container.DatabaseProvider = db
	return container, nil
}
