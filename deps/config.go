package deps

import (
	"os"

	"github.com/olebedev/config"
	"github.com/op/go-logging"
)

var (
	// ENV_FILE is the json file with the environment config.
	ENV_FILE = "./env.json"
)

func IgniteConfig(container Deps) (Deps, error) {
	if envfile := os.Getenv("ENV_FILE"); envfile != "" {
		ENV_FILE = envfile
	}

	conf, err := config.ParseJsonFile(ENV_FILE)
	if os.IsNotExist(err) {
		log.Warningf("env file not found, using defaults	file=%s", ENV_FILE)
		conf, err = config.ParseJson("{}")
	}

	if err != nil {
		return container, err
	}

	if conf.UString("environment", "development") != "development" {
		logging.SetLevel(logging.INFO, "")
	}

	container.ConfigProvider = conf
	return container, nil
}
