package deps

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cashapp")

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module}	▶ %{level:.4s}%{color:reset} %{message}`,
)

// IgniteLogger sends every module logger to stdout. Config may lower the
// level later on.
func IgniteLogger(container Deps) (Deps, error) {
	formatter := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), format)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.DEBUG, "")
	logging.SetBackend(leveled)

	return container, nil
}
