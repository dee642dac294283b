package deps

import (
	"github.com/getsentry/raven-go"
)

func IgniteSentry(container Deps) (Deps, error) {
	dsn := container.Config().UString("sentry.dns", "")
	if dsn == "" {
		return container, nil
	}

	client, err := raven.NewClient(dsn, nil)
	if err != nil {
		return container, err
	}

	container.ErrorsProvider = client
	return container, nil
}
