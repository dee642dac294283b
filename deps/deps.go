package deps

// Contains bootstraped dependencies.
var Container Deps

// An ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Runs ignitors to fulfill deps container.
func Bootstrap() error {
	ignitors := []Ignitor{
		IgniteLogger,
		IgniteConfig,
		IgniteSentry,
		IgniteBuntDB,
		IgniteMongoDB,
	}

	container := Deps{}
	for _, fn := range ignitors {
		var err error
		container, err = fn(container)
		if err != nil {
			return err
		}
	}

	Container = container
	return nil
}
