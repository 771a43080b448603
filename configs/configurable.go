package configs

import "errors"

// Configurable is a named type whose value comes from a config file. The
// type names the path it is read from, so loading is just the type.
type Configurable interface {
	ConfigPath() string
}

func Load[T Configurable](loader Loader) T {
	var value T
	if err := loader.AssignFirst(value.ConfigPath(), &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
