// Package dotenv exposes a .env file as a util.Lookup without touching the
// process environment.
package dotenv

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/scheerer/hello-formula/internal/util"
)

func Read(path string) (util.Lookup, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return util.MapLookup(values), nil
}

// Layer puts the file at path underneath base, so base wins for keys present in
// both. An empty path returns base unchanged.
func Layer(base util.Lookup, path string) (util.Lookup, error) {
	if path == "" {
		return base, nil
	}
	file, err := Read(path)
	if err != nil {
		return base, err
	}
	return util.Chain(base, file), nil
}
