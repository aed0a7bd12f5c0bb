package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads generic Unix-type configuration files into a map (map[key]value).
// Files which do not exist are skipped, with later files taking precedence
// over earlier ones for keys present in both.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	envMap := make(map[string]string)

	for _, filename := range filenames {
		if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		data, err := godotenv.Read(filename)
		if err != nil {
			return envMap, fmt.Errorf("(config-godotenv) %s: %w", filename, err)
		}

		for key, value := range data {
			envMap[key] = value
		}
	}

	return envMap, nil
}
