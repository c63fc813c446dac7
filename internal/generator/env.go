package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadEnv builds the substitution variable map: the .env file read via viper
// (dotenv format), overlaid with the real process environment. Precedence,
// highest to lowest:
//  1. Process environment
//  2. .env file values
//
// A missing .env file is fine — plenty of machines keep everything in the
// real environment.
func LoadEnv(envFile string) (map[string]string, error) {
	vars := make(map[string]string)

	if envFile != "" {
		v := viper.New()
		v.SetConfigFile(envFile)
		v.SetConfigType("env")

		err := v.ReadInConfig()
		if err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		} else {
			for _, k := range v.AllKeys() {
				// Dotenv keys come back lowercased from viper; the
				// templates reference them in their original upper form.
				vars[strings.ToUpper(k)] = v.GetString(k)
			}
		}
	}

	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			vars[kv[:i]] = kv[i+1:]
		}
	}
	return vars, nil
}

// UnsetVars returns the required variable names absent from vars, in the
// order they are configured. Shared by generation and the status report so
// both agree on what counts as set (.env values included).
func UnsetVars(vars map[string]string, required []string) []string {
	var unset []string
	for _, name := range required {
		if _, ok := vars[name]; !ok {
			unset = append(unset, name)
		}
	}
	return unset
}
