package env

import (
	"log"
	"os"
	"strconv"
)

func GetString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		log.Printf("%s not found, defaulting to %q", key, fallback)
		return fallback
	}

	return value
}

func GetInt64(key string, fallback int64) int64 {
	return lookup(key, fallback, func(value string) (int64, error) {
		return strconv.ParseInt(value, 10, 64)
	})
}

func GetBool(key string, fallback bool) bool {
	return lookup(key, fallback, strconv.ParseBool)
}

// lookup falls back when key is unset or does not parse.
func lookup[T any](key string, fallback T, parse func(string) (T, error)) T {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := parse(value)
	if err != nil {
		log.Printf("%s=%q is invalid, defaulting to %v", key, value, fallback)
		return fallback
	}

	return parsed
}
