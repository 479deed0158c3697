package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryInt lê um inteiro da query string, devolvendo fallback quando ausente ou inválido
func QueryInt(values url.Values, key string, fallback int) int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return n
}
