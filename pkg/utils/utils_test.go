package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-10-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	for _, invalid := range []string{"15/10/2026", "2026-13-01", "2026-10-15'; DROP TABLE envios_whatsapp; --"} {
		_, err = ParseDate(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestQueryInt(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"abc"}, "vazio": {" "}}

	assert.Equal(t, 3, QueryInt(values, "page", 1))
	assert.Equal(t, 10, QueryInt(values, "limit", 10))
	assert.Equal(t, 7, QueryInt(values, "vazio", 7))
	assert.Equal(t, 1, QueryInt(values, "ausente", 1))
}
