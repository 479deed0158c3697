package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected SortOrder
	}{
		{"asc", SortAsc},
		{"desc", SortDesc},
		{"", SortDesc},
		{"ASC", SortDesc},
		{" asc", SortDesc},
		{"asc; DROP TABLE clientes", SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortOrder(tt.input))
		})
	}
}

func TestNewListFilter_Defaults(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{name: "Valores ausentes", page: 0, limit: 0, expectedPage: 1, expectedLimit: 10},
		{name: "Valores negativos", page: -3, limit: -1, expectedPage: 1, expectedLimit: 10},
		{name: "Valores válidos", page: 3, limit: 50, expectedPage: 3, expectedLimit: 50},
		{name: "Limite acima do máximo", page: 1, limit: 5000, expectedPage: 1, expectedLimit: MaxPageSize},
		{name: "Página acima do máximo", page: math.MaxInt, limit: 10, expectedPage: MaxPage, expectedLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewListFilter(tt.page, tt.limit, "", "", "", nil)
			assert.Equal(t, tt.expectedPage, filter.Page)
			assert.Equal(t, tt.expectedLimit, filter.Limit)
		})
	}
}

func TestListFilter_Offset(t *testing.T) {
	first := NewListFilter(1, 10, "nome", "asc", "", nil)
	second := NewListFilter(2, 10, "nome", "asc", "", nil)

	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 10, second.Offset())
	assert.Equal(t, first.Sort, second.Sort)
	assert.Equal(t, first.Order, second.Order)
}

func TestListFilter_OffsetNeverNegative(t *testing.T) {
	for _, limit := range []int{1, DefaultPageSize, MaxPageSize, math.MaxInt} {
		filter := NewListFilter(math.MaxInt, limit, "", "", "", nil)
		assert.GreaterOrEqual(t, filter.Offset(), 0)
		assert.LessOrEqual(t, filter.Offset(), math.MaxInt32)
	}
}

func TestListFilter_SearchPattern(t *testing.T) {
	filter := NewListFilter(1, 10, "", "", "  maria ", nil)
	assert.Equal(t, "maria", filter.Search)
	assert.Equal(t, "%maria%", filter.SearchPattern())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(11, 0))
}

func TestNewPage_NilItems(t *testing.T) {
	page := NewPage[*Cliente](nil, 0, NewListFilter(1, 10, "", "", "", nil))
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabClientes, ParseTab("clientes"))
	assert.Equal(t, TabEnvios, ParseTab("envios"))
	assert.Equal(t, TabVencidos, ParseTab(""))
	assert.Equal(t, TabVencidos, ParseTab("outra"))
}
