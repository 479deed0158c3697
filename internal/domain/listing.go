// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strings"
	"time"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	// MaxPageSize limita o tamanho da página para evitar consultas sem limite
	MaxPageSize = 100
	// MaxPage mantém (page-1)*limit dentro de um OFFSET positivo de 32 bits
	MaxPage = math.MaxInt32 / MaxPageSize
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder aceita somente "asc"; qualquer outro valor resulta em DESC
func ParseSortOrder(order string) SortOrder {
	if order == "asc" {
		return SortAsc
	}
	return SortDesc
}

// ListFilter reúne paginação, ordenação e filtros de uma listagem
type ListFilter struct {
	Page   int
	Limit  int
	Sort   string
	Order  SortOrder
	Search string
	Date   *time.Time // apenas envios
}

// NewListFilter normaliza os parâmetros recebidos, aplicando os valores padrão
func NewListFilter(page, limit int, sort, order, search string, date *time.Time) ListFilter {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return ListFilter{
		Page:   page,
		Limit:  limit,
		Sort:   sort,
		Order:  ParseSortOrder(order),
		Search: strings.TrimSpace(search),
		Date:   date,
	}
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SearchPattern devolve o termo de busca no formato usado pelo ILIKE
func (f ListFilter) SearchPattern() string {
	return "%" + f.Search + "%"
}

// TotalPages calcula a quantidade de páginas para um total de registros
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Page é uma página de resultados de uma listagem
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, total int64, filter ListFilter) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: TotalPages(total, filter.Limit),
	}
}
