package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClienteVencido agrupa, por cliente, os títulos vencidos ontem com saldo em aberto
type ClienteVencido struct {
	ClienteID    int64           `json:"cliente_id"`
	Codigo       string          `json:"codigo"`
	Nome         string          `json:"nome"`
	NomeFantasia *string         `json:"nome_fantasia"`
	Whatsapp     *string         `json:"whatsapp"`
	QtdTitulos   int64           `json:"qtd_titulos"`
	Valor        decimal.Decimal `json:"valor"`
}

// OverdueFilter define ordenação e busca da agregação de vencidos
type OverdueFilter struct {
	ReferenceDate time.Time
	Sort          string
	Order         SortOrder
	Search        string
}

func NewOverdueFilter(referenceDate time.Time, sort, order, search string) OverdueFilter {
	return OverdueFilter{
		ReferenceDate: referenceDate,
		Sort:          sort,
		Order:         ParseSortOrder(order),
		Search:        strings.TrimSpace(search),
	}
}

func (f OverdueFilter) SearchPattern() string {
	return "%" + f.Search + "%"
}

type OverdueSummary struct {
	ClientsCount int             `json:"clients_count"`
	TitlesCount  int64           `json:"titles_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// SummarizeOverdue totaliza clientes, títulos e valor pendente
func SummarizeOverdue(items []*ClienteVencido) OverdueSummary {
	summary := OverdueSummary{
		ClientsCount: len(items),
		TotalValue:   decimal.Zero,
	}

	for _, item := range items {
		summary.TitlesCount += item.QtdTitulos
		summary.TotalValue = summary.TotalValue.Add(item.Valor)
	}

	return summary
}
