package view

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func newDashboard(tab string, filter domain.ListFilter) *domain.Dashboard {
	return &domain.Dashboard{
		Tab:      tab,
		Filter:   filter,
		Stats:    domain.Stats{ClientesCount: 1500, TitulosCount: 20, EnviosCount: 3},
		Clientes: domain.NewPage([]*domain.Cliente{{ID: 1, Codigo: "C001", Nome: "Maria <Souza>"}}, 25, filter),
		Titulos:  domain.NewPage[*domain.Titulo](nil, 0, filter),
		Envios: domain.NewPage([]*domain.Envio{
			{ID: 7, ClienteID: "C404", TituloNumero: "000777", EnviadoEm: time.Date(2026, 10, 15, 14, 3, 9, 0, time.UTC)},
		}, 1, filter),
		Overdue: domain.Overdue{
			ReferenceDate: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
			Items: []*domain.ClienteVencido{
				{ClienteID: 1, Codigo: "A", Nome: "Cliente A", NomeFantasia: stringPtr("Loja A"), QtdTitulos: 2, Valor: decimal.RequireFromString("150.50")},
			},
			Summary: domain.OverdueSummary{ClientsCount: 1, TitlesCount: 2, TotalValue: decimal.RequireFromString("150.50")},
		},
		GeneratedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "R$ 150,50", Money(decimal.RequireFromString("150.5")))
	assert.Equal(t, "R$ 1.234,50", Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", Money(decimal.Zero))
	assert.Equal(t, "R$ -0,50", Money(decimal.RequireFromString("-0.5")))
	assert.Equal(t, "R$ 10,01", Money(decimal.RequireFromString("10.005")))
	// fora da precisão de float64
	assert.Equal(t, "R$ 123.456.789.012.345.678,91", Money(decimal.RequireFromString("123456789012345678.91")))
}

func TestDateFormatting(t *testing.T) {
	d := time.Date(2026, 1, 5, 8, 7, 6, 0, time.UTC)

	assert.Equal(t, "05/01/2026", Date(d))
	assert.Equal(t, "05/01/2026", Date(&d))
	assert.Equal(t, "", Date((*time.Time)(nil)))
	assert.Equal(t, "05/01/2026 08:07:06", DateTime(d))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", OrNA(nil))
	assert.Equal(t, "N/A", OrNA(stringPtr("")))
	assert.Equal(t, "Loja", OrNA(stringPtr("Loja")))
}

func TestPage_SortURL(t *testing.T) {
	filter := domain.NewListFilter(3, 50, "nome", "desc", "ana", nil)
	page := NewPage(newDashboard(domain.TabClientes, filter), "")

	t.Run("mesma coluna alterna a direção", func(t *testing.T) {
		u, err := url.Parse(string(page.SortURL("nome")))
		require.NoError(t, err)

		q := u.Query()
		assert.Equal(t, "nome", q.Get("sort"))
		assert.Equal(t, "asc", q.Get("order"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "ana", q.Get("query"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "clientes", q.Get("tab"))
	})

	t.Run("nova coluna começa em DESC", func(t *testing.T) {
		u, err := url.Parse(string(page.SortURL("telefone")))
		require.NoError(t, err)

		assert.Equal(t, "telefone", u.Query().Get("sort"))
		assert.Equal(t, "desc", u.Query().Get("order"))
	})

	assert.Equal(t, "↓", page.SortIndicator("nome"))
	assert.Equal(t, "↕", page.SortIndicator("telefone"))
}

func TestPage_Pagination(t *testing.T) {
	filter := domain.NewListFilter(2, 10, "", "", "", nil)
	page := NewPage(newDashboard(domain.TabClientes, filter), "")

	p := page.Pagination()
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 3, p.Total)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 1, p.PrevPage)
	assert.Equal(t, 3, p.NextPage)

	u, err := url.Parse(string(page.PageURL(p.NextPage)))
	require.NoError(t, err)
	assert.Equal(t, "3", u.Query().Get("page"))
}

func TestRenderer_Dashboard(t *testing.T) {
	renderer, err := New()
	require.NoError(t, err)

	t.Run("aba de vencidos", func(t *testing.T) {
		page := NewPage(newDashboard(domain.TabVencidos, domain.NewListFilter(1, 10, "", "", "", nil)), "")

		var buf bytes.Buffer
		require.NoError(t, renderer.Dashboard(&buf, page))

		html := buf.String()
		assert.Contains(t, html, "1.500")
		assert.Contains(t, html, "Loja A")
		assert.Contains(t, html, "R$ 150,50")
		assert.Contains(t, html, "15/10/2026")
	})

	t.Run("aba de clientes escapa o conteúdo", func(t *testing.T) {
		page := NewPage(newDashboard(domain.TabClientes, domain.NewListFilter(1, 10, "", "", "", nil)), "")

		var buf bytes.Buffer
		require.NoError(t, renderer.Dashboard(&buf, page))

		html := buf.String()
		assert.Contains(t, html, "Maria &lt;Souza&gt;")
		assert.False(t, strings.Contains(html, "Maria <Souza>"))
		assert.Contains(t, html, "Página 1 de 3")
	})

	t.Run("aba de envios com data", func(t *testing.T) {
		page := NewPage(newDashboard(domain.TabEnvios, domain.NewListFilter(1, 10, "", "", "", nil)), "2026-10-15")

		var buf bytes.Buffer
		require.NoError(t, renderer.Dashboard(&buf, page))

		html := buf.String()
		assert.Contains(t, html, "N/A")
		assert.Contains(t, html, "15/10/2026 14:03:09")
		assert.Contains(t, html, "/api/export-csv?date=2026-10-15")
	})
}
