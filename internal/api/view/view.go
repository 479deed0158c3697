// Package view renderiza o dashboard em HTML a partir dos templates embutidos
package view

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// LimitOptions são os tamanhos de página oferecidos na interface
var LimitOptions = []int{10, 50, 100}

type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"money":    Money,
		"integer":  Integer,
		"date":     Date,
		"datetime": DateTime,
		"orNA":     OrNA,
		"deref":    Deref,
	}

	tpl, err := template.New("dashboard").Funcs(funcs).ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Dashboard(w io.Writer, page *Page) error {
	return r.tpl.ExecuteTemplate(w, "dashboard.gohtml", page)
}

// Page é o estado da tela: os dados do dashboard e os parâmetros que geraram a consulta
type Page struct {
	*domain.Dashboard

	Search string
	Date   string // YYYY-MM-DD, vazio quando não filtrado
	Sort   string
	Order  string // "asc" ou "desc"
	Limit  int
}

func NewPage(dashboard *domain.Dashboard, date string) *Page {
	order := "desc"
	if dashboard.Filter.Order == domain.SortAsc {
		order = "asc"
	}

	return &Page{
		Dashboard: dashboard,
		Search:    dashboard.Filter.Search,
		Date:      date,
		Sort:      dashboard.Filter.Sort,
		Order:     order,
		Limit:     dashboard.Filter.Limit,
	}
}

func (p *Page) values() url.Values {
	v := url.Values{}
	v.Set("tab", p.Tab)
	v.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		v.Set("query", p.Search)
	}
	if p.Date != "" {
		v.Set("date", p.Date)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
		v.Set("order", p.Order)
	}
	return v
}

func link(v url.Values) template.URL {
	return template.URL("/?" + v.Encode())
}

// TabURL troca de aba voltando para a primeira página
func (p *Page) TabURL(tab string) template.URL {
	v := p.values()
	v.Set("tab", tab)
	v.Set("page", "1")
	return link(v)
}

// SortURL alterna a direção quando a coluna já está ordenada; caso contrário ordena DESC
func (p *Page) SortURL(column string) template.URL {
	v := p.values()
	v.Set("sort", column)
	v.Set("page", "1")

	if p.Sort == column && p.Order == "desc" {
		v.Set("order", "asc")
	} else {
		v.Set("order", "desc")
	}

	return link(v)
}

// SortIndicator devolve a seta da coluna ordenada
func (p *Page) SortIndicator(column string) string {
	if p.Sort != column {
		return "↕"
	}
	if p.Order == "asc" {
		return "↑"
	}
	return "↓"
}

func (p *Page) PageURL(page int) template.URL {
	v := p.values()
	v.Set("page", strconv.Itoa(page))
	return link(v)
}

func (p *Page) LimitURL(limit int) template.URL {
	v := p.values()
	v.Set("limit", strconv.Itoa(limit))
	v.Set("page", "1")
	return link(v)
}

func (p *Page) LimitOptions() []int {
	return LimitOptions
}

// Pagination devolve a paginação da aba atual
func (p *Page) Pagination() Pagination {
	switch p.Tab {
	case domain.TabClientes:
		return newPagination(p.Clientes.Page, p.Clientes.TotalPages, p.Clientes.Total)
	case domain.TabTitulos:
		return newPagination(p.Titulos.Page, p.Titulos.TotalPages, p.Titulos.Total)
	case domain.TabEnvios:
		return newPagination(p.Envios.Page, p.Envios.TotalPages, p.Envios.Total)
	default:
		return Pagination{}
	}
}

type Pagination struct {
	Current  int
	Total    int
	Records  int64
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int
}

func newPagination(current, total int, records int64) Pagination {
	return Pagination{
		Current:  current,
		Total:    total,
		Records:  records,
		HasPrev:  current > 1,
		HasNext:  current < total,
		PrevPage: current - 1,
		NextPage: current + 1,
	}
}
