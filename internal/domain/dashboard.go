package domain

import "time"

const (
	TabVencidos = "vencidos"
	TabClientes = "clientes"
	TabTitulos  = "titulos"
	TabEnvios   = "envios"
)

// ParseTab devolve a aba solicitada ou a aba de vencidos quando o valor é desconhecido
func ParseTab(tab string) string {
	switch tab {
	case TabClientes, TabTitulos, TabEnvios:
		return tab
	default:
		return TabVencidos
	}
}

type Stats struct {
	ClientesCount int64 `json:"clientes_count"`
	TitulosCount  int64 `json:"titulos_count"`
	EnviosCount   int64 `json:"envios_count"`
}

type Overdue struct {
	ReferenceDate time.Time         `json:"reference_date"`
	Items         []*ClienteVencido `json:"items"`
	Summary       OverdueSummary    `json:"summary"`
}

type Dashboard struct {
	Tab         string         `json:"tab"`
	Filter      ListFilter     `json:"-"`
	Stats       Stats          `json:"stats"`
	Clientes    Page[*Cliente] `json:"clientes"`
	Titulos     Page[*Titulo]  `json:"titulos"`
	Envios      Page[*Envio]   `json:"envios"`
	Overdue     Overdue        `json:"overdue"`
	GeneratedAt time.Time      `json:"generated_at"`
}
