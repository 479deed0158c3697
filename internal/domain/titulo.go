package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusVencidoOntem = "Vencido Ontem"
	StatusVencido      = "Vencido"
)

type Titulo struct {
	ID           int64           `json:"id"`
	Codigo       string          `json:"codigo"` // código do cliente
	NumeroTitulo string          `json:"numero_titulo"`
	Parcela      *string         `json:"parcela"`
	DtEmissao    *time.Time      `json:"dt_emissao"`
	VenctoOrig   *time.Time      `json:"vencto_orig"`
	VenctoReal   *time.Time      `json:"vencto_real"`
	ValorTitulo  decimal.Decimal `json:"valor_titulo"`
	Saldo        decimal.Decimal `json:"saldo"`
	FilialTitulo *string         `json:"filial_titulo"`
	Prefixo      *string         `json:"prefixo"`
	Tipo         *string         `json:"tipo"`
	Portador     *string         `json:"portador"`
	Status       *string         `json:"status"`
	CriadoEm     time.Time       `json:"criado_em"`
}

// Aberto indica se o título ainda possui saldo a receber
func (t Titulo) Aberto() bool {
	return t.Saldo.IsPositive()
}

// TituloVencido é um título vencido até a data de referência, com o nome do cliente
type TituloVencido struct {
	Codigo       string          `json:"codigo"`
	Nome         string          `json:"nome"`
	NumeroTitulo string          `json:"numero_titulo"`
	Parcela      *string         `json:"parcela"`
	DtEmissao    *time.Time      `json:"dt_emissao"`
	VenctoReal   time.Time       `json:"vencto_real"`
	ValorTitulo  decimal.Decimal `json:"valor_titulo"`
	Saldo        decimal.Decimal `json:"saldo"`
	FilialTitulo *string         `json:"filial_titulo"`
	Prefixo      *string         `json:"prefixo"`
	Tipo         *string         `json:"tipo"`
	CriadoEm     time.Time       `json:"criado_em"`
	Status       string          `json:"status"`
}

// StatusVencimento classifica o vencimento em relação à data de referência (ontem)
func StatusVencimento(vencto, referencia time.Time) string {
	if SameDay(vencto, referencia) {
		return StatusVencidoOntem
	}
	return StatusVencido
}

// SameDay compara apenas ano, mês e dia
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
