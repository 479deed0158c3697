package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Envio é o registro de uma mensagem de WhatsApp enviada para um título
type Envio struct {
	ID           int64           `json:"id"`
	ClienteID    string          `json:"cliente_id"` // código do cliente
	NomeFantasia *string         `json:"nome_fantasia"`
	TituloNumero string          `json:"titulo_numero"`
	Parcela      *string         `json:"parcela"`
	VenctoOrig   *time.Time      `json:"vencto_orig"`
	ValorTitulo  decimal.Decimal `json:"valor_titulo"`
	EnviadoEm    time.Time       `json:"enviado_em"`
}

// EnvioExport é a linha exportada no CSV de envios do dia
type EnvioExport struct {
	ClienteID    string
	Nome         string
	NomeFantasia *string
	TituloNumero string
	Parcela      *string
	VenctoOrig   *time.Time
	ValorTitulo  decimal.NullDecimal
	Whatsapp     *string
	EnviadoEm    time.Time
}
