package exporting

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

const (
	separator = ";"
	lineBreak = "\n"

	dateLayout      = "02/01/2006"
	timestampLayout = "02/01/2006 15:04:05"
)

var header = []string{
	"ID Cliente",
	"Nome",
	"Nome Fantasia",
	"Nº Titulo",
	"Parcela",
	"Vencto Orig",
	"Valor Titulo",
	"WhatsApp",
	"Enviado em",
}

// WriteCSV escreve o cabeçalho e uma linha por envio. Todos os campos saem entre aspas,
// com aspas internas duplicadas, e as linhas são separadas por "\n" sem quebra final.
func WriteCSV(w io.Writer, envios []*domain.EnvioExport) error {
	bw := bufio.NewWriter(w)

	if err := writeRecord(bw, header); err != nil {
		return err
	}

	for _, envio := range envios {
		if _, err := bw.WriteString(lineBreak); err != nil {
			return err
		}
		if err := writeRecord(bw, record(envio)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func record(e *domain.EnvioExport) []string {
	return []string{
		e.ClienteID,
		e.Nome,
		stringOrEmpty(e.NomeFantasia),
		e.TituloNumero,
		stringOrEmpty(e.Parcela),
		formatDate(e.VenctoOrig),
		formatMoney(e.ValorTitulo),
		stringOrEmpty(e.Whatsapp),
		e.EnviadoEm.Format(timestampLayout),
	}
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := w.WriteString(separator); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
