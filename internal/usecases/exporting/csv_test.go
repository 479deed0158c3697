package exporting

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

const expectedHeader = `"ID Cliente";"Nome";"Nome Fantasia";"Nº Titulo";"Parcela";"Vencto Orig";"Valor Titulo";"WhatsApp";"Enviado em"`

func stringPtr(s string) *string {
	return &s
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, expectedHeader, buf.String())
}

func TestWriteCSV_Rows(t *testing.T) {
	vencto := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	envios := []*domain.EnvioExport{
		{
			ClienteID:    "C001",
			Nome:         `Maria "Mia" Souza`,
			NomeFantasia: stringPtr("Ótica Central; Filial"),
			TituloNumero: "000123",
			Parcela:      stringPtr("1"),
			VenctoOrig:   &vencto,
			ValorTitulo:  decimal.NewNullDecimal(decimal.RequireFromString("1234.5")),
			Whatsapp:     stringPtr("5511999990000"),
			EnviadoEm:    time.Date(2026, 10, 15, 14, 3, 9, 0, time.UTC),
		},
		{
			ClienteID:    "C002",
			Nome:         "João Lima",
			TituloNumero: "000124",
			EnviadoEm:    time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, envios))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, expectedHeader, lines[0])
	assert.Equal(t,
		`"C001";"Maria ""Mia"" Souza";"Ótica Central; Filial";"000123";"1";"14/10/2026";"1234.50";"5511999990000";"15/10/2026 14:03:09"`,
		lines[1])
	assert.Equal(t,
		`"C002";"João Lima";"";"000124";"";"";"";"";"15/10/2026 08:00:00"`,
		lines[2])
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "envios_2026-10-15.csv", FileName(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))
}

func TestService_ExportEnvios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	envioRepo := mocks.NewMockEnvioRepository(ctrl)
	service := NewService(envioRepo)

	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sem envios gera apenas o cabeçalho", func(t *testing.T) {
		envioRepo.EXPECT().ListByDate(gomock.Any(), date).Return([]*domain.EnvioExport{}, nil)

		export, err := service.ExportEnvios(context.Background(), date)
		require.NoError(t, err)

		assert.Equal(t, "envios_2026-10-15.csv", export.FileName)
		assert.Equal(t, 0, export.Rows)
		assert.Equal(t, expectedHeader, string(export.Content))
	})

	t.Run("falha na consulta", func(t *testing.T) {
		envioRepo.EXPECT().ListByDate(gomock.Any(), date).Return(nil, errors.New("pool exausto"))

		export, err := service.ExportEnvios(context.Background(), date)
		assert.Nil(t, export)
		assert.ErrorIs(t, err, ErrFetchEnvios)
	})
}
