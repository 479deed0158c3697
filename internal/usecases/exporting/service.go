package exporting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/cobranca-dashboard/infrastructure/repository"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
)

var ErrFetchEnvios = errors.New("erro ao buscar envios para exportação")

// Export é o arquivo CSV pronto para download
type Export struct {
	FileName string
	Rows     int
	Content  []byte
}

type ExportService interface {
	// ExportEnvios gera o CSV dos envios de WhatsApp realizados na data informada
	ExportEnvios(ctx context.Context, date time.Time) (*Export, error)
}

type Service struct {
	envioRepository repository.EnvioRepository
}

func NewService(envioRepository repository.EnvioRepository) ExportService {
	return &Service{
		envioRepository: envioRepository,
	}
}

func FileName(date time.Time) string {
	return fmt.Sprintf("envios_%s.csv", date.Format(time.DateOnly))
}

func (s *Service) ExportEnvios(ctx context.Context, date time.Time) (*Export, error) {
	logger := log.ForContext(ctx)

	envios, err := s.envioRepository.ListByDate(ctx, date)
	if err != nil {
		logger.WithError(err).Error("export: falha ao buscar envios")
		return nil, fmt.Errorf("%w: %w", ErrFetchEnvios, err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, envios); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
	}

	logger.Infof("export: %d envios exportados para %s", len(envios), date.Format(time.DateOnly))

	return &Export{
		FileName: FileName(date),
		Rows:     len(envios),
		Content:  buf.Bytes(),
	}, nil
}
