package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do dashboard
var (
	// Erros de validação
	ErrCodigoRequired = errors.New("codigo do cliente é obrigatório")

	// Erros de banco de dados
	ErrFetchDashboard      = errors.New("erro ao carregar dados do dashboard")
	ErrFetchTitulosCliente = errors.New("erro ao buscar títulos do cliente")
)

// DashboardError é um erro com contexto adicional para as consultas do dashboard
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
