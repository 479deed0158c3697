package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthRepo := mocks.NewMockHealthRepository(ctrl)
	service := NewService(healthRepo)

	t.Run("banco disponível", func(t *testing.T) {
		agora := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
		healthRepo.EXPECT().Check(gomock.Any()).Return(&domain.DatabaseInfo{CurrentTime: agora, Version: "PostgreSQL 16.4"}, nil)

		status := service.Check(context.Background())

		assert.True(t, status.Healthy())
		assert.Equal(t, domain.DatabaseConnected, status.Database)
		assert.Equal(t, agora, status.Timestamp)
		assert.Equal(t, "PostgreSQL 16.4", status.Version)
		assert.Empty(t, status.Error)
	})

	t.Run("banco indisponível", func(t *testing.T) {
		healthRepo.EXPECT().Check(gomock.Any()).Return(nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

		status := service.Check(context.Background())

		assert.False(t, status.Healthy())
		assert.Equal(t, domain.HealthStatusUnhealthy, status.Status)
		assert.Equal(t, domain.DatabaseDisconnected, status.Database)
		assert.Contains(t, status.Error, "connection refused")
		assert.False(t, status.Timestamp.IsZero())
	})
}
