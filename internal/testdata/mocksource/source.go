package mocksource

import (
	"context"

	"github.com/stretchr/testify/mock"

	"okta-sentinel/internal/model"
)

type Source struct {
	mock.Mock
}

func (m *Source) TestConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Source) AuthenticationLogs(ctx context.Context, hoursBack, limit int) ([]model.AuditEvent, error) {
	args := m.Called(ctx, hoursBack, limit)
	return args.Get(0).([]model.AuditEvent), args.Error(1)
}
