package mockarchive

import (
	"context"

	"github.com/stretchr/testify/mock"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/repository"
)

type Archive struct {
	mock.Mock
}

// Interface compliance check
var _ repository.EventArchive = &Archive{}

func (m *Archive) InsertBatch(ctx context.Context, events []model.AuditEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
