package mockworker

import (
	"github.com/stretchr/testify/mock"

	"okta-sentinel/internal/model"
)

type Worker struct {
	mock.Mock
}

func (m *Worker) Enqueue(event model.AuditEvent) {
	m.Called(event)
}

func (m *Worker) Shutdown() {
	m.Called()
}
