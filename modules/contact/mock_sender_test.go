package contact_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gavdev/portfolio/pkg/email"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
