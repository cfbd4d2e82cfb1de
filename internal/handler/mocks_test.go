package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sidehustle/internal/auth"
	"sidehustle/internal/model"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, status string) []model.Entry {
	return m.Called(ctx, status).Get(0).([]model.Entry)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, entry model.Entry, createdBy string) (*model.Entry, error) {
	args := m.Called(ctx, entry, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, id string, patch model.EntryPatch) (*model.Entry, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) IncrementViews(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockCatalogService) Search(ctx context.Context, term, category, status string) []model.Entry {
	return m.Called(ctx, term, category, status).Get(0).([]model.Entry)
}

func (m *MockCatalogService) Categories(ctx context.Context) []model.CategoryCount {
	return m.Called(ctx).Get(0).([]model.CategoryCount)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*model.Principal, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.Principal, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Principal), args.Error(2)
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) (*model.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

// recordingAudit keeps every recorded entry.
type recordingAudit struct {
	entries []model.AuditLog
}

func (r *recordingAudit) Record(_ context.Context, entry model.AuditLog) {
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) Close() {}
