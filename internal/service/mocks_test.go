package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sidehustle/internal/model"
	"sidehustle/internal/repository"
)

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Find(ctx context.Context, filter bson.M) ([]model.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindOne(ctx context.Context, pred repository.IDPredicate) (*model.Entry, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryRepository) MaxNumericID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) Insert(ctx context.Context, entry *model.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) InsertMany(ctx context.Context, entries []model.Entry) (int, error) {
	args := m.Called(ctx, entries)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) Update(ctx context.Context, pred repository.IDPredicate, set bson.M) (*model.Entry, error) {
	args := m.Called(ctx, pred, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryRepository) Delete(ctx context.Context, pred repository.IDPredicate) (bool, error) {
	args := m.Called(ctx, pred)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) IncrementViews(ctx context.Context, pred repository.IDPredicate) error {
	args := m.Called(ctx, pred)
	return args.Error(0)
}

func (m *MockEntryRepository) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCount), args.Error(1)
}

func (m *MockEntryRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	args := m.Called(ctx, email, at)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) CreateBatch(ctx context.Context, logs []model.AuditLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

// memEntryRepository keeps entries in memory and understands id predicates only.
type memEntryRepository struct {
	repository.EntryRepository

	mu      sync.Mutex
	entries []model.Entry
}

func (r *memEntryRepository) matches(e model.Entry, pred repository.IDPredicate) bool {
	return (pred.ObjectID != nil && e.ObjectID == *pred.ObjectID) ||
		(pred.Numeric != nil && e.ID == *pred.Numeric)
}

func (r *memEntryRepository) FindOne(_ context.Context, pred repository.IDPredicate) (*model.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if r.matches(e, pred) {
			found := e
			return &found, nil
		}
	}
	return nil, repository.ErrNoMatch
}

func (r *memEntryRepository) MaxNumericID(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for _, e := range r.entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max, nil
}

func (r *memEntryRepository) Insert(_ context.Context, entry *model.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ObjectID = primitive.NewObjectID()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memEntryRepository) IncrementViews(_ context.Context, pred repository.IDPredicate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.matches(r.entries[i], pred) {
			r.entries[i].Views++
			return nil
		}
	}
	return nil
}
