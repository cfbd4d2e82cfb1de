package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/model"
	"sidehustle/internal/repository"
)

// DefaultStoreTimeout bounds every store call made by the catalog service.
const DefaultStoreTimeout = 5 * time.Second

// CatalogService is the only way the application reads or writes catalog entries.
//
// Read paths (List, Search, Categories, IncrementViews) degrade instead of failing;
// write paths propagate store errors.
type CatalogService interface {
	List(ctx context.Context, status string) []model.Entry
	GetByID(ctx context.Context, id string) (*model.Entry, error)
	Create(ctx context.Context, entry model.Entry, createdBy string) (*model.Entry, error)
	Update(ctx context.Context, id string, patch model.EntryPatch) (*model.Entry, error)
	Delete(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string)
	Search(ctx context.Context, term, category, status string) []model.Entry
	Categories(ctx context.Context) []model.CategoryCount
}

type catalogService struct {
	repo    repository.EntryRepository
	timeout time.Duration
	now     func() time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.EntryRepository, timeout time.Duration) CatalogService {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &catalogService{
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *catalogService) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// List returns entries with the given status ("all" for every status) in catalog order.
func (s *catalogService) List(ctx context.Context, status string) []model.Entry {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	entries, err := s.repo.Find(ctx, repository.ListFilter(status))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("status", status).Msg("list entries failed")
		return []model.Entry{}
	}
	log.Ctx(ctx).Debug().Int("count", len(entries)).Str("status", status).Msg("listed entries")
	return entries
}

// GetByID resolves id against both key spaces and returns the matching entry.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	pred, ok := repository.ResolveID(id)
	if !ok {
		return nil, apperrors.ErrEntryNotFound
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	entry, err := s.repo.FindOne(ctx, pred)
	if err != nil {
		if errors.Is(err, repository.ErrNoMatch) {
			return nil, apperrors.ErrEntryNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("id", id).Msg("get entry failed")
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// Create stores a new entry with the next display id.
//
// The display id is max+1 read before the insert with no isolation, so concurrent
// creators can receive the same id. Nothing in the store prevents that.
func (s *catalogService) Create(ctx context.Context, entry model.Entry, createdBy string) (*model.Entry, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	maxID, err := s.repo.MaxNumericID(ctx)
	if err != nil {
		return nil, fmt.Errorf("next entry id: %w", err)
	}

	now := s.now().UTC()
	entry.ObjectID = primitive.NilObjectID
	entry.ID = maxID + 1
	entry.Views = 0
	entry.CreatedAt = &now
	entry.UpdatedAt = &now
	entry.CreatedBy = createdBy
	if entry.LastUpdated == "" {
		entry.LastUpdated = now.Format(model.LastUpdatedLayout)
	}
	entry.Normalize()

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	log.Ctx(ctx).Info().Int64("id", entry.ID).Str("title", entry.Title).Msg("entry created")
	return &entry, nil
}

// Update applies a partial change to the entry id resolves to.
func (s *catalogService) Update(ctx context.Context, id string, patch model.EntryPatch) (*model.Entry, error) {
	pred, ok := repository.ResolveID(id)
	if !ok {
		return nil, apperrors.ErrEntryNotFound
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	entry, err := s.repo.Update(ctx, pred, patch.SetDocument(s.now().UTC()))
	if err != nil {
		if errors.Is(err, repository.ErrNoMatch) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("update entry %s: %w", id, err)
	}

	log.Ctx(ctx).Info().Int64("id", entry.ID).Str("title", entry.Title).Msg("entry updated")
	return entry, nil
}

// Delete removes the entry id resolves to. It reports false when nothing matched.
func (s *catalogService) Delete(ctx context.Context, id string) (bool, error) {
	pred, ok := repository.ResolveID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, pred)
	if err != nil {
		return false, fmt.Errorf("delete entry %s: %w", id, err)
	}
	if deleted {
		log.Ctx(ctx).Info().Str("id", id).Msg("entry deleted")
	}
	return deleted, nil
}

// IncrementViews bumps the view counter. Failures are logged and never returned.
func (s *catalogService) IncrementViews(ctx context.Context, id string) {
	pred, ok := repository.ResolveID(id)
	if !ok {
		return
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	if err := s.repo.IncrementViews(ctx, pred); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("id", id).Msg("increment views failed")
	}
}

// Search filters by status, category and a free-text term in catalog order.
func (s *catalogService) Search(ctx context.Context, term, category, status string) []model.Entry {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	q := repository.Query{Term: term, Category: category, Status: status}
	entries, err := s.repo.Find(ctx, repository.SearchFilter(q))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("term", term).Str("category", category).Msg("search entries failed")
		return []model.Entry{}
	}
	log.Ctx(ctx).Debug().Int("count", len(entries)).Str("term", term).Str("category", category).Msg("searched entries")
	return entries
}

// Categories returns per-category counts of published entries, led by the
// all-categories bucket whose count is the sum of the others.
func (s *catalogService) Categories(ctx context.Context) []model.CategoryCount {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	counts, err := s.repo.CategoryCounts(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("category counts failed")
		return []model.CategoryCount{{Name: model.AllCategories, Count: 0}}
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return append([]model.CategoryCount{{Name: model.AllCategories, Count: total}}, counts...)
}
