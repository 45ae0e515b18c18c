package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"github.com/shopnet/backend/internal/infrastructure/feed"
	"github.com/shopnet/backend/internal/infrastructure/queue"
	"go.uber.org/zap"
)

// FeedFetcher downloads a price list by URL
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TaskSubmitter enqueues background work
type TaskSubmitter interface {
	Submit(task queue.Task) error
}

// ImportService replaces a partner's catalog from a YAML price list.
// The download and load run in the background, the HTTP request only
// validates and enqueues.
type ImportService struct {
	fetcher  FeedFetcher
	shopRepo shop.ShopRepository
	importer catalog.Importer
	tasks    TaskSubmitter
	logger   *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(
	fetcher FeedFetcher,
	shopRepo shop.ShopRepository,
	importer catalog.Importer,
	tasks TaskSubmitter,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		fetcher:  fetcher,
		shopRepo: shopRepo,
		importer: importer,
		tasks:    tasks,
		logger:   logger,
	}
}

// StartImport validates the feed URL and enqueues the import
func (s *ImportService) StartImport(ctx context.Context, input StartImportInput) error {
	if err := shop.ValidateFeedURL(input.URL); err != nil {
		return err
	}

	err := s.tasks.Submit(queue.Task{
		Name: "feed-import",
		Run: func(taskCtx context.Context) error {
			return s.RunImport(taskCtx, input)
		},
	})
	if err != nil {
		s.logger.Error("Failed to enqueue feed import", zap.Error(err))
		return shared.NewDomainError("IMPORT_BUSY", "Import queue is full, try again later")
	}

	s.logger.Info("Feed import enqueued",
		zap.String("user_id", input.UserID.String()),
		zap.String("url", input.URL))

	return nil
}

// RunImport downloads, parses and loads the price list synchronously
func (s *ImportService) RunImport(ctx context.Context, input StartImportInput) error {
	data, err := s.fetcher.Fetch(ctx, input.URL)
	if err != nil {
		s.logger.Error("Failed to fetch feed",
			zap.String("url", input.URL),
			zap.Error(err))
		return shared.NewDomainError("FETCH_FAILED", "Failed to download price list")
	}

	file, err := feed.Decode(data)
	if err != nil {
		s.logger.Error("Failed to parse feed",
			zap.String("url", input.URL),
			zap.Error(err))
		return shared.NewDomainError("INVALID_FEED", "Price list is not valid YAML")
	}

	partnerShop, err := s.resolveShop(ctx, file.Shop, input.UserID)
	if err != nil {
		return err
	}

	if err := partnerShop.SetFeedURL(input.URL); err != nil {
		return err
	}
	if err := s.shopRepo.Save(ctx, partnerShop); err != nil {
		s.logger.Error("Failed to save shop", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to import price list")
	}

	categories, items := file.ToImport()
	if err := s.importer.ReplaceShopCatalog(ctx, partnerShop.ID, categories, items); err != nil {
		s.logger.Error("Failed to load price list",
			zap.String("shop_id", partnerShop.ID.String()),
			zap.Error(err))
		return err
	}

	s.logger.Info("Price list imported",
		zap.String("shop", partnerShop.Name),
		zap.Int("categories", len(categories)),
		zap.Int("items", len(items)))

	return nil
}

// resolveShop finds the shop named in the feed, creating or claiming it
// for the importing user. A shop owned by someone else cannot be imported into.
func (s *ImportService) resolveShop(ctx context.Context, name string, userID uuid.UUID) (*shop.Shop, error) {
	existing, err := s.shopRepo.FindByName(ctx, name)
	if errors.Is(err, shared.ErrNotFound) {
		return shop.NewShop(name, &userID)
	}
	if err != nil {
		return nil, err
	}

	if existing.UserID != nil && *existing.UserID != userID {
		return nil, shared.NewDomainError("FORBIDDEN", "Shop belongs to another account")
	}
	if existing.UserID == nil {
		existing.UserID = &userID
	}

	return existing, nil
}
