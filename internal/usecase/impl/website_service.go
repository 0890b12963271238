package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/domain/service"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// websiteService implements the WebsiteUsecase interface.
type websiteService struct {
	txManager       repository.TransactionManager
	websiteRepo     repository.WebsiteRepository
	deployPublisher service.DeployPublisher
	logger          *slog.Logger
}

// WebsiteServiceParams holds dependencies for the website service, injected by Fx.
type WebsiteServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	WebsiteRepo     repository.WebsiteRepository
	DeployPublisher service.DeployPublisher
	Logger          *slog.Logger
}

// NewWebsiteService is the constructor for websiteService.
func NewWebsiteService(params WebsiteServiceParams) usecase.WebsiteUsecase {
	return &websiteService{
		txManager:       params.TxManager,
		websiteRepo:     params.WebsiteRepo,
		deployPublisher: params.DeployPublisher,
		logger:          params.Logger,
	}
}

func (srv *websiteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveDraft replaces the stored content JSON of an owned website.
func (srv *websiteService) SaveDraft(ctx context.Context, userID, websiteID uuid.UUID, data json.RawMessage) error {
	if len(data) == 0 || !json.Valid(data) {
		return domainerrors.ErrValidationFailed.WrapMessage("website data must be valid JSON")
	}

	website, err := srv.ownedWebsite(ctx, srv.websiteRepo, userID, websiteID)
	if err != nil {
		return err
	}

	if err := srv.websiteRepo.UpdateData(ctx, website.ID, data); err != nil {
		return errors.Wrap(err, "failed to update website data")
	}

	srv.log(ctx).Debug("Saved website data", slog.Any("websiteID", website.ID))

	return nil
}

// Publish marks an owned website as live. The ownership check, the
// one-live-site rule and the flag flip run in one transaction; the deploy
// trigger fires after commit and never fails the publish.
func (srv *websiteService) Publish(ctx context.Context, userID, websiteID uuid.UUID) (string, error) {
	var website *entity.Website
	alreadyPublished := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		websiteRepo := repoFactory.WebsiteRepo()

		found, err := srv.ownedWebsite(ctx, websiteRepo, userID, websiteID)
		if err != nil {
			return err
		}
		website = found

		if website.Published {
			alreadyPublished = true

			return nil
		}

		liveCount, err := websiteRepo.CountPublishedByUser(ctx, userID, website.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count published websites")
		}
		if liveCount > 0 {
			return domainerrors.ErrPublishLimitReached
		}

		return websiteRepo.SetPublished(ctx, website.ID, true)
	})
	if err != nil {
		return "", err
	}

	if alreadyPublished {
		return "Already published.", nil
	}

	srv.log(ctx).Info("Published website",
		slog.Any("websiteID", website.ID),
		slog.String("slug", website.Slug))

	srv.triggerDeploy(ctx, website)

	return "Website published successfully.", nil
}

// Overview returns the caller's websites for the dashboard landing page.
func (srv *websiteService) Overview(ctx context.Context, userID uuid.UUID) ([]*entity.Website, error) {
	websites, err := srv.websiteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list websites")
	}

	return websites, nil
}

// ownedWebsite loads a website through the given repository and verifies ownership.
func (srv *websiteService) ownedWebsite(ctx context.Context, websiteRepo repository.WebsiteRepository, userID, websiteID uuid.UUID) (*entity.Website, error) {
	website, err := websiteRepo.FindByID(ctx, websiteID)
	if errors.Is(err, repository.ErrWebsiteNotFound) {
		return nil, domainerrors.ErrSiteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load website")
	}
	if website.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return website, nil
}

// triggerDeploy fires the rebuild trigger best-effort.
func (srv *websiteService) triggerDeploy(ctx context.Context, website *entity.Website) {
	if srv.deployPublisher == nil {
		return
	}

	event := &service.DeployEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		WebsiteID: website.ID.String(),
		Slug:      website.Slug,
	}
	if err := srv.deployPublisher.PublishDeployEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to fire deploy trigger",
			slog.Any("websiteID", website.ID),
			slog.Any("error", err))
	}
}
