package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tasklist/internal/delivery/context"
	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listService implements the ListUsecase interface.
type listService struct {
	txManager repository.TransactionManager
	listRepo  repository.ListRepository
	logger    *slog.Logger
}

// ListServiceParams holds dependencies for listService, injected by Fx.
type ListServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ListRepo  repository.ListRepository
	Logger    *slog.Logger
}

// NewListService is the constructor for listService.
func NewListService(params ListServiceParams) usecase.ListUsecase {
	return &listService{
		txManager: params.TxManager,
		listRepo:  params.ListRepo,
		logger:    params.Logger,
	}
}

func (srv *listService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLists returns a page of the owner's lists, ordered by id ascending.
func (srv *listService) ListLists(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.List, error) {
	skip, limit = normalizePage(skip, limit)

	lists, err := srv.listRepo.FindByOwner(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lists")
	}

	return lists, nil
}

// CreateList persists a new list owned by ownerID.
func (srv *listService) CreateList(ctx context.Context, ownerID int64, input *usecase.CreateListInput) (*entity.List, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("list name is required")
	}

	list := &entity.List{
		Name:   name,
		UserID: ownerID,
		Tasks:  []*entity.Task{},
	}

	if err := srv.listRepo.Create(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to create list")
	}

	srv.log(ctx).Info("List created", slog.Int64("listID", list.ID), slog.Int64("ownerID", ownerID))

	return list, nil
}

// GetList retrieves a single owned list.
func (srv *listService) GetList(ctx context.Context, ownerID, listID int64) (*entity.List, error) {
	return srv.findOwnedList(ctx, ownerID, listID)
}

// GetListByName retrieves the owner's list with the given name.
func (srv *listService) GetListByName(ctx context.Context, ownerID int64, name string) (*entity.List, error) {
	list, err := srv.listRepo.FindByName(ctx, ownerID, name)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound.WrapMessage("no list with that name")
		}

		return nil, errors.Wrap(err, "failed to find list by name")
	}

	return list, nil
}

// DeleteList removes the list and all of its tasks in a single transaction.
// Deleting an absent or foreign list fails with not-found instead of touching
// anything.
func (srv *listService) DeleteList(ctx context.Context, ownerID, listID int64) (*entity.List, error) {
	list, err := srv.findOwnedList(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TaskRepo().DeleteByList(ctx, listID); err != nil {
			return errors.Wrap(err, "failed to delete tasks of list")
		}

		if err := repoFactory.ListRepo().Delete(ctx, listID); err != nil {
			return errors.Wrap(err, "failed to delete list")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute list deletion transaction", slog.Int64("listID", listID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("List deleted", slog.Int64("listID", listID), slog.Int64("ownerID", ownerID))

	return list, nil
}

// findOwnedList loads a list and verifies ownership. Lists owned by other
// users are reported as not found so the API never confirms their existence.
func (srv *listService) findOwnedList(ctx context.Context, ownerID, listID int64) (*entity.List, error) {
	list, err := srv.listRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound.WrapMessage("no such list")
		}

		return nil, errors.Wrap(err, "failed to find list")
	}

	if list.UserID != ownerID {
		return nil, domainerrors.ErrListNotFound.WrapMessage("list owned by another user")
	}

	return list, nil
}

// normalizePage applies the default page size and clamps negative values.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = usecase.DefaultPageLimit
	}

	return skip, limit
}
