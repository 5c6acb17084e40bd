package usecase

import (
	"context"

	"deal-tracker/internal/model"
	"deal-tracker/internal/user"
	repo "deal-tracker/internal/user/repository"
)

// Detail returns a user. Callers may read their own account; admins may read any.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (user.DetailUserOutput, error) {
	if sc.UserID != id && !sc.IsAdmin {
		return user.DetailUserOutput{}, user.ErrForbidden
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	if u.ID == "" {
		return user.DetailUserOutput{}, user.ErrUserNotFound
	}
	return user.DetailUserOutput{User: u}, nil
}

// IsAdmin reports the stored admin flag. Unknown users are not admins.
func (uc *implUseCase) IsAdmin(ctx context.Context, id string) (bool, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.IsAdmin GetOneUser: %v", err)
		return false, err
	}
	return u.ID != "" && u.IsAdmin, nil
}
