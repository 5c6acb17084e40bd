package usecase

import (
	"context"
	"fmt"
	"strings"

	"deal-tracker/internal/user"
	repo "deal-tracker/internal/user/repository"
	"deal-tracker/pkg/scope"
)

// Login stores the profile on first sight and issues a session token. Returning users keep
// their stored profile and admin flag.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	if strings.TrimSpace(input.Sub) == "" {
		return user.LoginOutput{}, fmt.Errorf("%w: sub is required", user.ErrInvalidProfile)
	}

	picture := input.Picture
	if picture == "" {
		picture = user.DefaultPicture
	}
	nickname := input.Nickname
	if nickname == "" {
		nickname = input.Name
	}

	u, created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{User: user.User{
		ID:       input.Sub,
		Sub:      input.Sub,
		Name:     input.Name,
		Nickname: nickname,
		Email:    input.Email,
		Picture:  picture,
		IsAdmin:  uc.isAdminEmail(input.Email),
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateUser: %v", err)
		return user.LoginOutput{}, err
	}
	if created {
		uc.l.Infof(ctx, "uc.Login: new user %s (admin=%v)", u.ID, u.IsAdmin)
	}

	token, err := uc.scope.CreateToken(scope.Payload{UserID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateToken: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{User: u, Created: created, Token: token}, nil
}

func (uc *implUseCase) isAdminEmail(email string) bool {
	return uc.admins[strings.ToLower(strings.TrimSpace(email))]
}
