package usecase

import (
	"context"
	"crypto/subtle"

	"deal-tracker/internal/user"
	"deal-tracker/pkg/scope"
)

const guestPrefix = "guest:"

// GrantAccess compares the shared access password and, when it matches, issues a session for a
// fresh guest id. A wrong password returns ErrWrongPassword with a quip in the output.
func (uc *implUseCase) GrantAccess(ctx context.Context, input user.AccessInput) (user.AccessOutput, error) {
	if uc.access == "" {
		return user.AccessOutput{}, user.ErrAccessDisabled
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(uc.access)) != 1 {
		uc.l.Infof(ctx, "uc.GrantAccess: wrong password")
		return user.AccessOutput{Quip: user.Quip(uc.pick(user.QuipCount()))}, user.ErrWrongPassword
	}

	guestID := guestPrefix + uc.newID()
	token, err := uc.scope.CreateToken(scope.Payload{UserID: guestID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GrantAccess CreateToken: %v", err)
		return user.AccessOutput{}, err
	}
	return user.AccessOutput{Token: token, GuestID: guestID}, nil
}
