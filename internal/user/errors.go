package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrForbidden      = errors.New("not allowed to view this user")
	ErrWrongPassword  = errors.New("wrong password")
	ErrAccessDisabled = errors.New("access password not configured")
)
