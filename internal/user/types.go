package user

import "time"

// DefaultPicture is stored when the identity provider sends no avatar.
const DefaultPicture = "https://i.pravatar.cc/150?img=65"

// User is a signed-in account. ID equals the identity provider subject.
type User struct {
	ID         string
	Sub        string
	Name       string
	Nickname   string
	Email      string
	Picture    string
	IsAdmin    bool
	Properties []string
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

// LoginInput is the profile returned by the identity provider.
type LoginInput struct {
	Sub      string
	Name     string
	Nickname string
	Email    string
	Picture  string
}

type AccessInput struct {
	Password string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	User User
	// Created is true when this login created the account.
	Created bool
	// Token is the signed session token for the user.
	Token string
}

type DetailUserOutput struct {
	User User
}

// AccessOutput carries a guest session on success, or a quip on ErrWrongPassword.
type AccessOutput struct {
	Token   string
	GuestID string
	Quip    string
}
