package http

import (
	"deal-tracker/internal/user"
	"deal-tracker/pkg/response"
)

// --- Request DTOs ---

type accessReq struct {
	Password string `json:"password" binding:"required"`
}

func (r accessReq) validate() error { return nil }

func (r accessReq) toInput() user.AccessInput {
	return user.AccessInput{Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID         string            `json:"id"`
	Sub        string            `json:"sub"`
	Name       string            `json:"name"`
	Nickname   string            `json:"nickname"`
	Email      string            `json:"email"`
	Picture    string            `json:"picture"`
	IsAdmin    bool              `json:"is_admin"`
	Properties []string          `json:"properties"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newUserResp(u user.User) userResp {
	props := u.Properties
	if props == nil {
		props = []string{}
	}
	return userResp{
		ID:         u.ID,
		Sub:        u.Sub,
		Name:       u.Name,
		Nickname:   u.Nickname,
		Email:      u.Email,
		Picture:    u.Picture,
		IsAdmin:    u.IsAdmin,
		Properties: props,
		CreatedAt:  response.DateTime(u.CreatedAt),
	}
}

type adminResp struct {
	IsAdmin bool `json:"is_admin"`
}

type accessResp struct {
	Message string `json:"message"`
	GuestID string `json:"guest_id"`
	Token   string `json:"token"`
}

type logoutResp struct {
	LogoutURL string `json:"logout_url,omitempty"`
}
