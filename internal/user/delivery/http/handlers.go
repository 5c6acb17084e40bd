package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/model"
	"deal-tracker/internal/user"
	pkgErrors "deal-tracker/pkg/errors"
	"deal-tracker/pkg/response"
)

// Login godoc
// @Summary     Start login
// @Description Redirects the browser to the Auth0 login page.
// @Tags        Auth
// @Success     302
// @Failure     503 {object} response.Resp "Login not configured"
// @Router      /api/v1/auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	if h.auth0 == nil {
		response.Error(c, errLoginUnavailable)
		return
	}

	state, err := newState()
	if err != nil {
		h.l.Errorf(ctx, "user.http.Login newState: %v", err)
		response.InternalError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, int(stateTTL.Seconds()), "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, h.auth0.AuthCodeURL(state))
}

// Callback godoc
// @Summary     Finish login
// @Description Exchanges the Auth0 code, stores the user on first login, sets the session cookie and redirects.
// @Tags        Auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State echoed from /auth/login"
// @Success     302
// @Failure     400 {object} response.Resp "Invalid state"
// @Failure     502 {object} response.Resp "Identity provider error"
// @Router      /api/v1/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if h.auth0 == nil {
		response.Error(c, errLoginUnavailable)
		return
	}

	want, err := c.Cookie(stateCookie)
	if err != nil || want == "" || c.Query("state") != want {
		response.Error(c, errInvalidState)
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.cookie.Secure, true)

	profile, err := h.auth0.Exchange(ctx, c.Query("code"))
	if err != nil {
		h.l.Warnf(ctx, "auth0.Exchange: %v", err)
		response.Error(c, errLoginFailed)
		return
	}

	out, err := h.uc.Login(ctx, user.LoginInput{
		Sub:      profile.Sub,
		Name:     profile.Name,
		Nickname: profile.Nickname,
		Email:    profile.Email,
		Picture:  profile.Picture,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, out.Token)
	c.Redirect(http.StatusFound, h.cookie.RedirectURL)
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie and returns the Auth0 logout URL when Auth0 is configured.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} logoutResp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)

	var resp logoutResp
	if h.auth0 != nil {
		resp.LogoutURL = h.auth0.LogoutURL(h.cookie.RedirectURL)
	}
	response.OK(c, resp)
}

// Access godoc
// @Summary     Access gate
// @Description Checks the shared access password and starts a guest session. A wrong password answers 401 with a quip as the message.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body accessReq true "Password"
// @Success     200 {object} accessResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Wrong password"
// @Failure     503 {object} response.Resp "Access gate disabled"
// @Router      /api/v1/auth/access [POST]
func (h *handler) Access(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAccessReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.GrantAccess(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, user.ErrWrongPassword) {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, out.Quip))
			return
		}
		h.l.Errorf(ctx, "uc.GrantAccess: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, out.Token)
	response.OK(c, accessResp{Message: "Access granted", GuestID: out.GuestID, Token: out.Token})
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user's profile.
// @Tags        Users
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.Anonymous() {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	out, err := h.uc.Detail(ctx, sc, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newUserResp(out.User))
}

// Detail godoc
// @Summary     User by ID
// @Description Returns a user's profile. Users may read their own account; admins may read any.
// @Tags        Users
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.Anonymous() {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newUserResp(out.User))
}

// IsAdmin godoc
// @Summary     Admin flag
// @Description Reports whether the user is an admin. Unknown users are not.
// @Tags        Users
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} adminResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/users/{id}/admin [GET]
func (h *handler) IsAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	isAdmin, err := h.uc.IsAdmin(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.IsAdmin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, adminResp{IsAdmin: isAdmin})
}
