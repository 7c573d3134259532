package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webchat/internal/api/middleware"
	"webchat/internal/services"
)

func (h *Handler) Home(c *gin.Context) {
	var email string
	if user := middleware.CurrentUser(c); user != nil {
		email = user.Email
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"UserEmail": email})
}

func (h *Handler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup creates the account and logs it in immediately by setting the
// session cookie. A registered email re-renders the form with an error and
// leaves the session untouched.
func (h *Handler) Signup(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, _, err := h.auth.Register(email, password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Email is already registered"})
			return
		}
		h.log.Error().Err(err).Msg("signup failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	h.setSession(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, _, err := h.auth.Login(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusBadRequest, "signin.html", gin.H{"Error": "Invalid email or password"})
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	h.setSession(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) setSession(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, h.cookieMaxAge, "/", "", false, true)
}
