package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"yatube/auth"
	"yatube/models"
	"yatube/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

type SignupRequest struct {
	Username        string `form:"username" binding:"required,max=150"`
	Email           string `form:"email" binding:"omitempty,email,max=254"`
	Password        string `form:"password" binding:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" binding:"required,eqfield=Password"`
}

var signupFormFields = map[string]string{
	"Username":        "username",
	"Email":           "email",
	"Password":        "password",
	"PasswordConfirm": "password_confirm",
}

const errBadLogin = "Please enter a correct username and password. Note that both fields may be case-sensitive."

func Login(c *gin.Context) {
	page := web.LoginPage{
		Base: base(c, "Log in"),
		Next: c.Query("next"),
	}
	if c.Request.Method != http.MethodPost {
		web.Render(c, http.StatusOK, "login.tmpl", page)
		return
	}
	var request LoginRequest
	err := c.ShouldBindWith(&request, binding.Form)
	page.Username = request.Username
	if request.Next != "" {
		page.Next = request.Next
	}
	if err != nil {
		page.Error = errBadLogin
		web.Render(c, http.StatusOK, "login.tmpl", page)
		return
	}
	user, ok := models.UserLogin(request.Username, request.Password)
	if !ok {
		page.Error = errBadLogin
		web.Render(c, http.StatusOK, "login.tmpl", page)
		return
	}
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		serverError(c, "Login", err)
		return
	}
	c.Redirect(http.StatusFound, safeRedirect(page.Next))
}

// Logout works for guests too, there is simply nothing to forget
func Logout(c *gin.Context) {
	if err := auth.LoadSession(c).LogoutUser(); err != nil {
		log.Printf("Logout: %v", err)
	}
	web.Render(c, http.StatusOK, "logged_out.tmpl", web.MessagePage{
		Base:    web.Base{Title: "Logged out"},
		Message: "You have been logged out.",
		Path:    c.Request.URL.Path,
	})
}

func Signup(c *gin.Context) {
	page := web.SignupPage{
		Base:   base(c, "Sign up"),
		Errors: map[string]string{},
	}
	if c.Request.Method != http.MethodPost {
		web.Render(c, http.StatusOK, "signup.tmpl", page)
		return
	}
	var request SignupRequest
	err := c.ShouldBindWith(&request, binding.Form)
	page.Form = web.SignupForm{Username: request.Username, Email: request.Email}
	page.Errors = fieldErrors(err, signupFormFields)
	if _, invalid := page.Errors["username"]; !invalid && request.Username != "" && !models.ValidUsername(request.Username) {
		page.Errors["username"] = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	}
	if len(page.Errors) > 0 {
		web.Render(c, http.StatusOK, "signup.tmpl", page)
		return
	}
	user, err := models.UserCreate(request.Username, request.Email, request.Password)
	if errors.Is(err, models.ErrUsernameTaken) {
		page.Errors["username"] = "A user with that username already exists."
		web.Render(c, http.StatusOK, "signup.tmpl", page)
		return
	} else if err != nil {
		serverError(c, "Signup", err)
		return
	}
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		serverError(c, "Signup", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// safeRedirect only follows local paths, anything else goes to the index
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
