package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"yatube/auth"
	"yatube/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	errRequired     = "This field is required."
	errInvalidGroup = "Select a valid choice. That choice is not one of the available choices."
)

// base is the common page header for the current viewer
func base(c *gin.Context, title string) web.Base {
	return web.Base{Title: title, Viewer: web.ViewerOf(auth.CurrentUser(c))}
}

// paramID parses a numeric path parameter, false means the page cannot exist
func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// lookupFailed renders 404 for missing rows and 500 for everything else
func lookupFailed(c *gin.Context, what string, err error) {
	viewer := web.ViewerOf(auth.CurrentUser(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		web.NotFound(c, viewer)
		return
	}
	log.Printf("%s: %v", what, err)
	web.ServerError(c, viewer)
}

func serverError(c *gin.Context, what string, err error) {
	log.Printf("%s: %v", what, err)
	web.ServerError(c, web.ViewerOf(auth.CurrentUser(c)))
}

// fieldErrors maps binding errors to messages keyed by form field name
func fieldErrors(err error, formNames map[string]string) map[string]string {
	result := map[string]string{}
	if err == nil {
		return result
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result["__all__"] = err.Error()
		return result
	}
	for _, fe := range validationErrors {
		name, ok := formNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		if _, exists := result[name]; !exists {
			result[name] = fieldErrorMessage(fe)
		}
	}
	return result
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return errRequired
	case "numeric":
		return errInvalidGroup
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "eqfield":
		return "The two password fields didn't match."
	}
	return "Enter a valid value."
}

// NotFoundPage is the handler for every unmatched route
func NotFoundPage(c *gin.Context) {
	web.NotFound(c, web.ViewerOf(auth.CurrentUser(c)))
}
