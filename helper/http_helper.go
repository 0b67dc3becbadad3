package helper

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	locale_en "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
	"gorm.io/gorm"

	"admin-panel-server/models"
)

// HTTPHelper bundles the request validator and response writers shared by the
// handlers. Every error body has the shape {"error": "..."}.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Production bool
}

func NewHTTPHelper() *HTTPHelper {
	en := locale_en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	en_translations.RegisterDefaultTranslations(validate, trans) //nolint:errcheck

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
		Production: os.Getenv("APP_ENV") == "production",
	}
}

// StatusFromError maps the models error taxonomy onto HTTP statuses.
func StatusFromError(err error) int {
	var (
		validationErr models.ValidationError
		notFoundErr   models.NotFoundError
		forbiddenErr  models.ForbiddenError
		conflictErr   models.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrSuspended),
		errors.Is(err, models.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrAccessDenied),
		errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &notFoundErr),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the error with its mapped status. Internal failures are
// masked in production mode.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := StatusFromError(err)

	message := err.Error()
	if status == http.StatusNotFound && errors.Is(err, gorm.ErrRecordNotFound) {
		message = "Resource not found"
	}
	if status == http.StatusInternalServerError && u.Production {
		message = "Internal server error"
	}

	c.JSON(status, gin.H{"error": message})
}

// SendValidationError reports the first failed field with its translated message.
func (u *HTTPHelper) SendValidationError(c *gin.Context, verr validator.ValidationErrors) {
	message := "Invalid request"
	if len(verr) > 0 {
		message = verr[0].Translate(u.Translator)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
