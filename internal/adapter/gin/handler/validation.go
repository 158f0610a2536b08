package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "bank-user-service/pkg/errors"
)

// fieldMessages holds the client-facing message per JSON field and rule.
var fieldMessages = map[string]map[string]string{
	"firstname": {"required": "The firstname of the client may not be empty"},
	"lastname":  {"required": "The lastname of the client may not be empty"},
	"email": {
		"required":     "The email of the client may not be empty",
		"client_email": "Email should be valid",
	},
}

// Address grammar for client_email: dot-atom or quoted local part, and a
// domain of one or more labels or an IP literal. Single-label domains such
// as "localhost" are accepted.
const (
	emailAtom        = `[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~\x{0080}-\x{FFFF}-]+`
	emailDomainLabel = `[a-z0-9\x{0080}-\x{FFFF}](?:[a-z0-9\x{0080}-\x{FFFF}-]{0,61}[a-z0-9\x{0080}-\x{FFFF}])?`
)

var (
	emailLocalPart = regexp.MustCompile(`(?i)^(?:` + emailAtom + `(?:\.` + emailAtom + `)*|"(?:[^"\\]|\\.)*")$`)
	emailDomain    = regexp.MustCompile(`(?i)^(?:` + emailDomainLabel + `(?:\.` + emailDomainLabel + `)*|\[[0-9a-f:.]+\])$`)
)

const (
	maxEmailLocalLength  = 64
	maxEmailDomainLength = 255
)

// isClientEmail reports whether s is an acceptable client email address.
func isClientEmail(s string) bool {
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > maxEmailLocalLength || len(domain) > maxEmailDomainLength {
		return false
	}
	return emailLocalPart.MatchString(local) && emailDomain.MatchString(domain)
}

var registerValidatorsOnce sync.Once

// registerValidators makes validator report JSON field names instead of Go
// struct field names and adds the client_email rule.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("client_email", func(fl validator.FieldLevel) bool {
			return isClientEmail(fl.Field().String())
		})
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

func validationMessage(field, rule string) string {
	if msg, ok := fieldMessages[field][rule]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// bindJSON decodes and validates the body into out. On failure it returns a
// ValidationError for rule violations or a MalformedRequestError otherwise.
func bindJSON(c *gin.Context, out any) error {
	err := c.ShouldBindJSON(out)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = validationMessage(fe.Field(), fe.Tag())
		}
		return apperrors.NewValidationError(fields)
	}

	return apperrors.NewMalformedRequestError(err)
}
