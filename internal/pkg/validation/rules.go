package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/jobsearch/internal/app/models"
)

// PasswordMinLength is the shortest accepted account password.
const PasswordMinLength = 8

var registerOnce sync.Once

// RegisterBindingRules installs the custom tags used by request DTOs on
// gin's validator. Safe to call more than once.
func RegisterBindingRules() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("jobtype", validJobType)
		v.RegisterTagNameFunc(jsonTagName)
	})
}

func validJobType(fl validator.FieldLevel) bool {
	return models.JobType(fl.Field().String()).Valid()
}

// jsonTagName makes validation errors report JSON field names.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// NormalizeEmail lowercases the domain part of an address, keeping the
// local part as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
