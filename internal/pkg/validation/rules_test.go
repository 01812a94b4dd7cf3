package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
)

type jobTypeHolder struct {
	JobType models.JobType `json:"jobType" binding:"required,jobtype"`
}

func TestRegisterBindingRules_JobType(t *testing.T) {
	RegisterBindingRules()
	RegisterBindingRules()

	require.NoError(t, binding.Validator.ValidateStruct(&jobTypeHolder{JobType: models.JobTypeIntern}))

	err := binding.Validator.ValidateStruct(&jobTypeHolder{JobType: "Seasonal"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "jobType", verrs[0].Field())
	assert.Equal(t, "jobtype", verrs[0].Tag())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Jane.Doe@example.com", NormalizeEmail("  Jane.Doe@EXAMPLE.COM "))
	assert.Equal(t, "no-at-sign", NormalizeEmail("no-at-sign"))
}
