package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// UserController serves the current user's profile.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile returns the authenticated user
// @Summary Get the current user
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Current user"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /accounts/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	user, err := c.userService.GetUserProfile(ctx.Request.Context(), actor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.NewUserResponse(user))
}

// ReplaceProfile handles PUT; email and password are required
// @Summary Replace the current user's profile
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /accounts/me [put]
func (c *UserController) ReplaceProfile(ctx *gin.Context) {
	c.updateProfile(ctx, false)
}

// PatchProfile handles PATCH; any subset of fields may be sent
// @Summary Update the current user's profile
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /accounts/me [patch]
func (c *UserController) PatchProfile(ctx *gin.Context) {
	c.updateProfile(ctx, true)
}

func (c *UserController) updateProfile(ctx *gin.Context, partial bool) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	if !partial {
		if missing := req.MissingForFullUpdate(); len(missing) > 0 {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError(missing[0], "This field is required."))
			return
		}
	}

	actor := middleware.CurrentUser(ctx)
	user, err := c.userService.UpdateUserProfile(ctx.Request.Context(), actor.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.NewUserResponse(user))
}
