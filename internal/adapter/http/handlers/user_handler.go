package handlers

import (
	"errors"
	"net/http"

	request "travel_backoffice/internal/adapter/http/dto/request"
	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/usecase"
	"travel_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler is the admin CRUD over back-office accounts. Password hashes
// never leave the use case.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// CreateUser godoc
// @Summary   Create a user
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body  request.CreateUserRequest  true  "User"
// @Success   201  {object}  response.UserResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload("user", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

// ListUsers godoc
// @Summary   List users
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.UserResponse
// @Router    /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUsers(users))
}

// GetUser godoc
// @Summary   Get a user
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "User id"
// @Success   200  {object}  response.UserResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

// UpdateUser godoc
// @Summary   Update a user
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path  string                     true  "User id"
// @Param     body  body  request.UpdateUserRequest  true  "Fields to change"
// @Success   200  {object}  response.UserResponse
// @Failure   404  {object}  pkg.HTTPError
// @Failure   409  {object}  pkg.HTTPError
// @Router    /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload("user", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

// DeleteUser godoc
// @Summary   Delete a user
// @Tags      users
// @Security  BearerAuth
// @Param     id  path  string  true  "User id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Router    /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUser):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyInUse):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_IN_USE", "Email já está em uso", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
