package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-service/internal/api/metrics"
	"github.com/99minutos/user-service/internal/core/domain"
	"github.com/99minutos/user-service/internal/core/ports"
)

// UserHandler handles the account endpoints under /user.
type UserHandler struct {
	service ports.AccountService
}

func NewUserHandler(service ports.AccountService) *UserHandler {
	return &UserHandler{service: service}
}

// Create registers a new account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: msgUserCreated})
}

// Edit updates the full name and/or password of an account.
//
// @Summary      Edit a user
// @Description  The email identifies the account and is never changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      editUserRequest  true  "Lookup email and new values"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/edit [put]
func (h *UserHandler) Edit(c echo.Context) error {
	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	err := h.service.Edit(c.Request().Context(), ports.EditUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msgUserUpdated})
}

// Delete removes an account.
//
// @Summary      Delete a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      deleteUserRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/delete [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	if err := h.service.Delete(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: msgUserDeleted})
}

// GetAll lists every account.
//
// @Summary      List users
// @Description  Returns name, email and password digest of every account.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /user/getAll [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listUsersResponse{Users: make([]userItem, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userItem{
			FullName: u.FullName,
			Email:    u.Email,
			Password: u.Password,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Login checks an email and password pair. No session or token is issued.
//
// @Summary      Authenticate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(result(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msgUserLoggedIn})
}

func invalidPayload(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload).SetInternal(err)
}

// result classifies err for the result-labelled counters.
func result(err error) string {
	var de *domain.Error
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.As(err, &de):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
