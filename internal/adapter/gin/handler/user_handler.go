package handler

import (
	"net/http"

	"user-api/internal/usecase/user"
	apperrors "user-api/pkg/errors"
	"user-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Error messages sent to clients
const (
	ErrMsgInvalidJSON      = "Invalid JSON"
	ErrMsgValidationFailed = "Validation failed"
	ErrMsgInternal         = "Internal Server Error"
)

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	body, err := c.GetRawData()
	if err != nil {
		h.handleError(c, apperrors.NewMalformedInputError(err))
		return
	}

	req, err := user.DecodeCreateUserRequest(body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	log.Debug("Gin CreateUser request", zap.Int("name_len", len(req.Name.Value)), zap.Int("email_len", len(req.Email.Value)))

	resp, err := h.uc.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(resp.User))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = toResponse(u)
	}

	c.JSON(http.StatusOK, users)
}

// handleError converts usecase errors to appropriate HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var malformed *apperrors.MalformedInputError
	if apperrors.As(err, &malformed) {
		log.Error("Error processing request", zap.Error(err))
		c.JSON(malformed.HTTPStatus(), ErrorResponse{Error: ErrMsgInvalidJSON})
		return
	}

	var validation *apperrors.ValidationError
	if apperrors.As(err, &validation) {
		log.Info("request rejected by validation", zap.Strings("details", validation.Details))
		c.JSON(validation.HTTPStatus(), ErrorResponse{
			Error:   ErrMsgValidationFailed,
			Details: validation.Details,
		})
		return
	}

	log.Error("request failed", zap.Error(err))
	c.JSON(apperrors.StatusOf(err), ErrorResponse{Error: ErrMsgInternal})
}

func toResponse(u user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
