package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/service"
)

// GetUserInput is the Huma input for fetching a user.
type GetUserInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
}

// GetUserOutput is the Huma output for fetching a user.
type GetUserOutput struct {
	Body User
}

type userGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
}

// GetUserHandler handles GET /v1/user/{userID}.
type GetUserHandler struct {
	UserService userGetter
}

func NewGetUserHandler(svc userGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/v1/user/{userID}",
		Summary:     "Get a user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	id, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	u, err := h.UserService.GetUser(ctx, id)
	if err != nil {
		return nil, apierror.From(err, "failed to get user")
	}

	return &GetUserOutput{Body: fromService(u)}, nil
}
