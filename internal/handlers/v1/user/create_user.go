package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
)

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserBody is the request body fields for creating a user.
type CreateUserBody struct {
	Email        string `json:"email" format:"email" doc:"Email address, unique per user"`
	DisplayName  string `json:"displayName" minLength:"1" doc:"Display name"`
	BaseCurrency string `json:"baseCurrency" minLength:"3" maxLength:"3" doc:"ISO 4217 code listings are normalized into"`
}

// CreateUserResponse is the response body for creating a user.
type CreateUserResponse struct {
	ID string `json:"id" doc:"Created user UUID"`
}

// CreateUserOutput is the response for creating a user.
type CreateUserOutput struct {
	Status int
	Body   CreateUserResponse
}

// CreateUserHandler handles POST /v1/user.
type CreateUserHandler struct {
	Operator actionProcessor
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(op actionProcessor) *CreateUserHandler {
	return &CreateUserHandler{Operator: op}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/v1/user",
		Summary:       "Create a user",
		Description:   "Creates a user with the base currency their transactions are displayed in.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateUserInput(input *CreateUserInput) (*actions.CreateUser, error) {
	code, err := currency.ParseCode(input.Body.BaseCurrency)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid baseCurrency", err)
	}

	return &actions.CreateUser{
		Email:        input.Body.Email,
		DisplayName:  input.Body.DisplayName,
		BaseCurrency: code,
	}, nil
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateUserInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createUserMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.From(err, "failed to create user")
	}

	if logData != nil {
		logData.AddData("userID", action.CreatedID.String())
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body:   CreateUserResponse{ID: action.CreatedID.String()},
	}, nil
}
