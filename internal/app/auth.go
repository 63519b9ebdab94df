package app

import (
	"errors"
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/token"
)

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input api.RegisterRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := domain.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		Phone:     input.Phone,
		Status:    domain.UserStatusSimple,
		Activated: true,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			app.duplicateFieldResponse(w, r, "username", "user with this username already exists")
		case errors.Is(err, domain.ErrDuplicateEmail):
			app.duplicateFieldResponse(w, r, "email", "user with this email already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic occurred during sending welcome mail", "panic", err)
			}
		}()

		data := map[string]any{
			"firstName": user.FirstName,
			"username":  user.Username,
		}

		err := app.mailer.Send(user.Email, "user_welcome.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send welcome email", "error", err)
		}
	}()

	resp := toUserResponse(&user)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// duplicateFieldResponse reports a uniqueness violation in the same shape as
// a validation failure, so clients handle both uniformly.
func (app *Application) duplicateFieldResponse(w http.ResponseWriter, r *http.Request, field, issue string) {
	resp := api.ValidationErrorResponse{
		Message: ErrValidationFailed,
		ValidationErrors: []api.ValidationIssue{
			{Field: field, Issue: issue},
		},
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Any failure past this point answers identically, so a caller cannot
	// probe which usernames exist.
	err = app.validator.Struct(input)
	if err != nil {
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.userRepo.GetByUsername(r.Context(), input.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match || !user.Activated {
		app.logger.Warn("login failed", "userId", user.ID)
		app.invalidCredentialsResponse(w, r)
		return
	}

	pair, err := app.tokens.IssuePair(user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LoginResponse{
		User: api.LoginUser{
			Username: user.Username,
			Email:    user.Email,
		},
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Logout revokes the presented refresh token. Access tokens are left to age
// out on their own.
func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	var input api.LogoutRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.tokens.Revoke(r.Context(), input.Refresh)
	if err != nil {
		// Only token problems are the caller's fault; a failing revocation
		// store must surface as a server fault, not a rejected token.
		switch {
		case errors.Is(err, token.ErrInvalidToken):
			app.errorResponse(w, r, http.StatusBadRequest, ErrInvalidToken)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusResetContent)
}

func (app *Application) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var input api.RefreshRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	access, err := app.tokens.RefreshAccess(r.Context(), input.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrInvalidToken):
			app.invalidTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.RefreshResponse{Access: access}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
