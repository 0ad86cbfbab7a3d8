package handler

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

type authHTTPHandler struct {
	requestDecoder
	authUsecase    usecase.AuthUsecase
	profileUsecase usecase.ProfileUsecase
}

func (h *authHTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req trackertypes.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			utilities.WriteError(w, h.logger, http.StatusConflict, "Email already registered")
		case errors.Is(err, usecase.ErrUsernameTaken):
			utilities.WriteError(w, h.logger, http.StatusConflict, "Username already taken")
		default:
			writeInternalError(w, h.logger, err, "failed to register user")
		}
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusCreated, trackertypes.AuthResponse{
		Message: "User registered successfully",
		User:    toUser(result.User),
		Token:   result.Token,
	})
}

func (h *authHTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req trackertypes.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utilities.WriteError(w, h.logger, http.StatusUnauthorized, "Invalid email or password")
		default:
			writeInternalError(w, h.logger, err, "failed to log in")
		}
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.AuthResponse{
		Message: "Login successful",
		User:    toUser(result.User),
		Token:   result.Token,
	})
}

func (h *authHTTPHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var req trackertypes.GoogleLoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.authUsecase.LoginWithGoogle(r.Context(), usecase.GoogleLoginParams{
		IDToken:     req.IDToken,
		AccessToken: req.AccessToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGoogleSignInDisabled):
			utilities.WriteError(w, h.logger, http.StatusServiceUnavailable, "Google sign-in is not available")
		case errors.Is(err, usecase.ErrInvalidGoogleToken):
			h.logger.Warn().Err(err).Msg("rejected google token")
			utilities.WriteError(w, h.logger, http.StatusUnauthorized, "Invalid Google token")
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered), errors.Is(err, usecase.ErrUsernameTaken):
			utilities.WriteError(w, h.logger, http.StatusConflict, "Account already exists")
		default:
			writeInternalError(w, h.logger, err, "failed to log in with google")
		}
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.AuthResponse{
		Message: "Login successful",
		User:    toUser(result.User),
		Token:   result.Token,
	})
}

func (h *authHTTPHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	user, err := h.profileUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeProfileError(w, err, "failed to get profile")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.ProfileResponse{User: toUser(user)})
}

func (h *authHTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	var req trackertypes.UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.profileUsecase.UpdateProfile(r.Context(), userID, usecase.UpdateProfileParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		h.writeProfileError(w, err, "failed to update profile")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    toUser(user),
	})
}

func (h *authHTTPHandler) writeProfileError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		utilities.WriteError(w, h.logger, http.StatusNotFound, "User not found")
	default:
		writeInternalError(w, h.logger, err, msg)
	}
}
