package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/service"
	"github.com/MKhiriev/contact-keeper/internal/store"
	"github.com/MKhiriev/contact-keeper/internal/utils"
	"github.com/MKhiriev/contact-keeper/models"
)

// registerRequest is the JSON body accepted by POST /api/user/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the JSON body accepted by POST /api/user/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{Name: request.Name, Email: request.Email}
	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.writeError(w, "All fields are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			h.writeError(w, "User already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.writeError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.UserResponse{
		Response: models.Response{Message: "User registered successfully", Success: true},
		User:     registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.writeError(w, "All fields are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			// the account-existence leak is deliberate source behaviour
			log.Err(err).Msg("no user was found")
			h.writeError(w, "User does not exist", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			h.writeError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.writeError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Response: models.Response{Message: fmt.Sprintf("Welcome %s", foundUser.Name), Success: true},
		Token:    token.SignedString,
		User:     foundUser,
	}, http.StatusOK)
}
