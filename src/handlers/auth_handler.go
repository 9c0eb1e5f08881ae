package handlers

import (
	"errors"
	"net/http"
	"strings"

	"financezenn-server/src/logging"
	"financezenn-server/src/models"
	"financezenn-server/src/store"
	"financezenn-server/src/util"

	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	IssueToken(userID int64, username string) (string, error)
}

func Register(s store.UserStore, auth TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decode(w, r, &req) {
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.Username = strings.TrimSpace(req.Username)

		if !util.ValidateEmail(req.Email) {
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}
		if !util.ValidateUsername(req.Username) {
			http.Error(w, "username must be between 3 and 30 characters", http.StatusBadRequest)
			return
		}
		if !util.ValidatePassword(req.Password) {
			http.Error(w, "password must be at least 8 characters with uppercase, lowercase, digit, and special character", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger().ErrorContext(r.Context(), "Failed to hash password", "username", req.Username, logging.FieldError, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		user, err := s.CreateUser(r.Context(), req.Username, req.Email, string(hashedPassword))
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				http.Error(w, "email or username already exists", http.StatusConflict)
				return
			}
			storeError(w, r, 0, "Failed to create user", err)
			return
		}

		token, err := auth.IssueToken(user.ID, user.Username)
		if err != nil {
			logger().ErrorContext(r.Context(), "Failed to generate token", logging.FieldUserID, user.ID, logging.FieldError, err)
			http.Error(w, "error generating token", http.StatusInternalServerError)
			return
		}

		logger().InfoContext(r.Context(), "Registered user", logging.FieldUserID, user.ID, "username", user.Username)
		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			Token:    token,
		})
	}
}

// Login accepts either the username or the email in the username field.
func Login(s store.UserStore, auth TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			UsernameOrEmail string `json:"username"`
			Password        string `json:"password"`
		}
		if !decode(w, r, &credentials) {
			return
		}
		login := strings.TrimSpace(credentials.UsernameOrEmail)

		user, err := s.GetUserByUsername(r.Context(), login)
		if errors.Is(err, store.ErrNotFound) {
			user, err = s.GetUserByEmail(r.Context(), login)
		}
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if err != nil {
			storeError(w, r, 0, "Failed to look up user", err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
			logger().WarnContext(r.Context(), "Invalid password attempt", "login", login, "remote_addr", r.RemoteAddr)
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := auth.IssueToken(user.ID, user.Username)
		if err != nil {
			logger().ErrorContext(r.Context(), "Failed to generate token", logging.FieldUserID, user.ID, logging.FieldError, err)
			http.Error(w, "error generating token", http.StatusInternalServerError)
			return
		}

		if err := s.UpdateUserLastLogin(r.Context(), user.ID); err != nil {
			logger().WarnContext(r.Context(), "Failed to update last login", logging.FieldUserID, user.ID, logging.FieldError, err)
		}

		logger().InfoContext(r.Context(), "Successful login", logging.FieldUserID, user.ID)
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

func GetMe(s store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		user, err := s.GetUserByID(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to get user", err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
