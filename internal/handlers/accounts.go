package handlers

import (
	"errors"
	"net/http"
	"strings"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/storage"

	log "github.com/sirupsen/logrus"
)

// LoginForm renders the login page. Reaching the login page forgets any
// existing session.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	h.render(w, "login.html", nil)
}

// Login handles the login form submission.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)

	if err := r.ParseForm(); err != nil {
		h.apology(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" {
		h.apology(w, "must provide username", http.StatusForbidden)
		return
	}
	if password == "" {
		h.apology(w, "must provide password", http.StatusForbidden)
		return
	}

	// One uniform message whether the username is unknown or the password
	// is wrong, so responses don't leak which part failed.
	user, err := h.db.GetUserByUsername(username)
	if err != nil || !auth.CheckPassword(password, user.PasswordHash) {
		h.apology(w, "invalid username and/or password", http.StatusForbidden)
		return
	}

	if err := h.establishSession(w, user.ID); err != nil {
		log.Errorf("failed to create session: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout forgets the current session and redirects home. Safe to call
// without being logged in.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// RegisterForm renders the registration page.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	h.render(w, "register.html", nil)
}

// Register handles the registration form submission and logs the new user in.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)

	if err := r.ParseForm(); err != nil {
		h.apology(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	confirmation := r.FormValue("confirmation")

	if username == "" {
		h.apology(w, "must provide username", http.StatusBadRequest)
		return
	}
	if password == "" {
		h.apology(w, "must provide password", http.StatusBadRequest)
		return
	}
	if password != confirmation {
		h.apology(w, "passwords don't match", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	user, err := h.db.CreateUser(username, hash)
	if err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			h.apology(w, "username already exists", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to create user: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	if err := h.establishSession(w, user.ID); err != nil {
		log.Errorf("failed to create session: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// ChangePasswordForm renders the password change page.
func (h *Handlers) ChangePasswordForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "change_password.html", nil)
}

// ChangePassword handles the password change form submission.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.apology(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	oldPassword := r.FormValue("old_password")
	newPassword := r.FormValue("new_password")
	confirmPassword := r.FormValue("confirm_password")

	if oldPassword == "" || newPassword == "" || confirmPassword == "" {
		h.apology(w, "must provide all fields", http.StatusBadRequest)
		return
	}
	if newPassword != confirmPassword {
		h.apology(w, "new passwords do not match", http.StatusBadRequest)
		return
	}

	user := GetUserFromContext(r)
	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		h.apology(w, "old password is incorrect", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	if err := h.db.UpdatePassword(user.ID, hash); err != nil {
		log.Errorf("failed to update password: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	h.setFlash(w, "Password changed successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}
