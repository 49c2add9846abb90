package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/validators"
	"github.com/MKhiriev/go-shop-front/models"
)

// joinedDateLayout is the format of User.Joined.
const joinedDateLayout = "2006-01-02"

// authService is the concrete implementation of AuthService.
//
// Credentials are compared in plaintext against the stored user records,
// preserving byte compatibility with data written by earlier releases.
// Login failure is always reported as ErrInvalidCredentials regardless of
// whether the email exists.
type authService struct {
	state     *state.State
	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(st *state.State, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		state:     st,
		validator: validator,
		logger:    logger,
	}
}

// Login authenticates by exact (email, password) match. On success the
// matched user is copied into CurrentUser and the session is persisted.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	a.state.Lock()
	defer a.state.Unlock()

	for _, u := range a.state.Users {
		if u.Email == email && u.Password == password {
			user := u
			a.state.CurrentUser = &user

			if err := a.state.Persist(ctx); err != nil {
				return models.User{}, fmt.Errorf("error persisting session: %w", err)
			}

			log.Info().Str("func", "*authService.Login").
				Int64("user_id", user.ID).
				Bool("is_admin", user.IsAdmin).
				Msg("login successful")
			return user, nil
		}
	}

	log.Debug().Str("func", "*authService.Login").Msg("login failed")
	return models.User{}, ErrInvalidCredentials
}

// Signup validates the form, creates the account and logs it in.
//
// The new user gets id = max existing id + 1, isAdmin=false, an empty
// address list and today's date as the join date. A duplicate email
// (case-sensitive) is rejected with ErrEmailTaken.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("signup form rejected")
		return models.User{}, err
	}

	a.state.Lock()
	defer a.state.Unlock()

	for _, u := range a.state.Users {
		if u.Email == form.Email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:        nextUserID(a.state.Users),
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Phone:     form.Phone,
		Joined:    time.Now().Format(joinedDateLayout),
		IsAdmin:   false,
		Addresses: []models.Address{},
	}

	a.state.Users = append(a.state.Users, user)
	current := user
	a.state.CurrentUser = &current

	if err := a.state.Persist(ctx); err != nil {
		return models.User{}, fmt.Errorf("error persisting new user: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Int64("user_id", user.ID).Msg("account created")
	return user, nil
}

// Logout clears the current session. User records, cart and orders are
// left untouched.
func (a *authService) Logout(ctx context.Context) error {
	a.state.Lock()
	defer a.state.Unlock()

	a.state.CurrentUser = nil

	if err := a.state.Persist(ctx); err != nil {
		return fmt.Errorf("error persisting session: %w", err)
	}

	return nil
}

// CurrentUser returns a copy of the signed-in user, or false when
// anonymous.
func (a *authService) CurrentUser(_ context.Context) (models.User, bool) {
	a.state.Lock()
	defer a.state.Unlock()

	if a.state.CurrentUser == nil {
		return models.User{}, false
	}
	return *a.state.CurrentUser, true
}

// IsLoggedIn reports whether a user is signed in.
func (a *authService) IsLoggedIn(_ context.Context) bool {
	a.state.Lock()
	defer a.state.Unlock()

	return a.state.CurrentUser != nil
}

// IsAdmin reports whether the signed-in user has the admin role. Anonymous
// sessions are never admin.
func (a *authService) IsAdmin(_ context.Context) bool {
	a.state.Lock()
	defer a.state.Unlock()

	return a.state.CurrentUser != nil && a.state.CurrentUser.IsAdmin
}

// UpdateProfile edits the signed-in user's identity attributes in the users
// collection and refreshes the CurrentUser copy.
func (a *authService) UpdateProfile(ctx context.Context, form models.ProfileForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	a.state.Lock()
	defer a.state.Unlock()

	if a.state.CurrentUser == nil {
		return models.User{}, ErrNotAuthenticated
	}

	for i := range a.state.Users {
		if a.state.Users[i].ID != a.state.CurrentUser.ID {
			continue
		}

		a.state.Users[i].FirstName = form.FirstName
		a.state.Users[i].LastName = form.LastName
		a.state.Users[i].Email = form.Email
		a.state.Users[i].Phone = form.Phone

		updated := a.state.Users[i]
		a.state.CurrentUser = &updated

		if err := a.state.Persist(ctx); err != nil {
			return models.User{}, fmt.Errorf("error persisting profile: %w", err)
		}

		log.Info().Str("func", "*authService.UpdateProfile").Int64("user_id", updated.ID).Msg("profile updated")
		return updated, nil
	}

	return models.User{}, ErrNotAuthenticated
}

func nextUserID(users []models.User) int64 {
	var maxID int64
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
