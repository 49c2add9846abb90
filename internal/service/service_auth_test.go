package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/validators"
	"github.com/MKhiriev/go-shop-front/models"
)

func newTestAuth(t *testing.T) (AuthService, *state.State) {
	t.Helper()
	st := newTestState(t)
	st.Users = testUsers()
	svcs := NewServices(st, logger.NewLogger("test"))
	return svcs.Auth, st
}

func TestLogin_Success(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	user, err := auth.Login(ctx, "user@test.com", "user123")
	require.NoError(t, err)

	assert.Equal(t, int64(2), user.ID)
	assert.False(t, user.IsAdmin)
	require.NotNil(t, st.CurrentUser)
	assert.Equal(t, "user@test.com", st.CurrentUser.Email)
	assert.True(t, auth.IsLoggedIn(ctx))
	assert.False(t, auth.IsAdmin(ctx))
}

func TestLogin_AdminGainsAdminRole(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	user, err := auth.Login(ctx, "admin@yiopatretruck.com", "admin123")
	require.NoError(t, err)

	assert.True(t, user.IsAdmin)
	assert.True(t, auth.IsAdmin(ctx))
}

func TestLogin_UniformFailure(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	// Wrong password and unknown email fail identically.
	_, errWrongPassword := auth.Login(ctx, "user@test.com", "wrong")
	_, errUnknownEmail := auth.Login(ctx, "nobody@test.com", "user123")

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	assert.Nil(t, st.CurrentUser)
}

func TestLogin_EmptyInput(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_CurrentUserIsACopy(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "user@test.com", "user123")
	require.NoError(t, err)

	// Mutating the session copy must not leak into the users collection.
	st.CurrentUser.FirstName = "Changed"
	assert.Equal(t, "John", st.Users[1].FirstName)
}

func validTestSignupForm() models.SignupForm {
	return models.SignupForm{
		FirstName:       "Jane",
		LastName:        "Smith",
		Email:           "jane@example.com",
		Phone:           "+1 (555) 222-3333",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestSignup_Success(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	user, err := auth.Signup(ctx, validTestSignupForm())
	require.NoError(t, err)

	assert.Equal(t, int64(3), user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotNil(t, user.Addresses)
	assert.Empty(t, user.Addresses)
	assert.Equal(t, time.Now().Format("2006-01-02"), user.Joined)

	// The new account is logged in immediately.
	require.NotNil(t, st.CurrentUser)
	assert.Equal(t, "jane@example.com", st.CurrentUser.Email)
	assert.Len(t, st.Users, 3)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	auth, st := newTestAuth(t)

	form := validTestSignupForm()
	form.Email = "user@test.com"

	_, err := auth.Signup(context.Background(), form)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, st.Users, 2)
}

func TestSignup_IDIsMaxPlusOne(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	// A gap in IDs must not cause reuse.
	st.Users = append(st.Users, models.User{ID: 10, Email: "ten@test.com", Password: "x"})

	user, err := auth.Signup(ctx, validTestSignupForm())
	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
}

func TestSignup_ValidationFailures(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	form := validTestSignupForm()
	form.ConfirmPassword = "other"
	_, err := auth.Signup(ctx, form)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)

	form = validTestSignupForm()
	form.Password, form.ConfirmPassword = "abc", "abc"
	_, err = auth.Signup(ctx, form)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)

	assert.Len(t, st.Users, 2)
	assert.Nil(t, st.CurrentUser)
}

func TestLogout(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "user@test.com", "user123")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))

	assert.Nil(t, st.CurrentUser)
	assert.False(t, auth.IsLoggedIn(ctx))
	// Accounts survive logout.
	assert.Len(t, st.Users, 2)
}

func TestUpdateProfile(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "user@test.com", "user123")
	require.NoError(t, err)

	updated, err := auth.UpdateProfile(ctx, models.ProfileForm{
		FirstName: "Johnny",
		LastName:  "Doe",
		Email:     "johnny@test.com",
		Phone:     "+1 (555) 000-1111",
	})
	require.NoError(t, err)

	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Equal(t, "johnny@test.com", updated.Email)

	// Both the users collection and the session copy are rewritten.
	assert.Equal(t, "Johnny", st.Users[1].FirstName)
	assert.Equal(t, "johnny@test.com", st.Users[1].Email)
	require.NotNil(t, st.CurrentUser)
	assert.Equal(t, "Johnny", st.CurrentUser.FirstName)

	// Password and role are untouched.
	assert.Equal(t, "user123", st.Users[1].Password)
	assert.False(t, st.Users[1].IsAdmin)
}

func TestUpdateProfile_NotAuthenticated(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.UpdateProfile(context.Background(), models.ProfileForm{
		FirstName: "A", LastName: "B", Email: "a@b.com",
	})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentUser(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, ok := auth.CurrentUser(ctx)
	assert.False(t, ok)

	_, err := auth.Login(ctx, "user@test.com", "user123")
	require.NoError(t, err)

	user, ok := auth.CurrentUser(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user@test.com", user.Email)
}
