package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/auth"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/user"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	for _, u := range f.users {
		if u.Username == newUser.Username {
			return user.User{}, user.ErrUsernameExists
		}
		if u.Email == newUser.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	newUser.ID = uuid.NewString()
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, _ string) error {
	return nil
}

func newTestService() (auth.AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(userRepo, &fakeEmployeeRepo{}, jwtService), userRepo
}

func TestRegister(t *testing.T) {
	t.Run("creates a user with a hashed password", func(t *testing.T) {
		svc, userRepo := newTestService()

		resp, err := svc.Register(context.Background(), auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, "lgomez", resp.Username)
		assert.Equal(t, "admin", resp.Role)

		stored := userRepo.users[resp.ID]
		assert.NotEqual(t, "supersecret", stored.PasswordHash)
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		svc, _ := newTestService()

		req := auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "employee",
		}
		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)

		req.Email = "other@example.com"
		_, err = svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, user.ErrUsernameExists)
	})

	t.Run("rejects invalid roles", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "superuser",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "admin",
		})
		require.NoError(t, err)

		resp, refreshToken, refreshExpiresAt, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "lgomez@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Greater(t, refreshExpiresAt, int64(0))
		assert.Equal(t, "lgomez@example.com", resp.User.Email)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "admin",
		})
		require.NoError(t, err)

		_, _, _, err = svc.Login(context.Background(), auth.LoginRequest{
			Email:    "lgomez@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("rejects unknown emails with the same error", func(t *testing.T) {
		svc, _ := newTestService()

		_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("exchanges a refresh token for a new access token", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "admin",
		})
		require.NoError(t, err)

		_, refreshToken, _, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "lgomez@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		resp, err := svc.Refresh(context.Background(), refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects an access token used as refresh token", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			Username: "lgomez",
			Email:    "lgomez@example.com",
			Password: "supersecret",
			Role:     "admin",
		})
		require.NoError(t, err)

		resp, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "lgomez@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), resp.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
