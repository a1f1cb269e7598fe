package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"procurehub/pkg/errors"
)

func TestAuthUseCase(t *testing.T) {
	input := RegisterInput{
		FirstName: "Ravi",
		LastName:  "Sharma",
		Email:     "ravi@example.com",
		Phone:     "9000000001",
		Password:  "s3cret-pass",
	}

	t.Run("register hashes the password", func(t *testing.T) {
		req := require.New(t)
		uc := NewAuthUseCase(newMemUserRepo(), "test-secret", 3600)

		user, err := uc.Register(context.Background(), input)

		req.NoError(err)
		req.NotEmpty(user.ID)
		req.NotEqual(input.Password, user.Password)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		req := require.New(t)
		uc := NewAuthUseCase(newMemUserRepo(), "test-secret", 3600)

		_, err := uc.Register(context.Background(), input)
		req.NoError(err)

		dup := input
		dup.Phone = "9000000002"
		_, err = uc.Register(context.Background(), dup)

		req.Error(err)
		req.True(errors.Is(err, "CONFLICT"))
	})

	t.Run("duplicate phone is a conflict", func(t *testing.T) {
		req := require.New(t)
		uc := NewAuthUseCase(newMemUserRepo(), "test-secret", 3600)

		_, err := uc.Register(context.Background(), input)
		req.NoError(err)

		dup := input
		dup.Email = "other@example.com"
		_, err = uc.Register(context.Background(), dup)

		req.Error(err)
		req.True(errors.Is(err, "CONFLICT"))
	})

	t.Run("login returns a token for valid credentials", func(t *testing.T) {
		req := require.New(t)
		uc := NewAuthUseCase(newMemUserRepo(), "test-secret", 3600)

		registered, err := uc.Register(context.Background(), input)
		req.NoError(err)

		out, err := uc.Login(context.Background(), input.Email, input.Password)

		req.NoError(err)
		req.NotEmpty(out.Token)
		req.Equal(registered.ID, out.User.ID)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		req := require.New(t)
		uc := NewAuthUseCase(newMemUserRepo(), "test-secret", 3600)

		_, err := uc.Register(context.Background(), input)
		req.NoError(err)

		_, err = uc.Login(context.Background(), input.Email, "wrong-pass")

		req.Error(err)
		req.True(errors.Is(err, "UNAUTHORIZED"))
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		req := require.New(t)
		uc := NewAuthUseCase(newMemUserRepo(), "test-secret", 3600)

		_, err := uc.Login(context.Background(), "nobody@example.com", "whatever")

		req.Error(err)
		req.True(errors.Is(err, "UNAUTHORIZED"))
	})
}
