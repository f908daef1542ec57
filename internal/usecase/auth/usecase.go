package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"loanapi/internal/domain/user"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Claims is the token payload shared with the auth middleware.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Usecase struct {
	users  user.Repository
	secret []byte
	ttl    time.Duration
	log    *logrus.Logger

	Now func() time.Time
}

func NewUsecase(users user.Repository, secret string, ttl time.Duration, log *logrus.Logger) *Usecase {
	return &Usecase{users: users, secret: []byte(secret), ttl: ttl, log: log, Now: time.Now}
}

// Login verifies the password and issues an HS256 bearer token carrying the
// user id and role. Unknown user and wrong password are indistinguishable to
// the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (string, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := u.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(usr.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	})
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", err
	}

	u.log.WithField("username", username).Info("user logged in")
	return signed, nil
}

// HashPassword is used by seeding code and tests.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}
