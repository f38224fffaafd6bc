package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/auth"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/jwt"
)

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrNotFound
}

func (f *fakeWorkerRepo) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	w, ok := f.workers[email]
	if !ok {
		return worker.Worker{}, worker.ErrNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) { return nil, nil }

func (f *fakeWorkerRepo) ListReminderTargets(ctx context.Context, dayLabel string) ([]worker.Worker, error) {
	return nil, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) Deactivate(ctx context.Context, id string) error { return nil }

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{
		"jo@example.com": {
			ID:           "worker-1",
			FirstName:    "Jo",
			LastName:     "Smith",
			Email:        "jo@example.com",
			PasswordHash: string(hash),
			Role:         worker.RoleWorker,
			IsActive:     true,
		},
		"old@example.com": {
			ID:           "worker-2",
			FirstName:    "Alex",
			LastName:     "Nguyen",
			Email:        "old@example.com",
			PasswordHash: string(hash),
			Role:         worker.RoleWorker,
			IsActive:     false,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "jo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "worker-1", resp.WorkerID)
	assert.Equal(t, "Jo Smith", resp.FullName)
	assert.Equal(t, "worker", resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "jo@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// An unknown email must return the exact same error as a wrong password.
func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveWorker(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "old@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, worker.ErrInactiveWorker)
}

func TestLoginValidation(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "jo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, "worker-1", refreshed.WorkerID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

// An access token must not pass as a refresh token.
func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "jo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), &auth.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), &auth.RefreshRequest{RefreshToken: "not.a.token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
