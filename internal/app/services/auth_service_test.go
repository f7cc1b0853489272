package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
	"github.com/mgdelacruz/regisys/internal/pkg/auth"
)

type stubUserStore struct {
	byUsername map[string]*models.User
	byGoogleID map[string]*models.User
	created    int
	nextID     int64
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		byUsername: make(map[string]*models.User),
		byGoogleID: make(map[string]*models.User),
	}
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (s *stubUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := s.byUsername[username]; ok {
		return cloneUser(u), nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	if u, ok := s.byGoogleID[googleID]; ok {
		return cloneUser(u), nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) CreateManual(_ context.Context, user *models.User) error {
	if _, exists := s.byUsername[user.Username]; exists {
		return apperrors.ErrUsernameTaken
	}
	s.nextID++
	user.ID = s.nextID
	s.byUsername[user.Username] = cloneUser(user)
	s.created++
	return nil
}

func (s *stubUserStore) CreateGoogle(_ context.Context, user *models.User) error {
	user.Role = models.RoleStudent
	s.nextID++
	user.ID = s.nextID
	s.byGoogleID[user.GoogleID] = cloneUser(user)
	s.created++
	return nil
}

type stubVerifier struct {
	identity *auth.GoogleIdentity
	err      error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*auth.GoogleIdentity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

func newTestAuthService(store UserStore, verifier auth.IdentityVerifier) AuthService {
	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  time.Hour,
		TokenIssuer: "regisys-test",
	})
	return NewAuthService(store, verifier, jwtSvc, zerolog.Nop())
}

func registerUser(t *testing.T, store *stubUserStore, username, password, role string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := store.CreateManual(context.Background(), &models.User{
		FullName: "Test User",
		Username: username,
		Password: hash,
		Role:     models.NormalizeRole(role),
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	store := newStubUserStore()
	registerUser(t, store, "msantos", "s3cret123", "registrar")
	svc := newTestAuthService(store, &stubVerifier{})

	result, err := svc.Login(context.Background(), "msantos", "s3cret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.FullName != "Test User" {
		t.Errorf("unexpected full name: %q", result.FullName)
	}
	if result.Role != models.RoleRegistrar {
		t.Errorf("unexpected role: %q", result.Role)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newStubUserStore()
	registerUser(t, store, "msantos", "s3cret123", "registrar")
	svc := newTestAuthService(store, &stubVerifier{})

	_, err := svc.Login(context.Background(), "msantos", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubUserStore(), &stubVerifier{})

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_GoogleOnlyAccountRejected(t *testing.T) {
	store := newStubUserStore()
	// Federated accounts have an empty password column
	store.byUsername["gdoe"] = &models.User{ID: 1, FullName: "G Doe", Username: "gdoe", Role: models.RoleStudent}
	svc := newTestAuthService(store, &stubVerifier{})

	_, err := svc.Login(context.Background(), "gdoe", "")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWithGoogle_ProvisionsOnce(t *testing.T) {
	store := newStubUserStore()
	verifier := &stubVerifier{identity: &auth.GoogleIdentity{
		Subject: "google-sub-1",
		Email:   "new@student.edu",
		Name:    "New Student",
	}}
	svc := newTestAuthService(store, verifier)

	first, err := svc.LoginWithGoogle(context.Background(), "raw-token")
	if err != nil {
		t.Fatalf("first login returned error: %v", err)
	}
	if first.Role != models.RoleStudent {
		t.Errorf("provisioned account should be a student, got %q", first.Role)
	}
	if store.created != 1 {
		t.Fatalf("expected exactly one account created, got %d", store.created)
	}

	// Second login with the same subject must reuse the account
	if _, err := svc.LoginWithGoogle(context.Background(), "raw-token"); err != nil {
		t.Fatalf("second login returned error: %v", err)
	}
	if store.created != 1 {
		t.Fatalf("expected no further accounts, got %d", store.created)
	}
}

func TestLoginWithGoogle_KeepsPromotedRole(t *testing.T) {
	store := newStubUserStore()
	store.byGoogleID["google-sub-2"] = &models.User{
		ID: 5, FullName: "Promoted", GoogleID: "google-sub-2", Role: models.RoleRegistrar,
	}
	verifier := &stubVerifier{identity: &auth.GoogleIdentity{Subject: "google-sub-2", Name: "Promoted"}}
	svc := newTestAuthService(store, verifier)

	result, err := svc.LoginWithGoogle(context.Background(), "raw-token")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if result.Role != models.RoleRegistrar {
		t.Errorf("login must not change the stored role, got %q", result.Role)
	}
}

func TestLoginWithGoogle_VerificationFailure(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("bad signature")}
	svc := newTestAuthService(newStubUserStore(), verifier)

	_, err := svc.LoginWithGoogle(context.Background(), "raw-token")
	if !errors.Is(err, apperrors.ErrGoogleVerification) {
		t.Fatalf("expected ErrGoogleVerification, got %v", err)
	}
}

func TestRegister_HashesPasswordAndWhitelistsRole(t *testing.T) {
	store := newStubUserStore()
	svc := newTestAuthService(store, &stubVerifier{})

	if err := svc.Register(context.Background(), "Juan Cruz", "jcruz", "s3cret123", "superuser"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := store.byUsername["jcruz"]
	if stored == nil {
		t.Fatal("account was not created")
	}
	if stored.Password == "s3cret123" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "s3cret123") {
		t.Error("stored hash does not match password")
	}
	if stored.Role != models.RoleStudent {
		t.Errorf("unknown role should normalize to student, got %q", stored.Role)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	store := newStubUserStore()
	registerUser(t, store, "jcruz", "pass1234", "student")
	svc := newTestAuthService(store, &stubVerifier{})

	err := svc.Register(context.Background(), "Other", "jcruz", "pass5678", "student")
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}
