package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/auth"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/provider"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
	// LoginWithGoogle signs in the owner of a Google ID token, linking or creating the
	// user by verified email on first use.
	LoginWithGoogle(ctx context.Context, params GoogleLoginParams) (*AuthResult, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// GoogleLoginParams carries the tokens returned to the client by Google sign-in.
type GoogleLoginParams struct {
	IDToken     string
	AccessToken string
}

// AuthResult is the signed-in user and a fresh access token.
type AuthResult struct {
	User  *model.User
	Token string
}

// WelcomeMailer sends the registration email. Implemented by *mailer.Mailer.
type WelcomeMailer interface {
	Enabled() bool
	SendHTML(to []string, subject, htmlBody string) error
}

// GoogleAuthenticator verifies Google tokens. Implemented by *provider.GoogleOAuthProvider.
type GoogleAuthenticator interface {
	Enabled() bool
	Authenticate(ctx context.Context, idToken, accessToken string) (*provider.GoogleIdentity, error)
}

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidGoogleToken     = errors.New("invalid google token")
	ErrGoogleSignInDisabled   = errors.New("google sign-in is not configured")
)

type authUsecase struct {
	userRepo     repository.UserRepository
	identityRepo repository.IdentityRepository
	jwtAuth      *auth.JWTAuthenticator
	mailer       WelcomeMailer
	google       GoogleAuthenticator
	logger       *zerolog.Logger
}

// NewAuthUsecase creates an AuthUsecase. mailer and google may be nil.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	identityRepo repository.IdentityRepository,
	jwtAuth *auth.JWTAuthenticator,
	mailer WelcomeMailer,
	google GoogleAuthenticator,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		identityRepo: identityRepo,
		jwtAuth:      jwtAuth,
		mailer:       mailer,
		google:       google,
		logger:       logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	email := normalizeEmail(params.Email)
	username := strings.TrimSpace(params.Username)

	if err := u.ensureAvailable(ctx, email, username); err != nil {
		return nil, err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateUserError(err)
		}

		return nil, err
	}

	if _, err := u.identityRepo.CreateIdentity(ctx, &model.Identity{
		UserID:     user.ID.Hex(),
		Provider:   model.ProviderEmail,
		ProviderID: user.Email,
		Email:      user.Email,
	}); err != nil {
		// Password login only needs the user document.
		u.logger.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to create email identity")
	}

	u.sendWelcomeEmail(user)

	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err = u.recordLogin(ctx, user, model.ProviderEmail)
	if err != nil {
		return nil, err
	}

	return u.issue(user)
}

func (u *authUsecase) LoginWithGoogle(ctx context.Context, params GoogleLoginParams) (*AuthResult, error) {
	if u.google == nil || !u.google.Enabled() {
		return nil, ErrGoogleSignInDisabled
	}

	identity, err := u.google.Authenticate(ctx, params.IDToken, params.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGoogleToken, err)
	}

	user, err := u.findOrCreateGoogleUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	user, err = u.recordLogin(ctx, user, model.ProviderGoogle)
	if err != nil {
		return nil, err
	}

	return u.issue(user)
}

func (u *authUsecase) findOrCreateGoogleUser(ctx context.Context, identity *provider.GoogleIdentity) (*model.User, error) {
	linked, err := u.identityRepo.GetIdentityByProvider(ctx, identity.Subject, model.ProviderGoogle)
	if err == nil {
		return getUser(ctx, u.userRepo, linked.UserID)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	email := normalizeEmail(identity.Email)

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		user, err = u.createGoogleUser(ctx, email, identity)
	}
	if err != nil {
		return nil, err
	}

	if _, err := u.identityRepo.CreateIdentity(ctx, &model.Identity{
		UserID:     user.ID.Hex(),
		Provider:   model.ProviderGoogle,
		ProviderID: identity.Subject,
		Email:      email,
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) createGoogleUser(
	ctx context.Context,
	email string,
	identity *provider.GoogleIdentity,
) (*model.User, error) {
	username, err := u.availableUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	// Unguessable; these accounts sign in through Google.
	passwordHash, err := security.HashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:       username,
		Email:          email,
		PasswordHash:   passwordHash,
		FirstName:      identity.GivenName,
		LastName:       identity.FamilyName,
		ProfilePicture: identity.Picture,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateUserError(err)
		}

		return nil, err
	}

	u.sendWelcomeEmail(user)

	return user, nil
}

var usernameDisallowed = regexp.MustCompile(`[^a-z0-9_.]+`)

// availableUsername derives a username from the email's local part, adding a short
// random suffix when the plain form is taken.
func (u *authUsecase) availableUsername(ctx context.Context, email string) (string, error) {
	base, _, _ := strings.Cut(email, "@")
	base = usernameDisallowed.ReplaceAllString(strings.ToLower(base), "")
	for len(base) < 3 {
		base += "_"
	}
	if len(base) > 23 {
		base = base[:23]
	}

	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		_, err := u.userRepo.GetUserByUsername(ctx, candidate)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}

		candidate = base + "_" + uuid.NewString()[:6]
	}

	return "", ErrUsernameTaken
}

func (u *authUsecase) ensureAvailable(ctx context.Context, email, username string) error {
	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if _, err := u.userRepo.GetUserByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	return nil
}

func (u *authUsecase) recordLogin(ctx context.Context, user *model.User, providerName string) (*model.User, error) {
	now := time.Now().UTC()

	updated, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{LastLoginAt: &now})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if err := u.identityRepo.UpdateLastLogin(ctx, user.ID.Hex(), providerName); err != nil {
		return nil, err
	}

	return updated, nil
}

func (u *authUsecase) issue(user *model.User) (*AuthResult, error) {
	claims := trackertypes.JWTClaims{
		Email:            user.Email,
		RegisteredClaims: u.jwtAuth.RegisteredClaims(user.ID.Hex(), uuid.NewString(), time.Now()),
	}

	token, err := u.jwtAuth.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (u *authUsecase) sendWelcomeEmail(user *model.User) {
	if u.mailer == nil || !u.mailer.Enabled() {
		return
	}

	name := user.FirstName
	if name == "" {
		name = user.Username
	}

	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Opportunity Tracker.</p>
		<p>Bookmark hackathons and contests you care about and keep every job application in one place.</p>

		<p>Thank you,</p>
		<p>Opportunity Tracker Team</p>
	`, html.EscapeString(name))

	if err := u.mailer.SendHTML([]string{user.Email}, "Welcome to Opportunity Tracker", htmlBody); err != nil {
		u.logger.Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to send welcome email")
	}
}

// duplicateUserError tells which unique index a duplicate key error hit.
func duplicateUserError(err error) error {
	if strings.Contains(err.Error(), "username") {
		return ErrUsernameTaken
	}

	return ErrEmailAlreadyRegistered
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
