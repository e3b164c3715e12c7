package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/models"
	"github.com/leandrocorretor/realty/pkg/tracing"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "session:revoked:"

var (
	// ErrNoSession is returned when no session token was presented
	ErrNoSession = errors.New("no session")
	// ErrSessionRevoked is returned for tokens that were logged out
	ErrSessionRevoked = errors.New("session revoked")
	// ErrNotAuthorized is returned when the session e-mail lost its access
	ErrNotAuthorized = errors.New("email not authorized")
)

var tracer = tracing.Tracer("realty/auth")

// Options configures the auth service
type Options struct {
	Secret     []byte
	TTL        time.Duration
	SeedEmails []string // always authorized, never counted
	MaxUsers   int      // self-registered e-mails allowed
	DevBypass  bool
	MockAdmin  models.Admin
}

// OptionsFromConfig builds Options from the service configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Secret:     []byte(cfg.JWT.Secret),
		TTL:        time.Duration(cfg.JWT.Expiration) * time.Hour,
		SeedEmails: cfg.Auth.AuthorizedEmails,
		MaxUsers:   cfg.Auth.MaxAuthorizedUsers,
		DevBypass:  cfg.BypassAuth(),
		MockAdmin: models.Admin{
			Email: cfg.Auth.MockEmail,
			Name:  cfg.Auth.MockName,
		},
	}
}

// Service handles back-office login and session verification
type Service struct {
	repo        RepositoryInterface
	verifier    TokenVerifier
	revocations RevocationStore
	opts        Options
	seeds       map[string]struct{}
	now         func() time.Time
}

// NewService creates a new auth service. verifier may be nil when DevBypass is on.
func NewService(repo RepositoryInterface, verifier TokenVerifier, revocations RevocationStore, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = 12 * time.Hour
	}
	seeds := make(map[string]struct{}, len(opts.SeedEmails))
	for _, e := range opts.SeedEmails {
		seeds[normalizeEmail(e)] = struct{}{}
	}
	return &Service{
		repo:        repo,
		verifier:    verifier,
		revocations: revocations,
		opts:        opts,
		seeds:       seeds,
		now:         time.Now,
	}
}

// BypassEnabled reports whether logins are replaced by the mock admin
func (s *Service) BypassEnabled() bool {
	return s.opts.DevBypass
}

// Login verifies a Google credential, admits the e-mail and issues a session
func (s *Service) Login(ctx context.Context, credential string) (*Session, error) {
	ctx, span := tracer.Start(ctx, "Service.Login")
	defer span.End()

	if s.opts.DevBypass {
		admin := s.opts.MockAdmin
		return s.issue(&admin)
	}

	lang := i18n.FromContext(ctx)
	identity, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		logger.WithContext(ctx).Info("google credential rejected", zap.Error(err))
		return nil, common.NewAppError(http.StatusUnauthorized, i18n.Translate("auth.error", lang), err)
	}
	if !identity.EmailVerified {
		return nil, common.NewForbiddenError(i18n.Translate("auth.denied", lang))
	}

	allowed, err := s.admit(ctx, identity)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if !allowed {
		logger.WithContext(ctx).Warn("login denied", zap.String("email", identity.Email))
		return nil, common.NewForbiddenError(i18n.Translate("auth.denied", lang))
	}

	if err := s.repo.TouchLogin(ctx, identity.Email, s.now()); err != nil {
		logger.WithContext(ctx).Warn("failed to record login", zap.Error(err))
	}

	logger.WithContext(ctx).Info("admin logged in", zap.String("email", identity.Email))
	return s.issue(&models.Admin{Email: identity.Email, Name: identity.Name, Picture: identity.Picture})
}

// admit applies the first-come registration rule: seeded e-mails always pass,
// otherwise the e-mail must be registered or fit under MaxUsers
func (s *Service) admit(ctx context.Context, id *Identity) (bool, error) {
	if s.isSeed(id.Email) {
		return true, nil
	}
	ok, err := s.repo.IsAuthorized(ctx, id.Email)
	if err != nil || ok {
		return ok, err
	}
	if s.opts.MaxUsers <= 0 {
		return false, nil
	}
	ok, err = s.repo.RegisterIfRoom(ctx, id.Email, id.Name, s.opts.MaxUsers)
	if ok {
		logger.WithContext(ctx).Info("registered new admin", zap.String("email", id.Email))
	}
	return ok, err
}

func (s *Service) isSeed(email string) bool {
	_, ok := s.seeds[email]
	return ok
}

func (s *Service) issue(admin *models.Admin) (*Session, error) {
	now := s.now()
	expires := now.Add(s.opts.TTL)
	claims := Claims{
		Email:   admin.Email,
		Name:    admin.Name,
		Picture: admin.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   admin.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	admin.ExpiresAt = expires
	admin.SessionID = claims.ID
	return &Session{Token: token, ExpiresAt: expires, Admin: admin}, nil
}

// VerifySession parses a session token and re-checks that its e-mail is still authorized
func (s *Service) VerifySession(ctx context.Context, token string) (*models.Admin, error) {
	if s.opts.DevBypass {
		admin := s.opts.MockAdmin
		admin.ExpiresAt = s.now().Add(s.opts.TTL)
		return &admin, nil
	}
	if token == "" {
		return nil, ErrNoSession
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	if s.revocations != nil && claims.ID != "" {
		revoked, err := s.revocations.Exists(ctx, revokedKeyPrefix+claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check revocation: %w", err)
		}
		if revoked {
			return nil, ErrSessionRevoked
		}
	}

	if !s.isSeed(claims.Email) {
		ok, err := s.repo.IsAuthorized(ctx, claims.Email)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotAuthorized
		}
	}

	return &models.Admin{
		Email:     claims.Email,
		Name:      claims.Name,
		Picture:   claims.Picture,
		ExpiresAt: claims.ExpiresAt.Time,
		SessionID: claims.ID,
	}, nil
}

func (s *Service) parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return s.opts.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	claims.Email = normalizeEmail(claims.Email)
	return claims, nil
}

// Logout revokes the session until it would have expired anyway
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" || s.opts.DevBypass {
		return nil
	}
	claims, err := s.parse(token)
	if err != nil {
		// Nothing to revoke.
		return nil
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if claims.ID == "" || ttl <= 0 || s.revocations == nil {
		return nil
	}
	if err := s.revocations.SetWithExpiration(ctx, revokedKeyPrefix+claims.ID, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	logger.WithContext(ctx).Info("admin logged out", zap.String("email", claims.Email))
	return nil
}

// ListUsers returns seeded and registered back-office e-mails
func (s *Service) ListUsers(ctx context.Context) ([]AuthorizedUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []AuthorizedUser{}
	}
	listed := make(map[string]struct{}, len(users))
	for _, u := range users {
		listed[u.Email] = struct{}{}
	}
	for _, e := range s.opts.SeedEmails {
		e = normalizeEmail(e)
		if _, dup := listed[e]; dup {
			continue
		}
		listed[e] = struct{}{}
		users = append(users, AuthorizedUser{Email: e, Seeded: true})
	}
	return users, nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
