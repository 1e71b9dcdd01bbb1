package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/net/publicsuffix"

	"esgtracker/internal/domain"
	"esgtracker/internal/ports"
)

// Service registers companies and checks their credentials. Sessions are
// HS256 tokens whose subject is the company id; with no secret configured
// no token is issued and Verify always fails.
type Service struct {
	companies ports.CompanyRepository
	secret    []byte
	ttl       time.Duration
	cost      int
	now       func() time.Time

	dummyOnce sync.Once
	dummy     []byte
}

func New(companies ports.CompanyRepository, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		companies: companies,
		secret:    []byte(secret),
		ttl:       ttl,
		cost:      bcrypt.DefaultCost,
		now:       time.Now,
	}
}

// NormalizeEmail trims and lower-cases an address; lookups and the unique
// index both see the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, companyName, email, password string) (domain.Session, error) {
	name := strings.TrimSpace(companyName)
	email = NormalizeEmail(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return domain.Session{}, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	host, ok := emailHost(email)
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: email address is malformed", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.Session{}, fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrValidation)
		}
		return domain.Session{}, fmt.Errorf("hash password: %w", err)
	}

	company, err := s.companies.CreateCompany(ctx, domain.NewCompany{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		EmailDomain:  registrableDomain(host),
	})
	if err != nil {
		return domain.Session{}, err
	}
	return s.session(company)
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	exists, company, err := s.companies.GetCompanyByEmail(ctx, email)
	if err != nil {
		return domain.Session{}, err
	}
	if !exists {
		// Same work as a real comparison so response timing does not
		// reveal whether the email is registered.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	return s.session(company)
}

// Verify returns the company id carried by a session token.
func (s *Service) Verify(token string) (int64, error) {
	if len(s.secret) == 0 || token == "" {
		return 0, domain.ErrUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%w: invalid session token", domain.ErrUnauthorized)
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid session subject", domain.ErrUnauthorized)
	}
	return id, nil
}

func (s *Service) session(c domain.Company) (domain.Session, error) {
	sess := domain.Session{Company: c}
	if len(s.secret) == 0 {
		return sess, nil
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(c.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign session: %w", err)
	}
	sess.Token = signed
	return sess, nil
}

func (s *Service) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummy, _ = bcrypt.GenerateFromPassword([]byte("esgtracker-dummy-password"), s.cost)
	})
	return s.dummy
}

func emailHost(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	host := email[at+1:]
	if strings.ContainsAny(host, " @") {
		return "", false
	}
	return host, true
}

// registrableDomain reduces a mail host to its eTLD+1 so that
// "mail.acme.co.uk" and "acme.co.uk" group together.
func registrableDomain(host string) string {
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return d
}
