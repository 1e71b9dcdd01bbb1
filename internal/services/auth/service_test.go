package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"esgtracker/internal/domain"
)

type memCompanies struct {
	mu      sync.Mutex
	byEmail map[string]domain.Company
	nextID  int64
}

func newMemCompanies() *memCompanies {
	return &memCompanies{byEmail: map[string]domain.Company{}}
}

func (m *memCompanies) CreateCompany(_ context.Context, c domain.NewCompany) (domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[c.Email]; ok {
		return domain.Company{}, domain.ErrDuplicateEmail
	}
	m.nextID++
	out := domain.Company{ID: m.nextID, Name: c.Name, Email: c.Email, PasswordHash: c.PasswordHash, EmailDomain: c.EmailDomain, CreatedAt: time.Now()}
	m.byEmail[c.Email] = out
	return out, nil
}

func (m *memCompanies) GetCompanyByEmail(_ context.Context, email string) (bool, domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byEmail[email]
	return ok, c, nil
}

func (m *memCompanies) GetCompany(_ context.Context, id int64) (bool, domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byEmail {
		if c.ID == id {
			return true, c, nil
		}
	}
	return false, domain.Company{}, nil
}

func (m *memCompanies) ListCompanies(context.Context) ([]domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Company, 0, len(m.byEmail))
	for _, c := range m.byEmail {
		out = append(out, c)
	}
	return out, nil
}

func newTestService(secret string) (*Service, *memCompanies) {
	repo := newMemCompanies()
	s := New(repo, secret, time.Hour)
	s.cost = bcrypt.MinCost
	return s, repo
}

func TestRegisterStoresHashAndNormalizedEmail(t *testing.T) {
	s, repo := newTestService("")
	ctx := context.Background()

	sess, err := s.Register(ctx, "  Acme Ltd ", " Ops@Mail.Acme.CO.UK ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", sess.Company.Name)
	assert.Equal(t, "ops@mail.acme.co.uk", sess.Company.Email)
	assert.Equal(t, "acme.co.uk", sess.Company.EmailDomain)
	assert.Empty(t, sess.Token)

	stored := repo.byEmail["ops@mail.acme.co.uk"]
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newTestService("")

	tests := []struct {
		name, company, email, password string
	}{
		{"missing name", "", "a@b.com", "pw"},
		{"blank name", "   ", "a@b.com", "pw"},
		{"missing email", "Acme", "", "pw"},
		{"missing password", "Acme", "a@b.com", ""},
		{"no at sign", "Acme", "acme.com", "pw"},
		{"no host", "Acme", "a@", "pw"},
		{"no local part", "Acme", "@acme.com", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.company, tt.email, tt.password)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}
}

func TestRegisterDuplicateEmailIgnoresCase(t *testing.T) {
	s, _ := newTestService("")
	ctx := context.Background()

	_, err := s.Register(ctx, "Acme", "dup@acme.com", "pw")
	require.NoError(t, err)
	_, err = s.Register(ctx, "Acme Two", "DUP@acme.com", "other")
	assert.True(t, errors.Is(err, domain.ErrDuplicateEmail), "got %v", err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s, _ := newTestService("")
	ctx := context.Background()
	_, err := s.Register(ctx, "Acme", "user@acme.com", "right")
	require.NoError(t, err)

	_, unknown := s.Login(ctx, "nobody@acme.com", "right")
	_, wrong := s.Login(ctx, "user@acme.com", "wrong")

	require.True(t, errors.Is(unknown, domain.ErrInvalidCredentials))
	require.True(t, errors.Is(wrong, domain.ErrInvalidCredentials))
	assert.Equal(t, unknown.Error(), wrong.Error())
}

func TestLoginSuccess(t *testing.T) {
	s, _ := newTestService("")
	ctx := context.Background()
	reg, err := s.Register(ctx, "Acme", "user@acme.com", "right")
	require.NoError(t, err)

	sess, err := s.Login(ctx, "  USER@acme.com", "right")
	require.NoError(t, err)
	assert.Equal(t, reg.Company.ID, sess.Company.ID)

	_, err = s.Login(ctx, "", "right")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	s, _ := newTestService("test-secret")
	ctx := context.Background()

	sess, err := s.Register(ctx, "Acme", "tok@acme.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	id, err := s.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Company.ID, id)

	other, _ := newTestService("different-secret")
	_, err = other.Verify(sess.Token)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = s.Verify("not-a-token")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestExpiredSessionIsRejected(t *testing.T) {
	s, _ := newTestService("test-secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	sess, err := s.Register(context.Background(), "Acme", "old@acme.com", "pw")
	require.NoError(t, err)

	_, err = s.Verify(sess.Token)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestVerifyWithoutSecret(t *testing.T) {
	s, _ := newTestService("")
	_, err := s.Verify("anything")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
