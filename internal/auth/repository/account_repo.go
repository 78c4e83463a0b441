package repository

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

// Account is one entry of the accounts file.
type Account struct {
	domain.User  `yaml:",inline"`
	PasswordHash string `yaml:"password_hash"`
}

type accountsFile struct {
	Accounts []Account `yaml:"accounts"`
}

// AccountRepository holds the login accounts, keyed by lower-cased username.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// LoadAccountsFile reads accounts from a YAML file.
func LoadAccountsFile(path string) (*AccountRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}
	return ParseAccounts(data)
}

// ParseAccounts decodes the accounts YAML document.
func ParseAccounts(data []byte) (*AccountRepository, error) {
	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse accounts: %w", err)
	}

	repo := NewAccountRepository()
	for i, a := range f.Accounts {
		role, err := domain.ParseRole(string(a.Role))
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i, a.Username, err)
		}
		a.Role = role
		if err := repo.Add(a); err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
	}
	return repo, nil
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]Account)}
}

// Add registers an account. Username, id and password hash are required.
func (r *AccountRepository) Add(a Account) error {
	key := normalize(a.Username)
	if key == "" || a.ID == "" || a.PasswordHash == "" {
		return fmt.Errorf("account requires id, username and password_hash")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[key]; exists {
		return fmt.Errorf("duplicate username %q", a.Username)
	}
	r.accounts[key] = a
	return nil
}

// Verify checks the password for username and returns the account's user.
func (r *AccountRepository) Verify(username, password string) (*domain.User, error) {
	r.mu.RLock()
	a, ok := r.accounts[normalize(username)]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	u := a.User
	return &u, nil
}

// HashPassword returns a bcrypt hash suitable for the accounts file.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
