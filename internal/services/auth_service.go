package services

import (
	"fmt"
	"log"
	"time"

	"shopgh/internal/models"
	"shopgh/internal/repositories"
	"shopgh/internal/session"

	"github.com/dgrijalva/jwt-go"
)

// AuthService handles login, registration, and session tokens. Tokens are
// HS256 JWTs carrying the session ID; the session itself lives server-side
// in the session manager.
type AuthService struct {
	accountRepo repositories.AccountRepository
	sessions    *session.Manager
	jwtSecret   []byte
	tokenDurat  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repositories.AccountRepository, sessions *session.Manager, jwtSecret string) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		sessions:    sessions,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour,
	}
}

// Login checks the credentials against the account mapping and, on success,
// starts a session and returns it with a signed token. Passwords are
// compared in plain text.
func (s *AuthService) Login(username, password string) (*session.Session, string, error) {
	accounts, err := s.accountRepo.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load accounts: %w", err)
	}

	account, ok := accounts[username]
	if !ok || account.Password != password {
		return nil, "", models.ErrInvalidCredentials
	}

	sess := s.sessions.Create(username, account.Role)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sess.ID,
		"username":   sess.User,
		"role":       sess.Role,
		"exp":        time.Now().Add(s.tokenDurat).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.sessions.Destroy(sess.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return sess, tokenString, nil
}

// Register adds a new account with role "user" and persists the full
// mapping. A taken username leaves the mapping unchanged.
func (s *AuthService) Register(username, password string) error {
	accounts, err := s.accountRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	if _, exists := accounts[username]; exists {
		return models.ErrDuplicateUsername
	}

	accounts[username] = models.Account{Password: password, Role: models.RoleUser}
	if err := s.accountRepo.Save(accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

// Logout discards the session, dropping its cart and catalog copy.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Destroy(sessionID)
}

// ValidateToken parses and validates a session token and resolves the live
// session it refers to. A valid token for a destroyed session fails.
func (s *AuthService) ValidateToken(tokenString string) (*session.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing session_id claim")
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session expired or logged out: %w", err)
	}
	return sess, nil
}
