package accountservice

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/pkg/auth"
	"github.com/GlebRadaev/fruitshop/pkg/idx"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, fn func(*domain.User) error) (*domain.User, error)
}

type SessionRepo interface {
	Load(ctx context.Context) (*domain.SessionUser, error)
	Save(ctx context.Context, user *domain.SessionUser) error
	Clear(ctx context.Context) error
}

// Service is the account directory: it owns user records and the single
// authenticated session of this store.
type Service struct {
	userRepo    Repo
	sessionRepo SessionRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time

	// sessionMu serializes every change of the session so that a refresh
	// never resurrects a session that Logout has already cleared.
	sessionMu sync.Mutex
	mu        sync.RWMutex
	current   *domain.SessionUser
}

func New(repo Repo, sessionRepo SessionRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		sessionRepo: sessionRepo,
		hashService: hashService,
		jwtService:  jwtService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Restore rehydrates the session from its persisted snapshot.
func (s *Service) Restore(ctx context.Context) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	snapshot, err := s.sessionRepo.Load(ctx)
	if err != nil {
		zap.L().Error("can't restore session", zap.Error(err))
		return err
	}
	s.setCurrent(snapshot)
	if snapshot != nil {
		zap.L().Info("session restored", zap.String("email", snapshot.Email))
	}
	return nil
}

func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (*domain.SessionUser, error) {
	if err := validateRegistration(input); err != nil {
		zap.L().Info("registration rejected", zap.Error(err))
		return nil, err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", input.Email))
		return nil, domain.ErrDuplicateUser
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:             idx.NewAt(now),
		Email:          input.Email,
		CredentialHash: hashedPassword,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		Address:        input.Address,
		CreatedAt:      now,
		OrderIDs:       []string{},
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", input.Email))
	return newUser.Strip(), nil
}

func validateRegistration(input domain.RegisterInput) error {
	fields := []lo.Tuple2[string, string]{
		lo.T2("email", input.Email),
		lo.T2("password", input.Password),
		lo.T2("firstName", input.FirstName),
		lo.T2("lastName", input.LastName),
	}
	missing := lo.FilterMap(fields, func(f lo.Tuple2[string, string], _ int) (string, bool) {
		return f.A, strings.TrimSpace(f.B) == ""
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.SessionUser, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("login for unknown user", zap.String("email", email))
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, email)
	}
	if ok := s.hashService.ComparePassword(user.CredentialHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredential
	}

	session := user.Strip()
	s.sessionMu.Lock()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.sessionMu.Unlock()
		return nil, err
	}
	s.setCurrent(session)
	s.sessionMu.Unlock()

	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return s.CurrentUser(), nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if err := s.sessionRepo.Clear(ctx); err != nil {
		return err
	}
	s.setCurrent(nil)
	zap.L().Info("user logged out")
	return nil
}

// CurrentUser returns a copy of the session user, nil when logged out.
func (s *Service) CurrentUser() *domain.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	user.OrderIDs = append([]string{}, s.current.OrderIDs...)
	return &user
}

func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *Service) FindUser(ctx context.Context, id string) (*domain.SessionUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return user.Strip(), nil
}

func (s *Service) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.SessionUser, error) {
	current := s.CurrentUser()
	if current == nil {
		return nil, domain.ErrUnauthenticated
	}

	updated, err := s.userRepo.Update(ctx, current.ID, func(u *domain.User) error {
		patch.Apply(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.refreshSession(ctx, updated); err != nil {
		return nil, err
	}

	zap.L().Info("profile updated", zap.String("email", updated.Email))
	return updated.Strip(), nil
}

// AppendOrder records orderID in the owner's order history.
func (s *Service) AppendOrder(ctx context.Context, userID, orderID string) error {
	updated, err := s.userRepo.Update(ctx, userID, func(u *domain.User) error {
		u.OrderIDs = append(u.OrderIDs, orderID)
		return nil
	})
	if err != nil {
		return err
	}
	if err := s.refreshSession(ctx, updated); err != nil {
		zap.L().Error("order recorded but session snapshot not refreshed", zap.String("order_id", orderID), zap.Error(err))
	}
	return nil
}

// GenerateToken issues a bearer token for the HTTP session of userID.
func (s *Service) GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// refreshSession rewrites the session snapshot when user is the one logged in.
func (s *Service) refreshSession(ctx context.Context, user *domain.User) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	current := s.CurrentUser()
	if current == nil || current.ID != user.ID {
		return nil
	}
	session := user.Strip()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return err
	}
	s.setCurrent(session)
	return nil
}

func (s *Service) setCurrent(user *domain.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = user
}
