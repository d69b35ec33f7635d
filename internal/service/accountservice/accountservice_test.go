package accountservice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/internal/kv"
	sessionrepo "github.com/GlebRadaev/fruitshop/internal/repo/session-repo"
	userrepo "github.com/GlebRadaev/fruitshop/internal/repo/user-repo"
	"github.com/GlebRadaev/fruitshop/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockSessionRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	sessionRepo := NewMockSessionRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, sessionRepo, hashService, jwtService)
	return service, repo, sessionRepo, hashService, jwtService
}

// newDirectory wires the service over an in-memory store.
func newDirectory(store kv.Store) *Service {
	return New(
		userrepo.New(store, &sync.Mutex{}),
		sessionrepo.New(store),
		&auth.LegacyHashService{},
		auth.NewJWTService("test-secret"),
	)
}

func validInput() domain.RegisterInput {
	return domain.RegisterInput{
		Email:     "ann@example.com",
		Password:  "apples",
		FirstName: "Ann",
		LastName:  "Lee",
		Phone:     "555-0100",
	}
}

func TestRegister(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		input         func() domain.RegisterInput
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful registration",
			input: validInput,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("apples").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
		},
		{
			name: "Missing required fields",
			input: func() domain.RegisterInput {
				in := validInput()
				in.FirstName = "  "
				in.Password = ""
				return in
			},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "User already exists",
			input: validInput,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(&domain.User{Email: "ann@example.com"}, nil)
			},
			expectedError: domain.ErrDuplicateUser,
		},
		{
			name:  "Error finding user",
			input: validInput,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:  "Error hashing password",
			input: validInput,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("apples").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:  "Error creating user",
			input: validInput,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("apples").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.input())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				if errors.Is(tt.expectedError, domain.ErrValidation) || errors.Is(tt.expectedError, domain.ErrDuplicateUser) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ann@example.com", user.Email)
			assert.Equal(t, "Ann", user.FirstName)
			assert.Equal(t, "555-0100", user.Phone)
			assert.NotEmpty(t, user.ID)
			assert.Empty(t, user.OrderIDs)
			assert.False(t, service.IsAuthenticated())
		})
	}
}

func TestRegister_ValidationNamesFields(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	_, err := service.Register(context.Background(), domain.RegisterInput{Email: "a@b.c"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "password, firstName, lastName")
}

func TestLogin(t *testing.T) {
	stored := &domain.User{ID: "u1", Email: "ann@example.com", CredentialHash: "hashedpassword", FirstName: "Ann"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func(repo *MockRepo, sessions *MockSessionRepo, hasher *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name:     "Successful login",
			password: "apples",
			prepareMock: func(repo *MockRepo, sessions *MockSessionRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hasher.EXPECT().ComparePassword("hashedpassword", "apples").Return(true)
				sessions.EXPECT().Save(gomock.Any(), stored.Strip()).Return(nil)
			},
		},
		{
			name:     "Unknown user",
			password: "apples",
			prepareMock: func(repo *MockRepo, sessions *MockSessionRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:     "Wrong password",
			password: "pears",
			prepareMock: func(repo *MockRepo, sessions *MockSessionRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hasher.EXPECT().ComparePassword("hashedpassword", "pears").Return(false)
			},
			expectedError: domain.ErrInvalidCredential,
		},
		{
			name:     "Snapshot not persisted",
			password: "apples",
			prepareMock: func(repo *MockRepo, sessions *MockSessionRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hasher.EXPECT().ComparePassword("hashedpassword", "apples").Return(true)
				sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			expectedError: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, sessions, hasher, _ := NewMock(t)
			tt.prepareMock(repo, sessions, hasher)

			user, err := service.Login(context.Background(), "ann@example.com", tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, user)
				assert.False(t, service.IsAuthenticated())
				assert.Nil(t, service.CurrentUser())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.Strip(), user)
			assert.True(t, service.IsAuthenticated())
		})
	}
}

func TestRestore(t *testing.T) {
	service, _, sessions, _, _ := NewMock(t)
	ctx := context.Background()

	sessions.EXPECT().Load(gomock.Any()).Return(&domain.SessionUser{ID: "u1", Email: "ann@example.com"}, nil)
	require.NoError(t, service.Restore(ctx))
	assert.True(t, service.IsAuthenticated())
	assert.Equal(t, "u1", service.CurrentUser().ID)

	sessions.EXPECT().Load(gomock.Any()).Return(nil, nil)
	require.NoError(t, service.Restore(ctx))
	assert.False(t, service.IsAuthenticated())

	sessions.EXPECT().Load(gomock.Any()).Return(nil, errors.New("corrupted"))
	assert.Error(t, service.Restore(ctx))
}

func TestLogout(t *testing.T) {
	service, _, sessions, _, _ := NewMock(t)
	ctx := context.Background()

	sessions.EXPECT().Clear(gomock.Any()).Return(nil).Times(2)
	require.NoError(t, service.Logout(ctx))
	require.NoError(t, service.Logout(ctx))
	assert.False(t, service.IsAuthenticated())

	sessions.EXPECT().Clear(gomock.Any()).Return(errors.New("io error"))
	assert.Error(t, service.Logout(ctx))
}

func TestUpdateProfile_Errors(t *testing.T) {
	service, repo, sessions, _, _ := NewMock(t)
	ctx := context.Background()
	name := "Anna"

	_, err := service.UpdateProfile(ctx, domain.ProfilePatch{FirstName: &name})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	sessions.EXPECT().Load(gomock.Any()).Return(&domain.SessionUser{ID: "ghost"}, nil)
	require.NoError(t, service.Restore(ctx))

	repo.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(nil, domain.ErrNotFound)
	_, err = service.UpdateProfile(ctx, domain.ProfilePatch{FirstName: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT("u1", gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken("u1")
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT("u1", gomock.Any()).Return("", errors.New("signing failed"))
	_, err = service.GenerateToken("u1")
	assert.Error(t, err)
}

func TestDirectory_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	directory := newDirectory(store)

	_, err := directory.Register(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.FirstName = "Other"
	_, err = directory.Register(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	users, err := userrepo.New(store, &sync.Mutex{}).FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", users.FirstName)

	raw, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(raw.MustGet(), `"email":"ann@example.com"`))
}

func TestDirectory_LoginFlow(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	directory := newDirectory(store)

	_, err := directory.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = directory.Login(ctx, "ann@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.False(t, directory.IsAuthenticated())

	_, err = directory.Login(ctx, "bob@example.com", "apples")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	user, err := directory.Login(ctx, "ann@example.com", "apples")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FirstName)

	snapshot, err := store.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.NotContains(t, snapshot.MustGet(), "credentialHash")
	assert.NotContains(t, snapshot.MustGet(), "YXBwbGVz")

	restarted := newDirectory(store)
	assert.False(t, restarted.IsAuthenticated())
	require.NoError(t, restarted.Restore(ctx))
	assert.Equal(t, directory.CurrentUser(), restarted.CurrentUser())

	require.NoError(t, restarted.Logout(ctx))
	require.NoError(t, restarted.Logout(ctx))
	snapshot, err = store.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.True(t, snapshot.IsAbsent())
}

func TestDirectory_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	directory := newDirectory(store)

	_, err := directory.Register(ctx, validInput())
	require.NoError(t, err)
	_, err = directory.Login(ctx, "ann@example.com", "apples")
	require.NoError(t, err)

	address := "1 Orchard Lane"
	lastName := "Smith"
	updated, err := directory.UpdateProfile(ctx, domain.ProfilePatch{Address: &address, LastName: &lastName})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "1 Orchard Lane", updated.Address)
	assert.Equal(t, updated, directory.CurrentUser())

	_, err = directory.Login(ctx, "ann@example.com", "apples")
	require.NoError(t, err)
	assert.Equal(t, "Smith", directory.CurrentUser().LastName)
}

func TestDirectory_AppendOrder(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	directory := newDirectory(store)

	registered, err := directory.Register(ctx, validInput())
	require.NoError(t, err)
	_, err = directory.Login(ctx, "ann@example.com", "apples")
	require.NoError(t, err)

	require.NoError(t, directory.AppendOrder(ctx, registered.ID, "ORD-1"))
	require.NoError(t, directory.AppendOrder(ctx, registered.ID, "ORD-2"))
	assert.Equal(t, []string{"ORD-1", "ORD-2"}, directory.CurrentUser().OrderIDs)

	found, err := directory.FindUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-1", "ORD-2"}, found.OrderIDs)

	assert.ErrorIs(t, directory.AppendOrder(ctx, "ghost", "ORD-3"), domain.ErrNotFound)
	_, err = directory.FindUser(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppendOrder_StaleSessionIsNotFatal(t *testing.T) {
	service, repo, sessionRepo, _, _ := NewMock(t)
	ctx := context.Background()
	service.setCurrent(&domain.SessionUser{ID: "u1"})

	repo.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).Return(&domain.User{ID: "u1", OrderIDs: []string{"ORD-1"}}, nil)
	sessionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("store unavailable"))

	assert.NoError(t, service.AppendOrder(ctx, "u1", "ORD-1"))
	assert.Empty(t, service.CurrentUser().OrderIDs)
}

// gatedSessions pauses the first armed Save until release is closed.
type gatedSessions struct {
	*sessionrepo.Repository
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedSessions) Save(ctx context.Context, user *domain.SessionUser) error {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.Repository.Save(ctx, user)
}

func TestAppendOrder_ConcurrentLogoutWins(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	sessions := &gatedSessions{
		Repository: sessionrepo.New(store),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	directory := New(userrepo.New(store, &sync.Mutex{}), sessions, &auth.LegacyHashService{}, auth.NewJWTService("test-secret"))

	registered, err := directory.Register(ctx, validInput())
	require.NoError(t, err)
	_, err = directory.Login(ctx, "ann@example.com", "apples")
	require.NoError(t, err)

	sessions.armed.Store(true)
	appendDone := make(chan error, 1)
	go func() { appendDone <- directory.AppendOrder(ctx, registered.ID, "ORD-1") }()
	<-sessions.entered

	logoutDone := make(chan error, 1)
	go func() { logoutDone <- directory.Logout(ctx) }()

	select {
	case <-logoutDone:
		t.Fatal("logout finished while the session refresh was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(sessions.release)
	require.NoError(t, <-appendDone)
	require.NoError(t, <-logoutDone)

	assert.False(t, directory.IsAuthenticated())
	assert.Nil(t, directory.CurrentUser())
	snapshot, err := store.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.True(t, snapshot.IsAbsent())

	owner, err := directory.FindUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-1"}, owner.OrderIDs)
}

func TestAppendOrder_AfterLogoutDoesNotRestoreSession(t *testing.T) {
	service, repo, sessionRepo, _, _ := NewMock(t)
	ctx := context.Background()

	sessionRepo.EXPECT().Clear(gomock.Any()).Return(nil)
	require.NoError(t, service.Logout(ctx))

	repo.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).Return(&domain.User{ID: "u1", OrderIDs: []string{"ORD-1"}}, nil)
	sessionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.AppendOrder(ctx, "u1", "ORD-1"))
	assert.False(t, service.IsAuthenticated())
}

func TestRegister_PasswordOverBcryptLimit(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	directory := New(userrepo.New(store, &sync.Mutex{}), sessionrepo.New(store), &auth.HashService{}, auth.NewJWTService("test-secret"))

	input := validInput()
	input.Password = strings.Repeat("p", 73)
	_, err := directory.Register(ctx, input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input.Password = strings.Repeat("p", 72)
	_, err = directory.Register(ctx, input)
	assert.NoError(t, err)
}
