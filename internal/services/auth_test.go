package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/database"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	tests := []struct {
		name         string
		displayName  string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:        "successful registration",
			displayName: "Alice",
			username:    "alice",
			password:    "pass123",
		},
		{
			name:         "user already exists",
			displayName:  "Bob",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{Username: "bob", DisplayName: "Bobby"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:        "duplicate detected on save",
			displayName: "Dave",
			username:    "dave",
			password:    "pass123",
			writerErr:   repositories.ErrDuplicateUser,
			wantErr:     services.ErrUserAlreadyExists,
		},
		{
			name:        "reader error",
			displayName: "Eve",
			username:    "eve",
			password:    "pass123",
			readerErr:   errors.New("db error"),
			wantErr:     errors.New("db error"),
		},
		{
			name:        "writer error",
			displayName: "Carol",
			username:    "carol",
			password:    "pass123",
			writerErr:   errors.New("save error"),
			wantErr:     errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.displayName, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, hash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerErr
					})
			}

			err := svc.Register(context.Background(), tt.displayName, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockSessionWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	cases := [][3]string{
		{"", "alice", "pw"},
		{"Alice", "", "pw"},
		{"Alice", "alice", ""},
	}
	for _, c := range cases {
		err := svc.Register(context.Background(), c[0], c[1], c[2])
		assert.ErrorIs(t, err, services.ErrMissingFields)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl),
		services.NewMockSessionWriter(ctrl), services.NewMockTokenGenerator(ctrl))

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &models.UserDB{Username: "alice", DisplayName: "Alice", PasswordHash: string(hashed)}

	t.Run("match", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		user, err := svc.Authenticate(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, &models.User{Username: "alice", DisplayName: "Alice"}, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		user, err := svc.Authenticate(context.Background(), "alice", "Secret")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("empty password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		user, err := svc.Authenticate(context.Background(), "alice", "")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("prefix", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		user, err := svc.Authenticate(context.Background(), "alice", "secr")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
		user, err := svc.Authenticate(context.Background(), "ghost", "secret")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestAuthService_Authenticate_SQLiteStore(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenUsers(ctx, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
		services.NewMockSessionWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)
	require.NoError(t, svc.Register(ctx, "Alice", "alice", "secret"))

	user, err := svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, &models.User{Username: "alice", DisplayName: "Alice"}, user)

	for _, password := range []string{"", "s", "secr", "secre", "secret ", "SECRET"} {
		user, err := svc.Authenticate(ctx, "alice", password)
		assert.NoError(t, err, password)
		assert.Nil(t, user, password)
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{Username: "alice", DisplayName: "Alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{Username: "carol", DisplayName: "Carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			user:      &models.UserDB{Username: "dan", DisplayName: "Dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				var saved *models.Session
				mockSessions.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *models.Session) error {
						saved = s
						assert.Equal(t, tt.user.Username, s.Username)
						assert.Equal(t, tt.user.DisplayName, s.DisplayName)
						return nil
					})
				mockTokens.EXPECT().
					Generate(gomock.Any(), gomock.Any(), tt.username).
					DoAndReturn(func(_ context.Context, id uuid.UUID, _ string) (string, error) {
						assert.Equal(t, saved.ID, id)
						return tt.expectJWT, tt.jwtErr
					})
				if tt.jwtErr != nil {
					mockSessions.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				}
			}

			token, user, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
				assert.Equal(t, tt.user.DisplayName, user.DisplayName)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionWriter(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl),
		mockSessions, services.NewMockTokenGenerator(ctrl))

	id := uuid.New()
	mockSessions.EXPECT().Delete(gomock.Any(), id).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), id))

	mockSessions.EXPECT().Delete(gomock.Any(), id).Return(repositories.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Logout(context.Background(), id), repositories.ErrSessionNotFound)
}
