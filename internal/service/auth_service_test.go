package service

import (
	"net/http/httptest"
	"testing"

	"lingo_backend/internal/repository"
	"lingo_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func mockUserRepo(t *testing.T) (*repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return repository.NewUserRepository(db), mock
}

func authedContext(userID uint) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user", &util.Claims{UserID: userID})
	return c
}

func TestGetCurrentUser_NoClaims(t *testing.T) {
	svc := &AuthService{}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, svc.GetCurrentUser(c))
}

func TestGetCurrentUser_VanishedUser(t *testing.T) {
	repo, mock := mockUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := &AuthService{UserRepo: repo}

	// 令牌仍然有效，但对应的用户已被删除
	assert.Nil(t, svc.GetCurrentUser(authedContext(42)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCurrentUser_Found(t *testing.T) {
	repo, mock := mockUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(42, "amina@example.com"))

	svc := &AuthService{UserRepo: repo}

	user := svc.GetCurrentUser(authedContext(42))
	require.NotNil(t, user)
	assert.Equal(t, uint(42), user.ID)
}
