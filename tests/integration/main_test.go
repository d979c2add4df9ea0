package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/config"
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/internal/testutils"
	"github.com/linskybing/syncbridge-go/middleware"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	gormDB *gorm.DB
)

func TestMain(m *testing.M) {
	var cleanup func()
	gormDB, cleanup = testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB.Logger = logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
		},
	)

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	router = testutils.SetupRouter()

	registerUserForTests("chad@test.com", "123456", "Chad")
	registerUserForTests("dana@test.com", "123456", "Dana")
	grantRole("chad@test.com", models.UserRoleClient)
	grantRole("dana@test.com", models.UserRoleDeveloper)

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func registerUserForTests(email, password, name string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"email":%q,"password":%q,"display_name":%q}`, email, password, name)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
}

// grantRole sets the role directly in the database so the tests do not
// depend on the license flow they are not exercising.
func grantRole(email string, role models.UserRole) {
	gormDB.Model(&models.User{}).Where("email = ?", email).Update("role", role)
}

func loginUser(t *testing.T, email, password string) string {
	body := map[string]string{"email": email, "password": password}
	resp := doRequest(t, "POST", "/login", "", body, http.StatusOK)

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}
