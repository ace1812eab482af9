package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"ecotutor/internal/core"
	"ecotutor/internal/dto"
	cErr "ecotutor/internal/pkg/error"
)

func newJSONContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindAndValidate_ValidBody(t *testing.T) {
	c := newJSONContext(t, `{"username":"alice","password":"correct horse"}`)

	signupDto := &dto.SignupDto{}
	cause, respErr := BindAndValidate(c, signupDto)

	require.NoError(t, cause)
	require.NoError(t, respErr)
	require.Equal(t, "alice", signupDto.Username)
}

func TestBindAndValidate_FormatsFieldErrors(t *testing.T) {
	// username 太短、password 缺漏：錯誤訊息要帶 json 欄位名與規則
	c := newJSONContext(t, `{"username":"ab"}`)

	signupDto := &dto.SignupDto{}
	cause, respErr := BindAndValidate(c, signupDto)

	require.Error(t, cause)
	appErr, ok := respErr.(*cErr.Error)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, appErr.HttpCode())
	require.Contains(t, appErr.ErrorDesc(), "Validation error")
	require.Contains(t, appErr.ErrorDesc(), `Field "username"`)
	require.Contains(t, appErr.ErrorDesc(), `Field "password"`)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newJSONContext(t, `{"username":`)

	cause, respErr := BindAndValidate(c, &dto.LoginDto{})

	require.Error(t, cause)
	appErr, ok := respErr.(*cErr.Error)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, appErr.HttpCode())
}

func TestIsValidRole(t *testing.T) {
	require.True(t, IsValidRole(string(core.RoleAdmin)))
	require.True(t, IsValidRole(string(core.RoleUser)))
	require.False(t, IsValidRole("superuser"))
	require.False(t, IsValidRole(""))
}

func TestIsValidStatus(t *testing.T) {
	require.True(t, IsValidStatus(string(core.StatusActive)))
	require.True(t, IsValidStatus(string(core.StatusBlocked)))
	require.False(t, IsValidStatus("suspended"))
}
