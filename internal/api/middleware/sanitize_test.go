package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "gt", SanitizeKey("$gt"))
	assert.Equal(t, "profilename", SanitizeKey("profile.name"))
	assert.Equal(t, "a$b", SanitizeKey("a$b"))
	assert.Equal(t, "", SanitizeKey("$"))
}

func TestSanitize_JSONBodyAndQuery(t *testing.T) {
	e := echo.New()
	body := `{"email":{"$ne":null},"password":"x","nested":[{"a.b":1,"$where":"1"}],"keep":"$value.with.dots"}`
	req := httptest.NewRequest(http.MethodPost, "/?$where=1&page.size=2&ok=3", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var gotBody string
	var gotQuery map[string][]string
	h := Sanitize()(func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		gotBody = string(b)
		gotQuery = c.QueryParams()
		return nil
	})
	require.NoError(t, h(c))

	assert.JSONEq(t, `{"email":{"ne":null},"password":"x","nested":[{"ab":1,"where":"1"}],"keep":"$value.with.dots"}`, gotBody)
	assert.Equal(t, []string{"1"}, gotQuery["where"])
	assert.Equal(t, []string{"2"}, gotQuery["pagesize"])
	assert.Equal(t, []string{"3"}, gotQuery["ok"])
	assert.NotContains(t, gotQuery, "$where")
}

func TestSanitize_InvalidJSONPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"broken"`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	h := Sanitize()(func(c echo.Context) error {
		b, _ := io.ReadAll(c.Request().Body)
		assert.Equal(t, `{"broken"`, string(b))
		return nil
	})
	require.NoError(t, h(c))
}
