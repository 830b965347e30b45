package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// Sanitize strips MongoDB operator syntax from client-controlled keys: a
// leading '$' and every '.' are removed from query parameter names and,
// recursively, from the keys of JSON request bodies. Values are untouched.
func Sanitize() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if req.URL.RawQuery != "" {
				req.URL.RawQuery = sanitizeQuery(req.URL.Query()).Encode()
			}

			if req.Body != nil && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				raw, err := io.ReadAll(req.Body)
				if err != nil {
					return err
				}
				req.Body = io.NopCloser(bytes.NewReader(sanitizeJSON(raw)))
				req.ContentLength = -1
			}

			return next(c)
		}
	}
}

// SanitizeKey applies the key rule.
func SanitizeKey(k string) string {
	return strings.ReplaceAll(strings.TrimPrefix(k, "$"), ".", "")
}

func sanitizeQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		if sk := SanitizeKey(k); sk != "" {
			out[sk] = append(out[sk], v...)
		}
	}
	return out
}

// sanitizeJSON rewrites a JSON document with cleaned keys. Bodies that do
// not parse are passed through so the binder reports the error.
func sanitizeJSON(raw []byte) []byte {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return raw
	}
	out, err := json.Marshal(sanitizeValue(doc))
	if err != nil {
		return raw
	}
	return out
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		clean := make(map[string]any, len(t))
		for k, val := range t {
			if sk := SanitizeKey(k); sk != "" {
				clean[sk] = sanitizeValue(val)
			}
		}
		return clean
	case []any:
		for i := range t {
			t[i] = sanitizeValue(t[i])
		}
		return t
	default:
		return v
	}
}
