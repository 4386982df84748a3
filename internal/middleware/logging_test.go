package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain body", `{"name":"Acme"}`, `{"name":"Acme"}`},
		{"empty", ``, ``},
		{"login", `{"password":"s3cret","username":"admin"}`, `{"password":"[redacted]","username":"admin"}`},
		{"tokens", `{"accessToken":"a.b.c","refreshToken":"d.e.f"}`, `{"accessToken":"[redacted]","refreshToken":"[redacted]"}`},
		{"truncated", `{"password":"s3c`, `[redacted]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redact([]byte(tt.body)))
		})
	}
}
