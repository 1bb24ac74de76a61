package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzametrics/internal/logging"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "password",
			in:   `{"email":"d@jwt.com","password":"diner123"}`,
			want: `{"email":"d@jwt.com","password": "*****"}`,
		},
		{
			name: "api key",
			in:   `{"apiKey":"glc_abc"}`,
			want: `{"apiKey": "*****"}`,
		},
		{
			name: "token",
			in:   `{"user":{"id":1},"token":"tok-7"}`,
			want: `{"user":{"id":1},"token": "*****"}`,
		},
		{
			name: "authorization header",
			in:   `{"authorization":"Bearer abc.def"}`,
			want: `{"authorization": "Bearer *****"}`,
		},
		{
			name: "bearer in free text",
			in:   `{"msg":"sent Bearer 123:glc_xyz== upstream"}`,
			want: `{"msg":"sent Bearer ***** upstream"}`,
		},
		{
			name: "escaped body",
			in:   `{"reqBody":"{\"email\":\"d@jwt.com\",\"password\":\"diner123\"}"}`,
			want: `{"reqBody":"{\"email\":\"d@jwt.com\",\"password\": \"*****\"}"}`,
		},
		{
			name: "password with escaped quote",
			in:   `{"password":"hunter\"2secret"}`,
			want: `{"password": "*****"}`,
		},
		{
			name: "escaped body password with quote",
			in:   `{"body":"{\"password\":\"a\\\"b\",\"x\":1}"}`,
			want: `{"body":"{\"password\": \"*****\",\"x\":1}"}`,
		},
		{
			name: "escaped body password ending in backslash",
			in:   `{"body":"{\"password\":\"a\\\\\",\"x\":\"y\"}"}`,
			want: `{"body":"{\"password\": \"*****\",\"x\":\"y\"}"}`,
		},
		{
			name: "authorization header with quote",
			in:   `{"authorization":"Bearer ab\"c"}`,
			want: `{"authorization": "Bearer *****"}`,
		},
		{
			name: "nothing to mask",
			in:   `{"msg":"request","status":200}`,
			want: `{"msg":"request","status":200}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.Sanitize(tt.in))
		})
	}
}
