package server_test

import (
	"testing"

	"sync-actions/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Default", "", ":8080"},
		{"Custom", "9090", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 8*1024*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 2*1024*1024, server.Config{BodyLimitMB: 2}.BodyLimit())
}
