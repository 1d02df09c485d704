package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCORS(t *testing.T) {
	assert.NotPanics(t, func() {
		ConfigCORS([]string{"http://localhost:3000"})
	})
}

func TestConfigCORS_EmptyListAllowsAnyOrigin(t *testing.T) {
	assert.NotPanics(t, func() {
		ConfigCORS(nil)
	})
}
