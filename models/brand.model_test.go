package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Nothing Phone", "nothing-phone"},
		{"JBL", "jbl"},
		{"  Boat  ", "boat"},
		{"One  Plus", "one-plus"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.name))
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}

func TestValidNavType(t *testing.T) {
	assert.True(t, ValidNavType(NavTypeDevice))
	assert.True(t, ValidNavType(NavTypeCategory))
	assert.False(t, ValidNavType("menu"))
}
