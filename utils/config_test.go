package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_EMAILS", "")
	t.Setenv("USE_CLOUDINARY", "")
	t.Setenv("USE_LOCAL_STORAGE", "")
	t.Setenv("UPLOAD_DIR", "")

	c := LoadConfig()

	assert.Equal(t, "4000", c.Port)
	assert.Empty(t, c.AdminEmails)
	assert.False(t, c.UseCloudinary)
	assert.True(t, c.UseLocalStorage)
	assert.Equal(t, "uploads/properties", c.UploadDir)
	assert.Same(t, c, Conf)
}

func TestParseAdminEmails(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Boss@Example.com ,, intern@example.com ,")

	c := LoadConfig()
	assert.Equal(t, []string{"boss@example.com", "intern@example.com"}, c.AdminEmails)
}

func TestIsAdmin(t *testing.T) {
	c := &Config{AdminEmails: []string{"boss@example.com"}}

	assert.True(t, c.IsAdmin("boss@example.com"))
	assert.True(t, c.IsAdmin("BOSS@EXAMPLE.COM"))
	assert.True(t, c.IsAdmin("  boss@example.com  "))
	assert.False(t, c.IsAdmin("intern@example.com"))
	assert.False(t, c.IsAdmin(""))
}

func TestAdminConfigured(t *testing.T) {
	assert.False(t, (&Config{}).AdminConfigured())
	assert.True(t, (&Config{AdminEmails: []string{"a@b.c"}}).AdminConfigured())
}

func TestEnvBool(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "TRUE": true, "1": true, "yes": true,
		"false": false, "0": false, "no": false, "garbage": false,
	} {
		t.Setenv("SOME_FLAG", raw)
		assert.Equal(t, want, envBool("SOME_FLAG", false), "raw %q", raw)
	}

	t.Setenv("SOME_FLAG", "")
	assert.True(t, envBool("SOME_FLAG", true))
	assert.False(t, envBool("SOME_FLAG", false))
}
