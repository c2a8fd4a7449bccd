package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("TEST_INT", 7))
	assert.Equal(t, 7, getEnvInt("TEST_INT_MISSING", 7))

	t.Setenv("TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, getEnvInt("TEST_INT_BAD", 7))
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		parseOrigins("https://a.example.com, https://b.example.com"))
	assert.Equal(t, []string{"https://a.example.com"}, parseOrigins("https://a.example.com,,"))
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "course:abc:tree", CacheKey.CourseTreeKey("abc"))
	assert.Equal(t, "exam:abc:detail", CacheKey.ExamDetailKey("abc"))
}
