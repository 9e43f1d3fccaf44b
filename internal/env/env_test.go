package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("UPLOADER_TEST_PREFIX", "apk")

	assert.Equal(t, "apk", GetString("UPLOADER_TEST_PREFIX", "android-packages"))
	assert.Equal(t, "android-packages", GetString("UPLOADER_TEST_MISSING", "android-packages"))
}

func TestGetStringKeepsEmptyValue(t *testing.T) {
	t.Setenv("UPLOADER_TEST_PREFIX", "")

	assert.Equal(t, "", GetString("UPLOADER_TEST_PREFIX", "android-packages"))
}

func TestGetInt64(t *testing.T) {
	t.Setenv("UPLOADER_TEST_SIZE", "1048576")
	t.Setenv("UPLOADER_TEST_BAD_SIZE", "lots")

	assert.Equal(t, int64(1048576), GetInt64("UPLOADER_TEST_SIZE", 1))
	assert.Equal(t, int64(1), GetInt64("UPLOADER_TEST_BAD_SIZE", 1))
	assert.Equal(t, int64(7), GetInt64("UPLOADER_TEST_MISSING", 7))
}

func TestGetBool(t *testing.T) {
	t.Setenv("UPLOADER_TEST_FLAG", "true")
	t.Setenv("UPLOADER_TEST_BAD_FLAG", "maybe")

	assert.True(t, GetBool("UPLOADER_TEST_FLAG", false))
	assert.False(t, GetBool("UPLOADER_TEST_BAD_FLAG", false))
	assert.True(t, GetBool("UPLOADER_TEST_MISSING", true))
}
