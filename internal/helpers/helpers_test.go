package helpers

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	// Test case 1: Check if an existing environment variable is retrieved
	expectedValue := "test value"
	t.Setenv("TEST_KEY", expectedValue)

	actualValue := GetEnv("TEST_KEY", "fallback")
	if actualValue != expectedValue {
		t.Errorf("expected value to be [%s], but got [%s]", expectedValue, actualValue)
	}

	// Test case 2: Check if a missing environment variable falls back to the default value
	expectedValue = "fallback"
	actualValue = GetEnv("MISSING_KEY", expectedValue)
	if actualValue != expectedValue {
		t.Errorf("expected value to be [%s], but got [%s]", expectedValue, actualValue)
	}
}

func TestContains(t *testing.T) {
	// Test case 1: Check if an item is in a slice
	slice1 := []string{"apple", "banana", "cherry"}
	if !Contains(slice1, "banana") {
		t.Errorf("expected to find 'banana' in slice, but didn't")
	}

	// Test case 2: Check if an item is not in a slice
	slice2 := []string{"apple", "banana", "cherry"}
	if Contains(slice2, "orange") {
		t.Errorf("expected not to find 'orange' in slice, but did")
	}
}

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()

	exists, err := Exists(fs, "/missing.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, afero.WriteFile(fs, "/present.txt", []byte("data"), 0o644))

	exists, err = Exists(fs, "/present.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRemoveIfExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/victim.txt", []byte("data"), 0o644))

	// First call removes the file
	removed, err := RemoveIfExists(fs, "/victim.txt")
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err := afero.Exists(fs, "/victim.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	// Second call must be a safe no-op
	removed, err = RemoveIfExists(fs, "/victim.txt")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWriteToFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteToFile(fs, "/out.txt", []byte("payload")))

	content, err := afero.ReadFile(fs, "/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}
