package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-12D3-A456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()
	_, ok := IsValidDate("2024-03-11")
	assert.True(t, ok)
	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("11-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMemberCode(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidMemberCode("1234-5678"))
	assert.True(t, IsValidMemberCode("0000-0000"))
	assert.False(t, IsValidMemberCode("12345678"))
	assert.False(t, IsValidMemberCode("1234-567"))
	assert.False(t, IsValidMemberCode("abcd-efgh"))
	assert.False(t, IsValidMemberCode(" 1234-5678"))
}

func TestIsValidPIN(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidPIN("1234"))
	assert.True(t, IsValidPIN("12345678"))
	assert.False(t, IsValidPIN("123"))
	assert.False(t, IsValidPIN("123456789"))
	assert.False(t, IsValidPIN("12a4"))
	assert.False(t, IsValidPIN(""))
}
