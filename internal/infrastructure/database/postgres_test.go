package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSupabaseDSN(t *testing.T) {
	dsn, err := BuildSupabaseDSN("https://abc.supabase.co/", "pw")
	require.NoError(t, err)
	assert.Equal(t, "host=db.abc.supabase.co port=6543 user=postgres password=pw dbname=postgres sslmode=require", dsn)

	_, err = BuildSupabaseDSN("", "pw")
	assert.Error(t, err)
	_, err = BuildSupabaseDSN("https://abc.supabase.co", "")
	assert.Error(t, err)
}

func TestNewSupabaseClient_MissingEnv(t *testing.T) {
	_, err := NewSupabaseClient("", "key")
	assert.Error(t, err)
	_, err = NewSupabaseClient("https://abc.supabase.co", "")
	assert.Error(t, err)
}

func TestHealthCheck_Uninitialized(t *testing.T) {
	assert.Error(t, (&PostgreSQLClient{}).HealthCheck())
	assert.Error(t, (&SupabaseClient{}).HealthCheck())
}
