package cmd_test

import (
	"testing"
	"time"

	"bladeshop/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"single", "380617987", []int64{380617987}, false},
		{"multiple", "1,2,3", []int64{1, 2, 3}, false},
		{"spaces and trailing comma", " 1 , 2 ,", []int64{1, 2}, false},
		{"empty", "", []int64{}, false},
		{"negative chat id", "-100200300", []int64{-100200300}, false},
		{"garbage", "1,abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cmd.ParseIDList(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSessionTTL(t *testing.T) {
	ttl, err := cmd.ParseSessionTTL("45")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, ttl)

	ttl, err = cmd.ParseSessionTTL("")
	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultSessionTTL, ttl)

	for _, raw := range []string{"0", "-5", "soon"} {
		_, err = cmd.ParseSessionTTL(raw)
		assert.Error(t, err, raw)
	}
}

func TestPostgresDSN(t *testing.T) {
	config := cmd.Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "secret", DBName: "bladeshop", DBSslMode: "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=bladeshop sslmode=disable",
		config.PostgresDSN())
}
