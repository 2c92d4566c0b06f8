package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			MasterPassword:   "secret",
			LogFile:          "/tmp/pwman.log",
			ClipboardTimeout: 20 * time.Second,
		},
		Storage:        Storage{DB: DB{DSN: "/tmp/vault.db"}},
		Search:         Search{Term: "mail"},
		ImportFilePath: "/tmp/import.json",
	}

	got := newClientConfig(cfg)

	assert.Equal(t, "secret", got.App.MasterPassword)
	assert.Equal(t, "/tmp/pwman.log", got.App.LogFile)
	assert.Equal(t, 20*time.Second, got.App.ClipboardTimeout)
	assert.Equal(t, "/tmp/vault.db", got.Storage.DB.DSN)
	assert.Equal(t, "mail", got.Search.Term)
	assert.Equal(t, "/tmp/import.json", got.ImportFilePath)
	assert.NoError(t, got.validate())
}

func TestNewClientConfig_DefaultDSN(t *testing.T) {
	got := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultDSN, got.Storage.DB.DSN)
	assert.NoError(t, got.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg:  ClientConfig{Storage: ClientStorage{DB: ClientDB{DSN: "vault.db"}}},
		},
		{
			name:    "empty dsn",
			cfg:     ClientConfig{},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			cfg:     ClientConfig{Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "negative clipboard timeout",
			cfg: ClientConfig{
				App:     ClientApp{ClipboardTimeout: -time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "vault.db"}},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_MASTER_PASSWORD", "from-env")
	withArgs(t, "-d", "/tmp/flag.db", "-import", "/tmp/tree.json")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.MasterPassword)
	assert.Equal(t, "/tmp/flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/tree.json", cfg.ImportFilePath)
}

func TestGetClientConfig_PropagatesSourceError(t *testing.T) {
	clearEnvVars(t)
	withArgs(t, "-c", "/nonexistent/pwman.json")

	cfg, err := GetClientConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}
