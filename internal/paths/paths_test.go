package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/devlog", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "devlog"), got)
	})
}

func TestDefaultRepoDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := DefaultRepoDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "devlogs"), got)
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string // substring the result must contain
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			flag:    "",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "platform default when both empty",
			flag:    "",
			envVal:  "",
			wantSub: "devlog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveRepoDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		cfgVal  string
		envVal  string
		wantSub string
	}{
		{
			name:    "flag wins over config and env",
			flag:    "/flag/repo",
			cfgVal:  "/cfg/repo",
			envVal:  "/env/repo",
			wantSub: "/flag/repo",
		},
		{
			name:    "config wins over env",
			cfgVal:  "/cfg/repo",
			envVal:  "/env/repo",
			wantSub: "/cfg/repo",
		},
		{
			name:    "env wins when flag and config empty",
			envVal:  "/env/repo",
			wantSub: "/env/repo",
		},
		{
			name:    "defaults to ~/devlogs",
			wantSub: "devlogs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvRepoDir, tt.envVal)
			got, err := ResolveRepoDir(tt.flag, tt.cfgVal)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveEditor(t *testing.T) {
	t.Run("config value wins", func(t *testing.T) {
		t.Setenv(EnvEditor, "vim")
		assert.Equal(t, "emacs", ResolveEditor("emacs"))
	})

	t.Run("env wins when config empty", func(t *testing.T) {
		t.Setenv(EnvEditor, "vim")
		assert.Equal(t, "vim", ResolveEditor(""))
	})

	t.Run("defaults to nano", func(t *testing.T) {
		t.Setenv(EnvEditor, "")
		assert.Equal(t, "nano", ResolveEditor(""))
	})
}
