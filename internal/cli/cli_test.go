package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/skillinit/internal/config"
	"github.com/spetersoncode/skillinit/internal/errors"
)

// runCLI executes the root command with the given arguments and captures
// output. Flag-backed globals are reset first so values from earlier
// invocations don't leak between tests.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	destPath = ""
	verbose = false
	noColor = false
	if args == nil {
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// withTestConfig swaps the global config for the duration of a test.
func withTestConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	orig := globalConfig
	globalConfig = cfg
	t.Cleanup(func() { globalConfig = orig })
}

func TestInitCreatesSkill(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())
	dest := t.TempDir()

	out, err := runCLI(t, "my-skill", "--path", dest)
	require.NoError(t, err)

	assert.Contains(t, out, "Initializing skill: my-skill")
	assert.Contains(t, out, "Successfully initialized skill 'my-skill'")
	assert.Contains(t, out, "Next steps:")

	skillDir := filepath.Join(dest, "my-skill")
	assert.FileExists(t, filepath.Join(skillDir, "SKILL.md"))

	info, err := os.Stat(filepath.Join(skillDir, "scripts", "example"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o111, "example script must be executable")
}

func TestInitMissingPath(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())

	_, err := runCLI(t, "my-skill")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindInvalidArgs))
	assert.Equal(t, ExitInvalidArgs, ExitCode(err))
}

func TestInitNoArguments(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())

	_, err := runCLI(t)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, ExitCode(err))
}

func TestInitTooManyArguments(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())

	_, err := runCLI(t, "one-skill", "two-skill", "--path", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, ExitCode(err))
}

func TestInitInvalidSkillName(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())
	dest := t.TempDir()

	tests := []string{"My-Skill", "my_skill", "skill-", "my skill"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runCLI(t, name, "--path", dest)
			require.Error(t, err)
			assert.Equal(t, ExitInvalidArgs, ExitCode(err))
		})
	}

	// Validation fails before any filesystem activity.
	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInitCollisionExitCode(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())
	dest := t.TempDir()

	_, err := runCLI(t, "repeat-skill", "--path", dest)
	require.NoError(t, err)

	_, err = runCLI(t, "repeat-skill", "--path", dest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindCollision))
	assert.Equal(t, ExitCollision, ExitCode(err))
}

func TestInitUsesConfigDefaultPath(t *testing.T) {
	dest := t.TempDir()
	withTestConfig(t, &config.Config{DefaultPath: dest})

	out, err := runCLI(t, "configured-skill")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully initialized skill 'configured-skill'")
	assert.FileExists(t, filepath.Join(dest, "configured-skill", "SKILL.md"))
}

func TestInitFlagOverridesConfigDefaultPath(t *testing.T) {
	configured := t.TempDir()
	flagged := t.TempDir()
	withTestConfig(t, &config.Config{DefaultPath: configured})

	_, err := runCLI(t, "flagged-skill", "--path", flagged)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(flagged, "flagged-skill", "SKILL.md"))
	assert.NoDirExists(t, filepath.Join(configured, "flagged-skill"))
}

func TestVersionCommand(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())

	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "skillinit")
	assert.Contains(t, out, "Go: go")
	assert.Contains(t, out, "Platform: ")
}
