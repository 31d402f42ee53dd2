// Package scaffold materializes a new skill directory seeded from the
// embedded templates.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/spetersoncode/skillinit/internal/errors"
	"github.com/spetersoncode/skillinit/internal/skillname"
	"github.com/spetersoncode/skillinit/internal/templates"
)

// Names of the generated directories and files inside the skill directory.
const (
	SkillFileName     = "SKILL.md"
	ScriptsDirName    = "scripts"
	ReferencesDirName = "references"
	AssetsDirName     = "assets"
	ScriptFileName    = "example"
	ReferenceFileName = "api_reference"
	AssetFileName     = "example_asset"
)

// Scaffolder creates skill directories. The zero value writes progress to
// stdout.
type Scaffolder struct {
	// Out receives per-step progress output.
	Out io.Writer
}

// Initialize creates <destination>/<identifier> populated with the templated
// SKILL.md and the three example resource files, and returns the created
// path. The caller is expected to have validated the identifier.
//
// The tree is built inside a hidden staging directory next to the final
// location and moved into place with a single rename, so a mid-sequence
// failure never leaves a partial skill directory behind. Two invocations
// racing on the same identifier resolve to one winner; the loser reports a
// collision.
func (s *Scaffolder) Initialize(identifier, destination string) (string, error) {
	dest, err := filepath.Abs(destination)
	if err != nil {
		return "", errors.WrapCreation(err, "failed to resolve destination path %q", destination)
	}
	skillDir := filepath.Join(dest, identifier)

	// Collision guard. A plain file at the target path counts too.
	if _, err := os.Lstat(skillDir); err == nil {
		s.fail("Skill directory already exists: %s", skillDir)
		return "", errors.Collision("skill directory already exists: %s", skillDir).
			WithSuggestion("Choose a different skill name, or remove the existing directory first.")
	} else if !os.IsNotExist(err) {
		return "", errors.WrapCreation(err, "failed to inspect %s", skillDir)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		s.fail("Failed to create destination directory: %v", err)
		return "", errors.WrapCreation(err, "failed to create destination directory %s", dest)
	}

	staging, err := os.MkdirTemp(dest, "."+identifier+".staging-")
	if err != nil {
		s.fail("Failed to create staging directory: %v", err)
		return "", errors.WrapCreation(err, "failed to create staging directory under %s", dest)
	}
	// No-op after a successful rename; removes the partial tree otherwise.
	defer os.RemoveAll(staging)

	data := templates.Data{
		Name:  identifier,
		Title: skillname.Title(identifier),
	}

	if err := s.writeSkillDoc(staging, data); err != nil {
		return "", err
	}
	if err := s.writeScript(staging, data); err != nil {
		return "", err
	}
	if err := s.writeReference(staging, data); err != nil {
		return "", err
	}
	if err := s.writeAsset(staging); err != nil {
		return "", err
	}

	// Move the finished tree into place. A concurrent invocation that won
	// the race makes the rename fail; report that as a collision.
	if err := os.Rename(staging, skillDir); err != nil {
		if _, statErr := os.Lstat(skillDir); statErr == nil {
			s.fail("Skill directory already exists: %s", skillDir)
			return "", errors.Collision("skill directory already exists: %s", skillDir).
				WithSuggestion("Choose a different skill name, or remove the existing directory first.")
		}
		s.fail("Failed to move skill directory into place: %v", err)
		return "", errors.WrapCreation(err, "failed to move skill directory into place at %s", skillDir)
	}
	s.ok("Created skill directory: %s", skillDir)

	return skillDir, nil
}

// writeSkillDoc renders and writes the primary SKILL.md document.
func (s *Scaffolder) writeSkillDoc(root string, data templates.Data) error {
	content, err := templates.Render(templates.SkillDoc, data)
	if err != nil {
		s.fail("Failed to render %s: %v", SkillFileName, err)
		return err
	}
	if err := os.WriteFile(filepath.Join(root, SkillFileName), content, 0o644); err != nil {
		s.fail("Failed to create %s: %v", SkillFileName, err)
		return errors.WrapCreation(err, "failed to create %s", SkillFileName)
	}
	s.ok("Created %s", SkillFileName)
	return nil
}

// writeScript creates scripts/ and the executable example script.
func (s *Scaffolder) writeScript(root string, data templates.Data) error {
	rel := filepath.Join(ScriptsDirName, ScriptFileName)

	if err := os.Mkdir(filepath.Join(root, ScriptsDirName), 0o755); err != nil {
		s.fail("Failed to create %s/: %v", ScriptsDirName, err)
		return errors.WrapCreation(err, "failed to create %s directory", ScriptsDirName)
	}
	content, err := templates.Render(templates.ExampleScript, data)
	if err != nil {
		s.fail("Failed to render %s: %v", rel, err)
		return err
	}
	path := filepath.Join(root, rel)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		s.fail("Failed to create %s: %v", rel, err)
		return errors.WrapCreation(err, "failed to create %s", rel)
	}
	// Chmod after the write so the umask cannot strip the executable bits.
	if err := os.Chmod(path, 0o755); err != nil {
		s.fail("Failed to mark %s executable: %v", rel, err)
		return errors.WrapCreation(err, "failed to mark %s executable", rel)
	}
	s.ok("Created %s", rel)
	return nil
}

// writeReference creates references/ and the example reference document.
func (s *Scaffolder) writeReference(root string, data templates.Data) error {
	rel := filepath.Join(ReferencesDirName, ReferenceFileName)

	if err := os.Mkdir(filepath.Join(root, ReferencesDirName), 0o755); err != nil {
		s.fail("Failed to create %s/: %v", ReferencesDirName, err)
		return errors.WrapCreation(err, "failed to create %s directory", ReferencesDirName)
	}
	content, err := templates.Render(templates.APIReference, data)
	if err != nil {
		s.fail("Failed to render %s: %v", rel, err)
		return err
	}
	if err := os.WriteFile(filepath.Join(root, rel), content, 0o644); err != nil {
		s.fail("Failed to create %s: %v", rel, err)
		return errors.WrapCreation(err, "failed to create %s", rel)
	}
	s.ok("Created %s", rel)
	return nil
}

// writeAsset creates assets/ and the asset placeholder, written verbatim.
func (s *Scaffolder) writeAsset(root string) error {
	rel := filepath.Join(AssetsDirName, AssetFileName)

	if err := os.Mkdir(filepath.Join(root, AssetsDirName), 0o755); err != nil {
		s.fail("Failed to create %s/: %v", AssetsDirName, err)
		return errors.WrapCreation(err, "failed to create %s directory", AssetsDirName)
	}
	content, err := templates.Raw(templates.ExampleAsset)
	if err != nil {
		s.fail("Failed to load %s: %v", rel, err)
		return err
	}
	if err := os.WriteFile(filepath.Join(root, rel), content, 0o644); err != nil {
		s.fail("Failed to create %s: %v", rel, err)
		return errors.WrapCreation(err, "failed to create %s", rel)
	}
	s.ok("Created %s", rel)
	return nil
}

func (s *Scaffolder) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Scaffolder) ok(format string, args ...interface{}) {
	fmt.Fprintf(s.out(), "%s %s\n", color.GreenString("✅"), fmt.Sprintf(format, args...))
}

func (s *Scaffolder) fail(format string, args ...interface{}) {
	fmt.Fprintf(s.out(), "%s %s\n", color.RedString("❌"), fmt.Sprintf(format, args...))
}
