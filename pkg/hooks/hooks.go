// Package hooks discovers and runs the optional executables a template
// repository ships alongside the template tree. Two hook points exist: one
// immediately before the tree walk and one immediately after. A missing hook
// is a successful no-op; a hook that exits nonzero aborts generation.
package hooks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/goliatone/go-scaffold/internal/logging"
)

// Recognized hook names. Hooks are looked up by exact file name in the
// current working directory, which the generator sets to the repository root
// for the duration of each hook.
const (
	PreGenProject  = "pre_gen_project"
	PostGenProject = "post_gen_project"
)

// ProjectDirEnv names the environment variable carrying the absolute project
// directory into hook processes, in addition to argv[1].
const ProjectDirEnv = "SCAFFOLD_PROJECT_DIR"

// ExecutionError reports a hook that started but terminated unsuccessfully.
type ExecutionError struct {
	Hook     string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("hooks: %s exited with status %d", e.Hook, e.ExitCode)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Run executes the named hook from the current working directory, passing
// projectDir as the first argument and in the environment. An absent hook
// file is a no-op. The hook inherits stdio so interactive or chatty hooks
// behave as they would when run by hand.
func Run(hookName, projectDir string) error {
	if hookName != PreGenProject && hookName != PostGenProject {
		return fmt.Errorf("hooks: unrecognized hook %q", hookName)
	}

	log := logging.GetLogger("hooks")

	info, err := os.Stat(hookName)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("hook", hookName).Msg("hook not present, skipping")
			return nil
		}
		return fmt.Errorf("hooks: stat %s: %w", hookName, err)
	}
	if info.IsDir() {
		log.Debug().Str("hook", hookName).Msg("hook path is a directory, skipping")
		return nil
	}

	log.Debug().Str("hook", hookName).Str("project_dir", projectDir).Msg("running hook")

	cmd := exec.Command("./"+hookName, projectDir)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), ProjectDirEnv+"="+projectDir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecutionError{Hook: hookName, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ExecutionError{Hook: hookName, ExitCode: -1, Err: err}
	}
	return nil
}
