package tools

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-shellmenu/internal/fileutil"
	"github.com/alnah/go-shellmenu/internal/process"
)

// RemoveBackgroundName is the executable name of the background remover.
const RemoveBackgroundName = "remove_background"

// imageMIMETypes are the content types RemoveBackground accepts.
var imageMIMETypes = []string{"image/png", "image/jpeg", "image/webp", "image/bmp", "image/tiff"}

// RemoveBackground writes "<stem>-NO_BACKGROUND.png".
type RemoveBackground struct {
	Remover BackgroundRemover
	Logger  *log.Logger
}

// Name implements Tool.
func (t *RemoveBackground) Name() string { return RemoveBackgroundName }

// Run implements Tool.
func (t *RemoveBackground) Run(ctx context.Context, input string) (string, error) {
	if err := requireFile(input); err != nil {
		return "", err
	}
	if _, err := requireMIME(input, imageMIMETypes...); err != nil {
		return "", err
	}

	out, err := fileutil.Sibling(input, "-NO_BACKGROUND.png", false)
	if err != nil {
		return "", err
	}
	if err := t.Remover.Remove(ctx, input, out); err != nil {
		return "", err
	}
	if !fileutil.FileExists(out) {
		return "", fmt.Errorf("%w: %s was not created", ErrBackgroundRemoval, out)
	}

	if t.Logger != nil {
		t.Logger.Info("background removed", "output", out)
	}
	return out, nil
}

// maxStderr caps the remover output kept for error messages.
const maxStderr = 2048

// CommandRemover runs an external background-removal command as
// "<command...> <in> <out>", rembg's "i" sub-command by default.
type CommandRemover struct {
	Command []string
	Dir     string
	Logger  *log.Logger
}

// Remove implements BackgroundRemover.
func (r *CommandRemover) Remove(ctx context.Context, in, out string) error {
	if len(r.Command) == 0 {
		return fmt.Errorf("%w: no command configured", ErrBackgroundRemoval)
	}

	var stderr bytes.Buffer
	args := append(append([]string{}, r.Command[1:]...), in, out)
	if r.Logger != nil {
		r.Logger.Debug("running background remover", "command", r.Command[0], "args", args)
	}

	code, err := process.Run(ctx, process.Spec{
		Name:   r.Command[0],
		Args:   args,
		Dir:    r.Dir,
		Stderr: &stderr,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackgroundRemoval, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: %s exited with code %d: %s",
			ErrBackgroundRemoval, r.Command[0], code, tail(stderr.String(), maxStderr))
	}
	return nil
}

// tail returns the last n bytes of s, trimmed.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		s = "..." + s[len(s)-n:]
	}
	return s
}

// Compile-time interface checks.
var (
	_ Tool              = (*RemoveBackground)(nil)
	_ BackgroundRemover = (*CommandRemover)(nil)
)
