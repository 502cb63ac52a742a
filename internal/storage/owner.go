package storage

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OwnerSetter applies an owning user to a file. Implementations must fail
// when the ownership change did not fully happen.
type OwnerSetter interface {
	SetOwner(ctx context.Context, owner, path string) error
}

// Ensure ChownOwnerSetter implements OwnerSetter
var _ OwnerSetter = (*ChownOwnerSetter)(nil)

// ChownOwnerSetter changes file ownership by invoking an external helper
// process, chown(1) by default. Running the helper out of process keeps the
// privilege boundary outside the server: the binary can carry setuid bits or
// be replaced by a site-specific wrapper.
type ChownOwnerSetter struct {
	Helper string // helper binary, "chown" when empty
}

// SetOwner runs the helper with the owner and path as arguments. A launch
// failure or a non-zero exit status is reported as ErrOwner.
func (s *ChownOwnerSetter) SetOwner(ctx context.Context, owner, path string) error {
	helper := s.Helper
	if helper == "" {
		helper = "chown"
	}

	cmd := exec.CommandContext(ctx, helper, owner, path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := string(bytes.TrimSpace(out))
		if msg != "" {
			return fmt.Errorf("%w: %s %s %s: %v: %s", ErrOwner, helper, owner, path, err, msg)
		}
		return fmt.Errorf("%w: %s %s %s: %v", ErrOwner, helper, owner, path, err)
	}
	return nil
}
