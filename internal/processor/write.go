package processor

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to a temp file next to dest and renames it into
// place, so an interrupted run never leaves a half-written document behind.
// When dest is a symlink the file it points at is replaced and the link is
// kept.
func writeFileAtomic(dest string, data []byte, perm fs.FileMode) error {
	dest, err := resolveTarget(dest)
	if err != nil {
		return err
	}

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".embedfix-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// resolveTarget follows symlinks in dest. A dest that does not exist yet is
// returned unchanged.
func resolveTarget(dest string) (string, error) {
	resolved, err := filepath.EvalSymlinks(dest)
	if err == nil {
		return resolved, nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	// a dangling link is written through to its target
	if target, lerr := os.Readlink(dest); lerr == nil {
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(dest), target)
		}
		return target, nil
	}
	return dest, nil
}
