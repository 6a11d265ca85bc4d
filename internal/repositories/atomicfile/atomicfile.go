/*
Package atomicfile replaces files in a single rename so readers never see a
half-written file.
*/
package atomicfile

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// DefaultPerm is used for files that do not exist yet.
const DefaultPerm fs.FileMode = 0o644

// Write replaces path with data. The data goes to a temporary file in the
// same directory, which is synced and then renamed over path. Parent
// directories are created as needed. If path is a symlink, the link target is
// replaced and the link is kept. An existing file keeps its permission bits.
// On failure the previous content of path is untouched.
func Write(path string, data []byte) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	perm := DefaultPerm
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "stat")
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create parent directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".akash-tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write temporary file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "sync temporary file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary file")
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return errors.Wrap(err, "set permissions")
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return errors.Wrap(err, "replace file")
	}
	committed = true
	return nil
}

// resolveTarget follows path if it is a symlink. Dangling links resolve to
// their literal target so the file gets created there.
func resolveTarget(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", errors.Wrap(err, "lstat")
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved, nil
	}
	link, err := os.Readlink(path)
	if err != nil {
		return "", errors.Wrap(err, "read symlink")
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link, nil
}
