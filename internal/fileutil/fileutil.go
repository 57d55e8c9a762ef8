package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// BackupSuffix is appended to a file's path to name its backup copy.
const BackupSuffix = ".bak"

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// BackupFile copies path to path+BackupSuffix, replacing any earlier backup.
// It reports false without error when path does not exist yet.
func BackupFile(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("backup %s: is a directory", path)
	}
	target := path + BackupSuffix
	if err := CopyFileMode(path, target, info.Mode().Perm()); err != nil {
		return "", false, fmt.Errorf("backup %s: %w", path, err)
	}
	return target, true, nil
}
