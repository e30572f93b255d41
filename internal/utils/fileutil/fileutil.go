package fileutil

import (
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to a temporary file in the target directory and
// renames it over filename, so readers never observe a partial file. Missing
// parent directories are created.
// AtomicWriteFile 将数据写入目标目录中的临时文件并重命名为目标文件，必要时创建父目录。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, ".monolog-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name()) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile.Name(), filename)
}
