package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName    = "iconpack"
	HistoryDBName = "iconpack.db"
	DirPerm       = 0755
	FilePerm      = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for iconpack:
//   - Windows: %APPDATA%\iconpack
//   - Unix:    ~/.config/iconpack
//
// ICONPACK_DATA_DIR overrides both. Falls back to os.TempDir()/iconpack
// if nothing else is available.
func DataDir() string {
	if dir := os.Getenv("ICONPACK_DATA_DIR"); dir != "" {
		return dir
	}
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
