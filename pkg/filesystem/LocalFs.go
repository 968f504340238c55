package filesystem

import (
	"os"
	"path/filepath"
	"sort"

	"emperror.dev/errors"
	"github.com/op/go-logging"
)

type LocalFs struct {
	basepath string
	logger   *logging.Logger
}

func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

func FolderExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

func NewLocalFs(basepath string, logger *logging.Logger) (*LocalFs, error) {
	if !FolderExists(basepath) {
		return nil, errors.Errorf("path %v does not exists", basepath)
	}
	return &LocalFs{basepath: basepath, logger: logger}, nil
}

func (fs *LocalFs) Protocol() string {
	return "file://"
}

func (fs *LocalFs) String() string {
	return fs.basepath
}

func (fs *LocalFs) FileExists(folder, name string) (bool, error) {
	path := filepath.Join(folder, name)
	return FileExists(filepath.Join(fs.basepath, path)), nil
}

func (fs *LocalFs) FolderExists(folder string) (bool, error) {
	return FolderExists(filepath.Join(fs.basepath, folder)), nil
}

// FileList returns the names of the regular files in folder, sorted.
func (fs *LocalFs) FileList(folder string) ([]string, error) {
	path := filepath.Join(fs.basepath, folder)
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{err: err}
		}
		return nil, errors.Wrapf(err, "cannot read folder %v", folder)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (fs *LocalFs) FileGet(folder, name string, opts FileGetOptions) ([]byte, error) {
	path := filepath.Join(folder, name)
	if fs.logger != nil {
		fs.logger.Debugf("reading %v%v", fs.Protocol(), filepath.Join(fs.basepath, path))
	}
	data, err := os.ReadFile(filepath.Join(fs.basepath, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{err: err}
		}
		return nil, errors.Wrapf(err, "cannot read file %v", path)
	}
	return data, nil
}
