package filesystem

import (
	"fmt"

	"emperror.dev/errors"
)

type NotFoundError struct {
	err error
}

func (nf *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %v", nf.err)
}

func (nf *NotFoundError) Unwrap() error {
	return nf.err
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// FileGetOptions represents options specified by user for FileGet call
type FileGetOptions struct {
	VersionID string
}

// FileSystem is a read-only source of data files such as locale tables.
type FileSystem interface {
	FolderExists(folder string) (bool, error)
	FileExists(folder, name string) (bool, error)
	FileList(folder string) ([]string, error)
	FileGet(folder, name string, opts FileGetOptions) ([]byte, error)
	String() string
	Protocol() string
}
