package core

import (
	"io/fs"
	"os"
)

// AppendFile appends data to the named file, creating it with perm if it does
// not exist. Existing content is never truncated. The file is closed on every
// path; a close error is returned when the write itself succeeded.
func AppendFile(fsys WriteFS, name string, data []byte, perm fs.FileMode) (err error) {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}
