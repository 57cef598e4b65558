// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// ReadOnly returns a view of the active backend that rejects every write.
// Scripts are loaded through it.
func ReadOnly() afero.Afero {
	return afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}

// Remove deletes a file or a whole directory tree. Missing paths are not an error.
func Remove(path string) error {
	exists, err := backend.Exists(path)
	if err != nil || !exists {
		return err
	}

	isDir, err := backend.IsDir(path)
	if err != nil {
		return err
	}

	if isDir {
		return backend.RemoveAll(path)
	}
	return backend.Remove(path)
}
