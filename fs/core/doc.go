// Package core defines the storage contracts the crash log is written through.
//
// The interfaces are deliberately small: the log only needs to create its
// directory, append to a file, read it back and remove it. Providers live in
// sibling packages (see fs/billy) so that application code and tests can swap
// a disk backed volume for an in-memory one.
//
// # Interface Hierarchy
//
//   - ReadFS: Stat, ReadFile, Exists
//   - WriteFS: OpenFile, MkdirAll
//   - ManageFS: Remove
//   - FS: all of the above plus Type
//   - Volume: an FS rooted at application storage that can report whether
//     the storage backing it is currently mounted
//
// # Usage Example
//
//	func Save(vol core.Volume, name string, data []byte) error {
//	    if !vol.Mounted() {
//	        return nil
//	    }
//	    if err := vol.MkdirAll(path.Dir(name), 0o755); err != nil {
//	        return err
//	    }
//	    return core.AppendFile(vol, name, data, 0o644)
//	}
package core
