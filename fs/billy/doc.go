// Package billy provides go-billy backed volumes implementing core.Volume.
//
// NewLocal wraps go-billy's osfs rooted at the application storage directory;
// NewMemory wraps memfs and is the volume used by tests.
//
//	vol := billy.NewLocal("/sdcard")
//	if vol.Mounted() {
//	    err := core.AppendFile(vol, "midian/Log/errorlog.txt", data, 0o644)
//	}
//
// # Mount state
//
// A local volume is mounted when its root exists and is a directory. A
// memory volume is always mounted. WithMountCheck replaces either rule, which
// is how platform code reports removable storage state and how tests simulate
// missing storage:
//
//	vol := billy.NewMemory(billy.WithMountCheck(func() bool { return false }))
//
// # Thread Safety
//
// Volumes are safe for concurrent use by multiple goroutines to the extent
// the underlying billy filesystem is. Concurrent writers to the same file
// must coordinate themselves.
package billy
