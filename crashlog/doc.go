// Package crashlog appends classified failures to a local log file.
//
// The log lives at <storage root>/midian/Log/errorlog.txt by default. Each
// record is a dashed timestamp header, the stack trace of the failure and a
// blank line:
//
//	--------------------Oct 19, 2026 3:04:05 PM---------------------
//	[IO] open /data/cache.db: file does not exist
//	github.com/midian/base/store.(*Cache).Load
//		/src/store/cache.go:42
//	...
//
// Logging is best effort. A disabled logger or an unmounted volume makes Log a
// no-op, and every failure while writing is reported to the diagnostic
// slog.Logger and then dropped.
package crashlog
