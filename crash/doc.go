// Package crash routes uncaught failures to a process-wide handler.
//
// A Registry holds the installed Handler. Goroutines started with
// Registry.Go, or guarded with a deferred Registry.Guard, turn a panic into a
// *Panic and dispatch it to that handler.
//
// Install replaces the registry's handler with a Reporter. The Reporter keeps
// the handler it replaced and forwards to it any failure it cannot report
// because no UI surface is visible. Reportable failures are formatted as a
// crash report and handed to a UI looper for display, so the crashing
// goroutine never blocks on the UI.
//
//	reg := crash.NewRegistry(crash.WithDefault(crash.NewExitHandler()))
//	crash.Install(reg,
//		crash.WithLocator(stack),
//		crash.WithLooper(looper),
//		crash.WithDevice(device.Probe(ctx, exec.New())),
//	)
//	reg.Go("sync", syncAccounts)
package crash
