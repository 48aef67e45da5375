// Package exec runs local commands behind a small, fakeable interface.
//
// The Command type wraps os/exec and captures stdout, stderr and the
// interleaved combined output of each run. Settings come in two layers:
// global ones passed to New, and local ones set with the With* methods that
// apply to the next Run only.
//
//	cmd := exec.New(exec.WithTimeout(2 * time.Second))
//	result, err := cmd.WithContext(ctx).Run("uname", "-r")
//	if err != nil {
//		return err
//	}
//	fmt.Println(strings.TrimSpace(result.Stdout))
//
// For a tool that is invoked repeatedly, NewWrapper prepends its name:
//
//	getprop := exec.NewWrapper(exec.New(), "getprop")
//	result, err := getprop.Run("ro.product.model")
//
// Code that only needs to run commands should accept an Executor so tests
// can substitute a fake.
package exec
