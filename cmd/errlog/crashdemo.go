package main

import (
	"fmt"
	"io"

	"github.com/midian/base/crash"
	"github.com/midian/base/device"
	"github.com/midian/base/exec"
	"github.com/midian/base/ui"
	"github.com/spf13/cobra"
)

// console is a Surface that prints toasts.
type console struct {
	out io.Writer
}

func (c *console) ShowToast(msg string) {
	fmt.Fprintf(c.out, "[toast]\n%s", msg)
}

// crashDemoSubcommand panics on a guarded goroutine to exercise the handler.
func crashDemoSubcommand(a *app) *cobra.Command {
	var headless bool
	cmd := &cobra.Command{
		Use:   "crash-demo [MESSAGE]",
		Short: "Panic and let the crash handler report it",
		Long: "Panic and let the crash handler report it. With a visible surface the report\n" +
			"is shown and recorded in the crash log. With --headless nothing is visible, so\n" +
			"the failure goes to the default handler, which exits with status 2.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.classifier()
			if err != nil {
				return err
			}
			message := "crash demo"
			if len(args) == 1 {
				message = args[0]
			}

			reg := crash.NewRegistry(crash.WithDefault(&crash.ExitHandler{
				Out:  cmd.ErrOrStderr(),
				Exit: exitFunc,
			}))
			looper := ui.NewLooper(c.Config().QueueSize, ui.WithLogger(a.logger))
			var stack ui.Stack
			if !headless {
				stack.Push(&console{out: cmd.OutOrStdout()})
			}
			info := device.Probe(cmd.Context(), exec.New())
			c.Install(reg, &stack, looper, info)

			func() {
				defer reg.Guard(reg.NewThread("main"))
				panic(message)
			}()

			looper.Close()
			a.logger.Info("crash handled", "log", c.CrashLog().Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", false, "run without a visible surface")
	return cmd
}
