package main

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/midian/base/errors"
	"github.com/spf13/cobra"
)

// renderSubcommand prints the message a user would see for an error kind.
func renderSubcommand(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "render [KIND [CODE]]",
		Short: "Print the user facing message of an error kind",
		Long: "Print the user facing message of an error kind, such as http_status or network.\n" +
			"CODE is used by the http_status and http_error kinds.",
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.classifier()
			if err != nil {
				return err
			}
			if all || len(args) == 0 {
				for _, kind := range errors.Kinds() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", kind, c.Message(sample(kind, 500)))
				}
				return nil
			}

			kind, ok := errors.ParseKind(strings.ToUpper(strings.ReplaceAll(args[0], "-", "_")))
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			code := 0
			if len(args) == 2 {
				if code, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid code %q: %w", args[1], err)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Message(sample(kind, code)))
			return err
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "render every kind")
	return cmd
}

// sample builds an error of kind.
func sample(kind errors.Kind, code int) error {
	cause := stderrors.New("sample failure")
	switch kind {
	case errors.KindHTTPStatus:
		return errors.HTTPStatus(code)
	case errors.KindHTTPError:
		return errors.HTTPWithCode(code, cause)
	case errors.KindNetwork:
		return errors.Network(errors.ErrHostUnreachable)
	case errors.KindSocket:
		return errors.Socket(cause)
	case errors.KindParse:
		return errors.Parse(cause)
	case errors.KindIO:
		return errors.Wrap(cause, errors.KindIO, "sample failure")
	case errors.KindServer:
		return errors.Server(cause)
	default:
		return errors.Runtime(cause)
	}
}
