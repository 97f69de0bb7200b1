package cli

import (
	"fmt"

	"github.com/example/docjson/internal/javadoc"
	"github.com/spf13/cobra"
)

func newFieldCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "field <class> <field>",
		Short:   "Print the comment of a field",
		Example: "  docjson field com.example.Order total",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := opts.newReader(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), r.ResolveFieldComment(javadoc.ClassName(args[0]), args[1]))
			return err
		},
	}
}

func newMethodCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "method <class> <method-key>",
		Short:   "Print the comment of a method",
		Example: "  docjson method com.example.OrderController getOrder",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := opts.newReader(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), r.ResolveMethodComment(javadoc.ClassName(args[0]), args[1]))
			return err
		},
	}
}

func newParamCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "param <class> <method-key> <parameter>",
		Short:   "Print the comment of a method parameter",
		Example: "  docjson param com.example.OrderController getOrder id",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := opts.newReader(cmd.Context())
			comment := r.ResolveMethodParameterComment(javadoc.ClassName(args[0]), args[1], args[2])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), comment)
			return err
		},
	}
}
