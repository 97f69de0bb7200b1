package cli

import (
	"github.com/example/docjson/internal/logging"
	"github.com/example/docjson/internal/validator"
	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Check that every documentation file in a directory can be decoded",
		Long: `Check decodes every <class>.json file directly inside the documentation
directory. The directory defaults to --dir, then $DOCJSON_DIR, then the
working directory. Only the structure is checked, not the comments.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.newReader(cmd.Context()).Dir()
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				dir = "."
			}

			ctx := slogctx.Prepend(cmd.Context(), "command", "check")
			logger := logging.FromContext(ctx)
			logger.InfoContext(ctx, "checking documentation directory", "dir", dir)

			report, err := validator.ValidateDir(dir, cmd.OutOrStdout())
			if err != nil {
				for _, res := range report.Failed() {
					logger.ErrorContext(ctx, "malformed documentation file", "file", res.File, "error", res.Err)
				}
				return err
			}
			return nil
		},
	}
}
