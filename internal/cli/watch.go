package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/audit"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/logger"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/watch"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
)

func newWatchCommand() *cobra.Command {
	var (
		mappingFile string
		oldID       int
		newID       int
		kindName    string
		debounce    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Re-audit scenario exports as they change on disk",
		Long: `Watch a directory of scenario exports and re-run the audit for each
file as the editor saves it, so a collision with a protected slot
shows up while the mod migration is still in progress. Defaults to
the configured scenarios directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := resolveMapping(mappingFile, oldID, newID)
			if err != nil {
				return err
			}
			target, err := parseTargetKind(kindName)
			if err != nil {
				return err
			}

			dir := cfg.ScenariosDir
			if len(args) == 1 {
				dir = args[0]
			}

			handler := func(path string) {
				s, err := scenario.Load(path)
				if err != nil {
					logger.WithError(log, err).Warn("skipping unreadable scenario", "path", path)
					return
				}
				rep := audit.Scan(s, mapping, target)
				if rep.Matched() == 0 {
					log.Info("no matches", "path", path)
					return
				}
				log.Info("audit",
					"path", path,
					"rewritable", len(rep.Rewritable),
					"protected", len(rep.Protected),
					"warnings", len(rep.Warnings))
				if err := renderAudit(cmd, rep); err != nil {
					log.Warn("failed to render audit", "error", err)
				}
			}

			w, err := watch.New(dir, debounce, log, handler)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "watch stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "YAML mapping file of old: new ID pairs")
	cmd.Flags().IntVar(&oldID, "old", -1, "Single old ID to look for")
	cmd.Flags().IntVar(&newID, "new", -1, "Replacement for --old")
	cmd.Flags().StringVar(&kindName, "kind", "unit", "Rewrite kind being audited: unit or tech")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-auditing a changed file")
	return cmd
}
