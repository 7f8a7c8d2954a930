package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/audit"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/rewrite"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// auditWorkers caps concurrent file scans in directory mode.
const auditWorkers = 4

func newAuditCommand() *cobra.Command {
	var (
		mappingFile string
		oldID       int
		newID       int
		kindName    string
	)

	cmd := &cobra.Command{
		Use:   "audit <scenario.json | directory>",
		Short: "Scan scenarios for slots a mapping would touch",
		Long: `Scan a scenario export (or a directory of them) for every slot whose
value appears in the mapping, partitioned into the matches a rewrite
would change and the matches it protects (instance references and
category filters).`,
		Example: `  # Single ID, single file
  scenaudit audit myscenario.json --old 74 --new 569

  # Mapping file over a whole directory
  scenaudit audit scenarios/ --mapping unit_ids.yaml

  # Audit a tech mapping instead
  scenaudit audit myscenario.json --mapping tech_ids.yaml --kind tech`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := resolveMapping(mappingFile, oldID, newID)
			if err != nil {
				return err
			}
			target, err := parseTargetKind(kindName)
			if err != nil {
				return err
			}

			rep, err := scanPath(args[0], mapping, target)
			if err != nil {
				return err
			}
			return renderAudit(cmd, rep)
		},
	}

	cmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "YAML mapping file of old: new ID pairs")
	cmd.Flags().IntVar(&oldID, "old", -1, "Single old ID to look for")
	cmd.Flags().IntVar(&newID, "new", -1, "Replacement for --old")
	cmd.Flags().StringVar(&kindName, "kind", "unit", "Rewrite kind being audited: unit or tech")
	return cmd
}

func scanPath(path string, mapping rewrite.Mapping, target trigger.Kind) (*audit.Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot audit %s: %w", path, err)
	}
	if !info.IsDir() {
		s, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		return audit.Scan(s, mapping, target), nil
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".json" {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}
	sort.Strings(paths)

	merged := &audit.Report{Target: target.String()}
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(auditWorkers)
	for _, p := range paths {
		g.Go(func() error {
			s, err := scenario.Load(p)
			if err != nil {
				log.Warn("skipping unreadable scenario", "path", p, "error", err)
				return nil
			}
			rep := audit.Scan(s, mapping, target)
			mu.Lock()
			merged.Merge(rep)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}

func renderAudit(cmd *cobra.Command, rep *audit.Report) error {
	switch cfg.Output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "markdown":
		fmt.Fprint(cmd.OutOrStdout(), audit.RenderMarkdown(rep))
		return nil
	default:
		audit.RenderTable(cmd.OutOrStdout(), rep)
		return nil
	}
}

// resolveMapping builds the mapping from either a file or the
// --old/--new pair, falling back to the configured mapping file.
func resolveMapping(mappingFile string, oldID, newID int) (rewrite.Mapping, error) {
	if mappingFile == "" && oldID < 0 {
		mappingFile = cfg.MappingFile
	}
	if mappingFile != "" {
		if oldID >= 0 {
			return nil, fmt.Errorf("--mapping and --old/--new are mutually exclusive")
		}
		return rewrite.LoadMapping(mappingFile)
	}
	if oldID < 0 {
		return nil, fmt.Errorf("either --mapping or --old and --new are required")
	}
	if newID < 0 {
		return nil, fmt.Errorf("--old requires --new")
	}
	return rewrite.Single(oldID, newID), nil
}

func parseTargetKind(name string) (trigger.Kind, error) {
	switch name {
	case "unit":
		return trigger.KindUnitType, nil
	case "tech":
		return trigger.KindTech, nil
	default:
		return trigger.KindOther, fmt.Errorf("unknown kind %q (want unit or tech)", name)
	}
}
