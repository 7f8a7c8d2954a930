package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/config"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/journal"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/rewrite"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

func TestResolveMapping(t *testing.T) {
	cfg = &config.Config{}

	m, err := resolveMapping("", 74, 569)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m[74] != 569 {
		t.Errorf("unexpected mapping: %v", m)
	}

	if _, err := resolveMapping("", -1, -1); err == nil {
		t.Error("expected error when nothing is given")
	}
	if _, err := resolveMapping("", 74, -1); err == nil {
		t.Error("--old without --new should fail")
	}
	if _, err := resolveMapping("m.yaml", 74, 569); err == nil {
		t.Error("--mapping plus --old should fail")
	}

	// The configured mapping file is the fallback.
	path := filepath.Join(t.TempDir(), "ids.yaml")
	if err := os.WriteFile(path, []byte("74: 569\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = &config.Config{MappingFile: path}
	m, err = resolveMapping("", -1, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m[74] != 569 {
		t.Errorf("unexpected mapping: %v", m)
	}
}

func TestParseTargetKind(t *testing.T) {
	if k, err := parseTargetKind("unit"); err != nil || k != trigger.KindUnitType {
		t.Errorf("unit = %v, %v", k, err)
	}
	if k, err := parseTargetKind("tech"); err != nil || k != trigger.KindTech {
		t.Errorf("tech = %v, %v", k, err)
	}
	if _, err := parseTargetKind("instance"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func writeScenario(t *testing.T, dir string) string {
	t.Helper()
	e := trigger.NewEffect(trigger.EffectKillObject)
	e.ObjectListUnitID = 74
	e.ObjectType = 4

	s := scenario.New("E2e")
	s.Triggers = []trigger.Trigger{{Name: "kill", Enabled: true, Effects: []trigger.Effect{e}}}

	path := filepath.Join(dir, "e2e_scenario.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestReplaceUnitCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeScenario(t, dir)
	outPath := filepath.Join(dir, "out.json")
	journalPath := filepath.Join(dir, "journal.db")

	output := runCommand(t,
		"replace-unit", in,
		"--old", "74", "--new", "569",
		"--out", outPath,
		"--journal-path", journalPath,
	)
	if !strings.Contains(output, "saved") {
		t.Errorf("expected save confirmation, got:\n%s", output)
	}

	rewritten, err := scenario.Load(outPath)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	e := rewritten.Triggers[0].Effects[0]
	if e.ObjectListUnitID != 569 {
		t.Errorf("object_list_unit_id = %d, want 569", e.ObjectListUnitID)
	}
	if e.ObjectType != 4 {
		t.Errorf("object_type changed to %d", e.ObjectType)
	}

	// Input untouched.
	original, err := scenario.Load(in)
	if err != nil {
		t.Fatal(err)
	}
	if original.Triggers[0].Effects[0].ObjectListUnitID != 74 {
		t.Error("input file was modified without --in-place")
	}

	j, err := journal.Open(journalPath)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	runs, err := j.List(t.Context(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Command != "replace-unit" || runs[0].EffectHits != 1 {
		t.Errorf("unexpected journal contents: %+v", runs)
	}
}

func TestReplaceUnitDryRun(t *testing.T) {
	dir := t.TempDir()
	in := writeScenario(t, dir)

	output := runCommand(t,
		"replace-unit", in,
		"--old", "74", "--new", "569",
		"--dry-run",
		"--journal-path", filepath.Join(dir, "journal.db"),
	)
	if !strings.Contains(output, "[before]") {
		t.Errorf("expected pre-count line, got:\n%s", output)
	}

	s, err := scenario.Load(in)
	if err != nil {
		t.Fatal(err)
	}
	if s.Triggers[0].Effects[0].ObjectListUnitID != 74 {
		t.Error("dry run modified the input")
	}
}

func TestReplaceUnitWarnsOnZeroMatches(t *testing.T) {
	dir := t.TempDir()
	in := writeScenario(t, dir)

	output := runCommand(t,
		"replace-unit", in,
		"--old", "9999", "--new", "1",
		"--dry-run",
		"--journal-path", filepath.Join(dir, "journal.db"),
	)
	if !strings.Contains(output, "no matches found") {
		t.Errorf("expected zero-match warning, got:\n%s", output)
	}
}

func TestReplaceUnitRequiresOut(t *testing.T) {
	dir := t.TempDir()
	in := writeScenario(t, dir)

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"replace-unit", in, "--old", "74", "--new", "569"})
	if err := root.Execute(); err == nil {
		t.Error("expected error without --out")
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeScenario(t, dir)

	output := runCommand(t, "validate", in)
	if !strings.Contains(output, "valid") {
		t.Errorf("expected validity confirmation, got:\n%s", output)
	}

	// A bad category value fails validation.
	s, err := scenario.Load(in)
	if err != nil {
		t.Fatal(err)
	}
	s.Triggers[0].Effects[0].ObjectType = 9
	bad := filepath.Join(dir, "bad_scenario.json")
	if err := s.Save(bad); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"validate", bad})
	if err := root.Execute(); err == nil {
		t.Error("expected validation failure for category value 9")
	}
}

func TestCatalogCommandMarkdown(t *testing.T) {
	output := runCommand(t, "catalog", "-o", "markdown")
	if !strings.Contains(output, "Replace Object") {
		t.Errorf("markdown catalog missing Replace Object:\n%s", output)
	}
}

func TestSummarize(t *testing.T) {
	r := &rewrite.Report{}
	if got := summarize(r); got != "0 matches" {
		t.Errorf("empty report = %q", got)
	}

	r = &rewrite.Report{Effects: 3, Conditions: 1}
	got := summarize(r)
	if !strings.Contains(got, "3 effect slot(s)") || !strings.Contains(got, "1 condition slot(s)") {
		t.Errorf("unexpected summary %q", got)
	}

	r = &rewrite.Report{Units: 5}
	if got := summarize(r); !strings.Contains(got, "5 map unit(s)") {
		t.Errorf("unexpected summary %q", got)
	}
}
