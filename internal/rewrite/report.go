package rewrite

// SiteCounts breaks one old ID's hits down by where they occurred.
type SiteCounts struct {
	Effects    int `json:"effects"`
	Conditions int `json:"conditions"`
	Units      int `json:"units"`
}

// Report summarizes one rewrite pass. With Options.DryRun the counts
// describe what a real pass would have rewritten, which is how callers
// pre-count before committing.
type Report struct {
	Effects    int                `json:"effects"`
	Conditions int                `json:"conditions"`
	Units      int                `json:"units"`
	ByOldID    map[int]SiteCounts `json:"by_old_id"`
}

func newReport() *Report {
	return &Report{ByOldID: make(map[int]SiteCounts)}
}

// Total is the number of slots rewritten (or matched, under dry-run).
func (r *Report) Total() int {
	return r.Effects + r.Conditions + r.Units
}

func (r *Report) hitEffect(oldID int) {
	r.Effects++
	c := r.ByOldID[oldID]
	c.Effects++
	r.ByOldID[oldID] = c
}

func (r *Report) hitCondition(oldID int) {
	r.Conditions++
	c := r.ByOldID[oldID]
	c.Conditions++
	r.ByOldID[oldID] = c
}

func (r *Report) hitUnit(oldID int) {
	r.Units++
	c := r.ByOldID[oldID]
	c.Units++
	r.ByOldID[oldID] = c
}
