package merge

import (
	"context"

	"github.com/sheetsync/sheets-merge/table"
)

// Enrich left joins the target sheet with the manager sheet on provenance column = manager key
// column and rewrites the whole target sheet with the result. Returns false without changing
// anything if either sheet is empty or is missing its key column.
func (j *Job) Enrich(ctx context.Context) (bool, error) {
	provenance := j.config.ProvenanceColumn
	key := j.config.ManagerKey

	values, err := j.target.Values(ctx)
	if err != nil {
		return false, err
	}

	target := table.MakeTable(values)
	if target.Empty() {
		warnf("⚠️  target sheet is empty, skipping manager sync")
		return false, nil
	}

	values, err = j.manager.Values(ctx)
	if err != nil {
		return false, err
	}

	manager := table.MakeTable(values)
	if manager.Empty() {
		warnf("⚠️  manager sheet is empty, skipping manager sync")
		return false, nil
	}

	if manager.Column(key) < 0 {
		warnf("⚠️  manager sheet has no '%v' column, skipping manager sync", key)
		return false, nil
	}

	if target.Column(provenance) < 0 {
		warnf("⚠️  target sheet has no '%v' column, skipping manager sync", provenance)
		return false, nil
	}

	if shared := overlap(target, manager, key); len(shared) > 0 {
		warnf("⚠️  manager columns %q already exist in the target sheet, matched rows will be overwritten", shared)
	}

	joined, err := table.LeftJoin(target, manager, provenance, key)
	if err != nil {
		return false, err
	}

	if err := j.target.Clear(ctx); err != nil {
		return false, err
	}

	if err := j.target.Update(ctx, joined.Rows()); err != nil {
		return false, err
	}

	infof("🔄 synchronised manager sheet into target sheet (%v rows)", joined.Len())

	return true, nil
}

// overlap returns the manager columns (other than the key) that the target sheet already has.
func overlap(target, manager *table.Table, key string) []string {
	shared := []string{}
	for _, h := range manager.Header {
		if h != key && target.Column(h) >= 0 {
			shared = append(shared, h)
		}
	}

	return shared
}
