package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/sahko/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "sahko.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListReports(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	reports := []model.Report{
		{Kind: model.KindYearly, Lines: []string{"Report for the year: 2025", "Total consumption: 1,00 kWh"}},
		{Kind: model.KindMonthly, Lines: []string{"Report for the month: June", "No data available for this period."}},
		{Kind: model.KindRange, Lines: []string{"Report for the period 01.06.2025–02.06.2025"}},
	}
	for i, rep := range reports {
		if _, err := st.InsertReport(ctx, rep, "report.txt", base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("insert report %d: %v", i, err)
		}
	}

	listed, err := st.ListReports(ctx, 0)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(listed))
	}
	if listed[0].Kind != model.KindRange || listed[2].Kind != model.KindYearly {
		t.Fatalf("expected newest first, got %v then %v", listed[0].Kind, listed[2].Kind)
	}
	if listed[2].Title != "Report for the year: 2025" {
		t.Fatalf("unexpected title: %q", listed[2].Title)
	}
	if listed[2].Body != "Report for the year: 2025\nTotal consumption: 1,00 kWh" {
		t.Fatalf("unexpected body: %q", listed[2].Body)
	}
	if !listed[0].WrittenAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("unexpected written_at: %v", listed[0].WrittenAt)
	}
}

func TestListReportsLimit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rep := model.Report{Kind: model.KindYearly, Lines: []string{"Report for the year: 2025"}}
		if _, err := st.InsertReport(ctx, rep, "report.txt", base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("insert report %d: %v", i, err)
		}
	}
	listed, err := st.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(listed))
	}
	if !listed[0].WrittenAt.After(listed[1].WrittenAt) {
		t.Fatalf("expected newest first: %v then %v", listed[0].WrittenAt, listed[1].WrittenAt)
	}
}

func TestListReportsEmpty(t *testing.T) {
	st := openTestStore(t)
	listed, err := st.ListReports(context.Background(), 0)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no reports, got %d", len(listed))
	}
}
