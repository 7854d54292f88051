package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"hirewise-backend/internal/domain"
	"hirewise-backend/internal/usecase"
	"hirewise-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type staticReader struct {
	snap domain.Snapshot
}

func (r staticReader) Snapshot(context.Context) domain.Snapshot {
	return r.snap
}

func boardSnapshot() domain.Snapshot {
	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	salary := 100000
	return domain.Snapshot{
		Jobs: []domain.Job{
			{ID: "j-1", Title: "Backend Engineer", Department: "Engineering", Skills: []string{"Go", "SQL", "Docker"}, Status: domain.JobStatusActive, Salary: &salary, CreatedAt: at},
			{ID: "j-2", Title: "Data Engineer", Department: "Engineering", Skills: []string{"SQL", "Python"}, Status: domain.JobStatusActive, CreatedAt: at},
			{ID: "j-3", Title: "Designer, Senior", Skills: []string{"Figma", "Go", "Sketch", "Axure"}, Status: domain.JobStatusClosed, CreatedAt: at},
		},
		Applications: []domain.Application{
			{ID: "a-1", JobID: "j-1", CandidateID: "c-1", MatchScore: 80, Status: domain.ApplicationStatusApplied},
			{ID: "a-2", JobID: "j-1", CandidateID: "c-2", MatchScore: 91, Status: domain.ApplicationStatusHired},
			{ID: "a-3", JobID: "j-2", CandidateID: "c-1", MatchScore: 60, Status: domain.ApplicationStatusApplied},
		},
		Candidates: []domain.Candidate{{ID: "c-1"}, {ID: "c-2"}},
		Recruiters: []domain.User{},
	}
}

func TestAnalyticsStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates the board figures", func(t *testing.T) {
		uc := usecase.NewAnalyticsUsecase(staticReader{snap: boardSnapshot()})
		stats := uc.Stats(ctx)

		assert.Equal(t, 3, stats.TotalJobs)
		assert.Equal(t, 3, stats.TotalApplications)
		assert.Equal(t, 2, stats.TotalCandidates)
		// (80+91+60)/3 = 77.0
		assert.Equal(t, 77, stats.AvgMatchScore)

		assert.Equal(t, []domain.SkillCount{
			{Skill: "Go", Count: 2},
			{Skill: "SQL", Count: 2},
			{Skill: "Axure", Count: 1},
			{Skill: "Docker", Count: 1},
			{Skill: "Figma", Count: 1},
		}, stats.TopSkills)

		assert.Equal(t, map[string]int{"Engineering": 2, "Other": 1}, stats.JobsByDepartment)
		assert.Equal(t, 2, stats.JobsByStatus[domain.JobStatusActive])
		assert.Equal(t, 1, stats.JobsByStatus[domain.JobStatusClosed])
		assert.Equal(t, 2, stats.ApplicationsByStatus[domain.ApplicationStatusApplied])
		assert.Equal(t, 1, stats.ApplicationsByStatus[domain.ApplicationStatusHired])
	})

	t.Run("average rounds half up", func(t *testing.T) {
		snap := domain.EmptySnapshot()
		snap.Applications = []domain.Application{{MatchScore: 70}, {MatchScore: 71}}
		uc := usecase.NewAnalyticsUsecase(staticReader{snap: snap})

		assert.Equal(t, 71, uc.Stats(ctx).AvgMatchScore)
	})

	t.Run("empty state is all zeros", func(t *testing.T) {
		uc := usecase.NewAnalyticsUsecase(staticReader{snap: domain.EmptySnapshot()})
		stats := uc.Stats(ctx)

		assert.Zero(t, stats.AvgMatchScore)
		assert.Empty(t, stats.TopSkills)
		assert.NotNil(t, stats.JobsByDepartment)
	})
}

func TestAnalyticsExportReport(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAnalyticsUsecase(staticReader{snap: boardSnapshot()})

	t.Run("xlsx holds one row per job and a summary", func(t *testing.T) {
		data, filename, err := uc.ExportReport(ctx, "xlsx")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "hirewise_report_"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Jobs")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "TITLE", rows[0][0])
		assert.Equal(t, "Backend Engineer", rows[1][0])
		assert.Equal(t, "100000", rows[1][6])
		assert.Equal(t, "2", rows[1][9])

		summary, err := f.GetRows("Summary")
		require.NoError(t, err)
		assert.Equal(t, []string{"Total Jobs", "3"}, summary[1])
	})

	t.Run("csv escapes embedded commas", func(t *testing.T) {
		data, filename, err := uc.ExportReport(ctx, "csv")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, ".csv"))

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, "Designer, Senior", records[3][0])
		assert.Equal(t, "0", records[3][9])
	})

	t.Run("unknown format is a validation error", func(t *testing.T) {
		_, _, err := uc.ExportReport(ctx, "pdf")
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}
