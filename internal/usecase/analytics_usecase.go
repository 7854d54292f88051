package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"hirewise-backend/internal/domain"
	"hirewise-backend/pkg/apperror"
	"hirewise-backend/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const (
	topSkillsLimit   = 5
	otherDepartment  = "Other"
	jobsSheetName    = "Jobs"
	summarySheetName = "Summary"
)

var reportColumns = []string{
	"TITLE", "COMPANY", "DEPARTMENT", "LOCATION", "EMPLOYMENT TYPE",
	"EXPERIENCE LEVEL", "SALARY", "STATUS", "SKILLS", "APPLICATIONS",
	"AVG MATCH SCORE", "CREATED AT",
}

type analyticsUsecase struct {
	reader domain.SnapshotReader
	now    func() time.Time
}

// NewAnalyticsUsecase creates the analytics usecase on top of a state reader.
func NewAnalyticsUsecase(reader domain.SnapshotReader) domain.AnalyticsUsecase {
	return &analyticsUsecase{
		reader: reader,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *analyticsUsecase) Stats(ctx context.Context) domain.Stats {
	return computeStats(u.reader.Snapshot(ctx))
}

func computeStats(snap domain.Snapshot) domain.Stats {
	stats := domain.Stats{
		TotalJobs:            len(snap.Jobs),
		TotalApplications:    len(snap.Applications),
		TotalCandidates:      len(snap.Candidates),
		AvgMatchScore:        averageScore(snap.Applications),
		TopSkills:            topSkills(snap.Jobs, topSkillsLimit),
		JobsByDepartment:     map[string]int{},
		JobsByStatus:         map[domain.JobStatus]int{},
		ApplicationsByStatus: map[domain.ApplicationStatus]int{},
	}

	for _, job := range snap.Jobs {
		dept := strings.TrimSpace(job.Department)
		if dept == "" {
			dept = otherDepartment
		}
		stats.JobsByDepartment[dept]++
		stats.JobsByStatus[job.Status]++
	}
	for _, app := range snap.Applications {
		stats.ApplicationsByStatus[app.Status]++
	}
	return stats
}

// averageScore rounds half up; 0 when there is nothing to average.
func averageScore(apps []domain.Application) int {
	if len(apps) == 0 {
		return 0
	}
	sum := 0
	for _, app := range apps {
		sum += app.MatchScore
	}
	return int(math.Floor(float64(sum)/float64(len(apps)) + 0.5))
}

// topSkills counts skills across job postings. Ties are ordered by name so
// the board does not flicker between requests.
func topSkills(jobs []domain.Job, limit int) []domain.SkillCount {
	counts := map[string]int{}
	for _, job := range jobs {
		for _, skill := range job.Skills {
			counts[skill]++
		}
	}

	skills := make([]domain.SkillCount, 0, len(counts))
	for skill, count := range counts {
		skills = append(skills, domain.SkillCount{Skill: skill, Count: count})
	}
	slices.SortFunc(skills, func(a, b domain.SkillCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Skill, b.Skill)
	})

	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}

// ExportReport renders the jobs table plus the summary figures. It returns
// the file bytes and a timestamped filename.
func (u *analyticsUsecase) ExportReport(ctx context.Context, format string) ([]byte, string, error) {
	snap := u.reader.Snapshot(ctx)
	stats := computeStats(snap)
	rows := jobRows(snap)

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case domain.ReportFormatXLSX, "":
		format = domain.ReportFormatXLSX
		data, err = exportExcel(rows, stats)
	case domain.ReportFormatCSV:
		format = domain.ReportFormatCSV
		data, err = exportCSV(rows)
	default:
		return nil, "", apperror.Validation("Unsupported report format", "Format: must be one of: xlsx, csv")
	}
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	logger.FromContext(ctx).Info("Report exported", "format", format, "jobs", len(rows), "bytes", len(data))
	filename := fmt.Sprintf("hirewise_report_%s.%s", u.now().Format("20060102_150405"), format)
	return data, filename, nil
}

// jobRows flattens each job into report cells, in reportColumns order.
func jobRows(snap domain.Snapshot) [][]any {
	byJob := map[string][]domain.Application{}
	for _, app := range snap.Applications {
		byJob[app.JobID] = append(byJob[app.JobID], app)
	}

	rows := make([][]any, 0, len(snap.Jobs))
	for _, job := range snap.Jobs {
		var salary any = ""
		if job.Salary != nil {
			salary = *job.Salary
		}
		apps := byJob[job.ID]
		rows = append(rows, []any{
			job.Title,
			job.Company,
			job.Department,
			job.Location,
			job.EmploymentType,
			job.ExperienceLevel,
			salary,
			strings.ToUpper(string(job.Status)),
			strings.Join(job.Skills, ", "),
			len(apps),
			averageScore(apps),
			job.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func exportExcel(rows [][]any, stats domain.Stats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", jobsSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, name := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(jobsSheetName, cell, name)
	}

	// Dark blue header with white text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(reportColumns), 1)
	f.SetCellStyle(jobsSheetName, "A1", endCell, headerStyle)

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(jobsSheetName, cell, value)
		}
	}

	for i := range reportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(jobsSheetName, colName, colName, 20)
	}

	if _, err := f.NewSheet(summarySheetName); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	summary := [][]any{
		{"METRIC", "VALUE"},
		{"Total Jobs", stats.TotalJobs},
		{"Total Applications", stats.TotalApplications},
		{"Total Candidates", stats.TotalCandidates},
		{"Avg Match Score", stats.AvgMatchScore},
	}
	for _, s := range stats.TopSkills {
		summary = append(summary, []any{"Skill: " + s.Skill, s.Count})
	}
	for _, dept := range sortedKeys(stats.JobsByDepartment) {
		summary = append(summary, []any{"Department: " + dept, stats.JobsByDepartment[dept]})
	}
	for i, line := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheetName, cell, &line); err != nil {
			return nil, fmt.Errorf("write summary row: %w", err)
		}
	}
	f.SetCellStyle(summarySheetName, "A1", "B1", headerStyle)
	f.SetColWidth(summarySheetName, "A", "A", 32)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(rows [][]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportColumns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, value := range row {
			switch v := value.(type) {
			case int:
				record[i] = strconv.Itoa(v)
			default:
				record[i] = fmt.Sprint(v)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
