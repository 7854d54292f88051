package domain

import "context"

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Stats is what the analytics board renders.
type Stats struct {
	TotalJobs            int                       `json:"totalJobs"`
	TotalApplications    int                       `json:"totalApplications"`
	TotalCandidates      int                       `json:"totalCandidates"`
	AvgMatchScore        int                       `json:"avgMatchScore"`
	TopSkills            []SkillCount              `json:"topSkills"`
	JobsByDepartment     map[string]int            `json:"jobsByDepartment"`
	JobsByStatus         map[JobStatus]int         `json:"jobsByStatus"`
	ApplicationsByStatus map[ApplicationStatus]int `json:"applicationsByStatus"`
}

// Report export formats
const (
	ReportFormatXLSX = "xlsx"
	ReportFormatCSV  = "csv"
)

// SnapshotReader exposes a consistent copy of the Store state.
type SnapshotReader interface {
	Snapshot(ctx context.Context) Snapshot
}

type AnalyticsUsecase interface {
	Stats(ctx context.Context) Stats
	ExportReport(ctx context.Context, format string) ([]byte, string, error)
}
