package store

import (
	"hirewise-backend/internal/domain"
)

type restoreReport struct {
	duplicates int
	orphans    int
}

// normalize makes a loaded snapshot satisfy the Store invariants. Older or
// hand-edited mirrors may miss collections, carry a half-set session, or
// have stale applicationIds, so the job links are always rebuilt from the
// applications themselves.
func normalize(in domain.Snapshot) (domain.Snapshot, restoreReport) {
	var report restoreReport
	out := domain.EmptySnapshot()

	if in.User != nil && in.UserRole != nil && in.UserRole.Valid() {
		user := cloneUser(*in.User)
		role := *in.UserRole
		out.User = &user
		out.UserRole = &role
	}

	jobPos := make(map[string]int, len(in.Jobs))
	for _, job := range in.Jobs {
		if _, dup := jobPos[job.ID]; dup || job.ID == "" {
			report.duplicates++
			continue
		}
		job = cloneJob(job)
		if job.Status == "" {
			job.Status = domain.JobStatusActive
		}
		job.ApplicationIDs = []string{}
		jobPos[job.ID] = len(out.Jobs)
		out.Jobs = append(out.Jobs, job)
	}

	seenApps := make(map[string]struct{}, len(in.Applications))
	for _, app := range in.Applications {
		if _, dup := seenApps[app.ID]; dup || app.ID == "" {
			report.duplicates++
			continue
		}
		pos, ok := jobPos[app.JobID]
		if !ok {
			report.orphans++
			continue
		}
		seenApps[app.ID] = struct{}{}
		app = cloneApplication(app)
		app.MatchScore = clampScore(app.MatchScore)
		if app.Status == "" {
			app.Status = domain.ApplicationStatusApplied
		}
		out.Applications = append(out.Applications, app)
		out.Jobs[pos].ApplicationIDs = append(out.Jobs[pos].ApplicationIDs, app.ID)
	}

	seenCandidates := make(map[string]struct{}, len(in.Candidates))
	for _, c := range in.Candidates {
		if _, dup := seenCandidates[c.ID]; dup || c.ID == "" {
			report.duplicates++
			continue
		}
		seenCandidates[c.ID] = struct{}{}
		out.Candidates = append(out.Candidates, cloneCandidate(c))
	}

	seenRecruiters := make(map[string]struct{}, len(in.Recruiters))
	for _, r := range in.Recruiters {
		if _, dup := seenRecruiters[r.ID]; dup || r.ID == "" {
			report.duplicates++
			continue
		}
		seenRecruiters[r.ID] = struct{}{}
		out.Recruiters = append(out.Recruiters, cloneUser(r))
	}

	return out, report
}
