package services

import (
	"context"
	"sort"
	"strings"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
)

// AnalyticsService computes the placement dashboard rollups
type AnalyticsService struct {
	studentRepo  *repositories.StudentRepository
	driveRepo    *repositories.DriveRepository
	queryRepo    *repositories.QueryRepository
	responseRepo *repositories.ResponseRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	studentRepo *repositories.StudentRepository,
	driveRepo *repositories.DriveRepository,
	queryRepo *repositories.QueryRepository,
	responseRepo *repositories.ResponseRepository,
) *AnalyticsService {
	return &AnalyticsService{
		studentRepo:  studentRepo,
		driveRepo:    driveRepo,
		queryRepo:    queryRepo,
		responseRepo: responseRepo,
	}
}

// Dashboard builds the full analytics rollup in one pass over the
// collections
func (s *AnalyticsService) Dashboard(ctx context.Context) (*dto.AnalyticsResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	drives, err := s.driveRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	queries, err := s.queryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsResponse{
		TotalStudents:  len(students),
		TotalDrives:    len(drives),
		ByBranch:       s.branchStats(students),
		ByDrive:        s.driveStats(students, drives),
		DrivesByYear:   s.yearStats(students, drives),
		PendingQueries: s.pendingQueries(queries, responses),
	}

	for i := range students {
		if students[i].IsPlaced() {
			resp.TotalPlaced++
		}
	}
	if resp.TotalStudents > 0 {
		resp.PlacementRate = float64(resp.TotalPlaced) / float64(resp.TotalStudents) * 100
	}
	for i := range drives {
		if !drives[i].Completed {
			resp.ActiveDrives++
		}
	}

	return resp, nil
}

func (s *AnalyticsService) branchStats(students []models.Student) []dto.BranchPlacementStats {
	type rollup struct {
		total   int
		placed  int
		cgpaSum float64
	}
	byBranch := make(map[string]*rollup)
	for i := range students {
		branch := strings.ToUpper(strings.TrimSpace(students[i].Branch))
		r := byBranch[branch]
		if r == nil {
			r = &rollup{}
			byBranch[branch] = r
		}
		r.total++
		r.cgpaSum += students[i].CGPA.Float()
		if students[i].IsPlaced() {
			r.placed++
		}
	}

	stats := make([]dto.BranchPlacementStats, 0, len(byBranch))
	for _, branch := range models.Departments {
		r := byBranch[branch]
		if r == nil {
			continue
		}
		stats = append(stats, dto.BranchPlacementStats{
			Branch:  branch,
			Total:   r.total,
			Placed:  r.placed,
			Percent: float64(r.placed) / float64(r.total) * 100,
			AvgCGPA: r.cgpaSum / float64(r.total),
		})
	}
	return stats
}

func (s *AnalyticsService) driveStats(students []models.Student, drives []models.Drive) []dto.DriveFunnelStats {
	stats := make([]dto.DriveFunnelStats, 0, len(drives))
	for i := range drives {
		drive := &drives[i]
		jobID := drive.JobID
		if jobID == "" {
			jobID = models.GenerateJobID(drive.Name, drive.Role)
		}

		funnel := dto.DriveFunnelStats{
			JobID:     jobID,
			Name:      drive.Name,
			Role:      drive.Role,
			Completed: drive.Completed,
		}
		for j := range students {
			st := &students[j]
			if st.HasApplied(drive.Name) {
				funnel.Applications++
			}
			for _, cleared := range st.Shortlists[jobID] {
				if cleared {
					funnel.Shortlisted++
					break
				}
			}
			for _, id := range st.Selected {
				if id == jobID {
					funnel.Selected++
					break
				}
			}
		}
		stats = append(stats, funnel)
	}
	return stats
}

func (s *AnalyticsService) yearStats(students []models.Student, drives []models.Drive) []dto.YearStats {
	drivesByYear := make(map[int]int)
	yearByJobID := make(map[string]int)
	yearByName := make(map[string]int)
	for i := range drives {
		year, ok := drives[i].DriveYear()
		if !ok {
			continue
		}
		drivesByYear[year]++

		jobID := drives[i].JobID
		if jobID == "" {
			jobID = models.GenerateJobID(drives[i].Name, drives[i].Role)
		}
		yearByJobID[jobID] = year
		yearByName[drives[i].Name] = year
	}

	// Placed counts join each student's selected list to a drive year by
	// job ID. Legacy records carry only selected_company, which can only
	// be matched back to a drive by name.
	placedByYear := make(map[int]int)
	for i := range students {
		st := &students[i]
		for _, jobID := range st.Selected {
			if year, ok := yearByJobID[jobID]; ok {
				placedByYear[year]++
			}
		}
		if len(st.Selected) == 0 && st.SelectedCompany != "" {
			if year, ok := yearByName[st.SelectedCompany]; ok {
				placedByYear[year]++
			}
		}
	}

	years := make([]int, 0, len(drivesByYear))
	for year := range drivesByYear {
		years = append(years, year)
	}
	sort.Ints(years)

	stats := make([]dto.YearStats, 0, len(years))
	for _, year := range years {
		stats = append(stats, dto.YearStats{
			Year:   year,
			Drives: drivesByYear[year],
			Placed: placedByYear[year],
		})
	}
	return stats
}

// pendingQueries counts questions with no answer on record. The only
// correlation available is the student identifier plus the copied
// question text.
func (s *AnalyticsService) pendingQueries(queries []models.Query, responses []models.Response) int {
	answered := make(map[string]bool, len(responses))
	for i := range responses {
		answered[responses[i].StudentID+"\x00"+responses[i].OriginalQuery] = true
	}

	pending := 0
	for i := range queries {
		if !answered[queries[i].StudentID+"\x00"+queries[i].Message] {
			pending++
		}
	}
	return pending
}
