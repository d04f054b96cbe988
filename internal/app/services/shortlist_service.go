package services

import (
	"context"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/email"
	"github.com/anvesh/placementcell/internal/pkg/logger"
)

// ShortlistService drives the per-student recruitment state machine.
// Progress is monotonic: rounds are only ever cleared and selections
// only ever added, there is no transition back.
type ShortlistService struct {
	studentRepo *repositories.StudentRepository
	driveRepo   *repositories.DriveRepository
	mailer      email.Mailer
}

// NewShortlistService creates a new shortlist service
func NewShortlistService(
	studentRepo *repositories.StudentRepository,
	driveRepo *repositories.DriveRepository,
	mailer email.Mailer,
) *ShortlistService {
	return &ShortlistService{
		studentRepo: studentRepo,
		driveRepo:   driveRepo,
		mailer:      mailer,
	}
}

// MarkShortlisted records a cleared round for a student on a drive.
// Re-marking an already cleared round changes nothing but still sends
// the notification email, so delivery is at-least-once.
func (s *ShortlistService) MarkShortlisted(ctx context.Context, studentID, jobID, round string) (*models.Student, bool, error) {
	if !models.ValidRound(round) {
		return nil, false, apperrors.ErrUnknownRound
	}

	drive, err := s.driveRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, false, err
	}

	changed := false
	student, err := s.studentRepo.Update(ctx, NormalizeStudentID(studentID), func(st *models.Student) error {
		changed = st.MarkShortlisted(jobID, round)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if err := s.mailer.SendShortlistEmail(student.Email, student.Name, drive.Name, drive.Role, jobID, round, "shortlisted"); err != nil {
		logger.Warn().Err(err).
			Str("studentId", student.StudentID).
			Str("jobId", jobID).
			Str("round", round).
			Msg("Failed to send shortlist email")
	}

	return student, changed, nil
}

// MarkSelected records a final selection for a student on a drive.
// Selection implies the given round is cleared but does not require
// earlier rounds to have been cleared first. The job ID joins the
// selected list at most once; the notification email is sent on every
// call.
func (s *ShortlistService) MarkSelected(ctx context.Context, studentID, jobID, round string) (*models.Student, bool, error) {
	if !models.ValidRound(round) {
		return nil, false, apperrors.ErrUnknownRound
	}

	drive, err := s.driveRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, false, err
	}

	changed := false
	student, err := s.studentRepo.Update(ctx, NormalizeStudentID(studentID), func(st *models.Student) error {
		selectedChanged := st.MarkSelected(jobID)
		roundChanged := st.MarkShortlisted(jobID, round)
		changed = selectedChanged || roundChanged
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if err := s.mailer.SendShortlistEmail(student.Email, student.Name, drive.Name, drive.Role, jobID, round, "selected"); err != nil {
		logger.Warn().Err(err).
			Str("studentId", student.StudentID).
			Str("jobId", jobID).
			Str("round", round).
			Msg("Failed to send selection email")
	}

	return student, changed, nil
}

// DriveShortlist lists every applicant's round progress for one drive.
// The drive may be addressed by job slug or by stable identifier.
func (s *ShortlistService) DriveShortlist(ctx context.Context, driveID string) (*dto.DriveShortlistResponse, error) {
	drive, err := s.driveRepo.GetByJobID(ctx, driveID)
	if err != nil {
		if drive, err = s.driveRepo.GetByID(ctx, driveID); err != nil {
			return nil, err
		}
	}
	jobID := drive.JobID

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ShortlistEntryResponse, 0)
	for i := range students {
		st := &students[i]
		if !st.HasApplied(drive.Name) && st.Shortlists[jobID] == nil {
			continue
		}

		rounds := make(map[string]bool, len(models.Rounds))
		for _, round := range models.Rounds {
			rounds[round] = st.Shortlists[jobID][round]
		}

		selected := false
		for _, id := range st.Selected {
			if id == jobID {
				selected = true
				break
			}
		}

		entries = append(entries, dto.ShortlistEntryResponse{
			StudentID: st.StudentID,
			Name:      st.Name,
			Email:     st.Email,
			Rounds:    rounds,
			Selected:  selected,
		})
	}

	return &dto.DriveShortlistResponse{
		JobID:   drive.JobID,
		Entries: entries,
		Total:   len(entries),
	}, nil
}
