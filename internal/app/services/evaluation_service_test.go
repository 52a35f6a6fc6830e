package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/recruithub/internal/app/models"
)

// fakeJobStore is an in-memory EvaluationJobStore for supervision tests
type fakeJobStore struct {
	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*models.EvaluationJob
}

func newFakeJobStore(jobs ...*models.EvaluationJob) *fakeJobStore {
	f := &fakeJobStore{jobs: make(map[int64]*models.EvaluationJob)}
	for _, job := range jobs {
		f.nextID++
		job.ID = f.nextID
		f.jobs[job.ID] = job
	}
	return f
}

func (f *fakeJobStore) Create(ctx context.Context, job *models.EvaluationJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	job.ID = f.nextID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobStore) GetByID(ctx context.Context, id int64) (*models.EvaluationJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *f.jobs[id]
	return &copied, nil
}

func (f *fakeJobStore) GetByDriveID(ctx context.Context, driveID int64) ([]*models.EvaluationJob, error) {
	return nil, nil
}

func (f *fakeJobStore) HasActiveJob(ctx context.Context, driveID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, job := range f.jobs {
		if job.DriveID == driveID && !job.Status.IsTerminal() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobStore) MarkInProgress(ctx context.Context, id int64, startedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].Status = models.JobStatusInProgress
	f.jobs[id].StartedAt = &startedAt
	f.jobs[id].UpdatedAt = time.Now()
	return nil
}

func (f *fakeJobStore) UpdateProgress(ctx context.Context, id int64, processed, passed, failed int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].Processed = processed
	f.jobs[id].PassedCount = passed
	f.jobs[id].FailedCount = failed
	f.jobs[id].UpdatedAt = time.Now()
	return nil
}

func (f *fakeJobStore) MarkCompleted(ctx context.Context, id int64, processed, passed, failed int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].Status = models.JobStatusCompleted
	f.jobs[id].Processed = processed
	f.jobs[id].PassedCount = passed
	f.jobs[id].FailedCount = failed
	f.jobs[id].UpdatedAt = time.Now()
	return nil
}

func (f *fakeJobStore) MarkFailed(ctx context.Context, id int64, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].Status = models.JobStatusFailed
	f.jobs[id].ErrorMessage = &message
	f.jobs[id].UpdatedAt = time.Now()
	return nil
}

func (f *fakeJobStore) ListNonTerminal(ctx context.Context) ([]*models.EvaluationJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.EvaluationJob
	for _, job := range f.jobs {
		if !job.Status.IsTerminal() {
			copied := *job
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeJobStore) MarkAbandoned(ctx context.Context, staleBefore time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, job := range f.jobs {
		if !job.Status.IsTerminal() && job.UpdatedAt.Before(staleBefore) {
			job.Status = models.JobStatusFailed
			message := "abandoned: runner stopped reporting progress"
			job.ErrorMessage = &message
			job.UpdatedAt = time.Now()
			count++
		}
	}
	return count, nil
}

func (f *fakeJobStore) status(id int64) models.EvaluationJobStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jobs[id].Status
}

// newSupervisionService wires an EvaluationService around the fake store only.
// The drive, student and round repositories are never touched by Resume or the
// supervisor, so they stay nil. The hour-long poll interval keeps the
// background loop from firing during tests.
func newSupervisionService(store *fakeJobStore, staleAfter time.Duration) *EvaluationService {
	return NewEvaluationService(store, nil, nil, nil, time.Hour, staleAfter, zerolog.Nop())
}

func TestResumeSupervisesLeftoverJobs(t *testing.T) {
	store := newFakeJobStore(&models.EvaluationJob{
		DriveID:   1,
		Status:    models.JobStatusInProgress,
		UpdatedAt: time.Now(),
	})
	svc := newSupervisionService(store, time.Hour)
	defer svc.Shutdown()

	if err := svc.Resume(context.Background()); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	if !svc.supervisor.Running() {
		t.Fatal("supervisor not running after Resume found a non-terminal job")
	}
}

func TestResumeWithNothingOutstanding(t *testing.T) {
	store := newFakeJobStore()
	svc := newSupervisionService(store, time.Hour)

	if err := svc.Resume(context.Background()); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	if svc.supervisor.Running() {
		t.Fatal("supervisor running although no job needs watching")
	}
}

func TestSupervisorFailsStalledJob(t *testing.T) {
	store := newFakeJobStore(&models.EvaluationJob{
		DriveID:   1,
		Status:    models.JobStatusInProgress,
		UpdatedAt: time.Now().Add(-10 * time.Minute),
	})
	svc := newSupervisionService(store, time.Minute)

	done, err := svc.supervisor.Tick(context.Background())
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !done {
		t.Fatal("supervision cycle not done after failing the only job")
	}
	if got := store.status(1); got != models.JobStatusFailed {
		t.Fatalf("stalled job status = %s, want %s", got, models.JobStatusFailed)
	}

	// The drive's active-job slot is free again.
	active, err := store.HasActiveJob(context.Background(), 1)
	if err != nil {
		t.Fatalf("HasActiveJob: %v", err)
	}
	if active {
		t.Fatal("drive still reports an active job after the stalled job was failed")
	}
}

func TestSupervisorKeepsWatchingLiveJob(t *testing.T) {
	store := newFakeJobStore(&models.EvaluationJob{
		DriveID:   1,
		Status:    models.JobStatusInProgress,
		UpdatedAt: time.Now(),
	})
	svc := newSupervisionService(store, time.Minute)

	done, err := svc.supervisor.Tick(context.Background())
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if done {
		t.Fatal("supervision cycle done while a job is still making progress")
	}
	if got := store.status(1); got != models.JobStatusInProgress {
		t.Fatalf("live job status = %s, want %s", got, models.JobStatusInProgress)
	}
}
