package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	CollegeRepository       *CollegeRepository
	DriveRepository         *DriveRepository
	StudentRepository       *StudentRepository
	RoundRepository         *RoundRepository
	PanelRepository         *PanelRepository
	EvaluationJobRepository *EvaluationJobRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		CollegeRepository:       NewCollegeRepository(db),
		DriveRepository:         NewDriveRepository(db),
		StudentRepository:       NewStudentRepository(db),
		RoundRepository:         NewRoundRepository(db),
		PanelRepository:         NewPanelRepository(db),
		EvaluationJobRepository: NewEvaluationJobRepository(db),
	}
}
