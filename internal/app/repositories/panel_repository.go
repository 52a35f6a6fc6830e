package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
	"github.com/campushq/recruithub/internal/pkg/dberrors"
)

// PanelRepository handles database operations for interviewer panels
type PanelRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPanelRepository creates a new panel repository
func NewPanelRepository(db *pgxpool.Pool) *PanelRepository {
	return &PanelRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new panel for one round of a drive
func (r *PanelRepository) Create(ctx context.Context, panel *models.Panel) error {
	sql, args, err := r.sb.Insert("panels").
		Columns("drive_id", "round_number", "name", "created_at").
		Values(panel.DriveID, panel.RoundNumber, panel.Name, time.Now()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create panel query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&panel.ID, &panel.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating panel: %w", err)
	}

	return nil
}

// GetByID retrieves a panel by ID, including its members
func (r *PanelRepository) GetByID(ctx context.Context, id int64) (*models.Panel, error) {
	sql, args, err := r.sb.Select("id", "drive_id", "round_number", "name", "created_at").
		From("panels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get panel query: %w", err)
	}

	var panel models.Panel
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&panel.ID,
		&panel.DriveID,
		&panel.RoundNumber,
		&panel.Name,
		&panel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPanelNotFound
		}
		return nil, fmt.Errorf("error retrieving panel: %w", err)
	}

	members, err := r.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	panel.Members = members

	return &panel, nil
}

// GetByDriveID retrieves all panels of a drive ordered by round number
func (r *PanelRepository) GetByDriveID(ctx context.Context, driveID int64) ([]*models.Panel, error) {
	sql, args, err := r.sb.Select("id", "drive_id", "round_number", "name", "created_at").
		From("panels").
		Where(squirrel.Eq{"drive_id": driveID}).
		OrderBy("round_number", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list panels query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var panels []*models.Panel
	for rows.Next() {
		var panel models.Panel
		if err := rows.Scan(
			&panel.ID,
			&panel.DriveID,
			&panel.RoundNumber,
			&panel.Name,
			&panel.CreatedAt,
		); err != nil {
			return nil, err
		}
		panels = append(panels, &panel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return panels, nil
}

// Delete removes a panel and its memberships
func (r *PanelRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("panels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete panel query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting panel: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPanelNotFound
	}

	return nil
}

// AddMember adds an interviewer to a panel
func (r *PanelRepository) AddMember(ctx context.Context, panelID, userID int64) error {
	sql, args, err := r.sb.Insert("panel_members").
		Columns("panel_id", "user_id", "joined_at").
		Values(panelID, userID, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "panel_members_panel_id_user_id_key") {
			return apperrors.ErrPanelMemberExists
		}
		return fmt.Errorf("error adding panel member: %w", err)
	}

	return nil
}

// RemoveMember removes an interviewer from a panel
func (r *PanelRepository) RemoveMember(ctx context.Context, panelID, userID int64) error {
	sql, args, err := r.sb.Delete("panel_members").
		Where(squirrel.Eq{"panel_id": panelID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing panel member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPanelMemberMissing
	}

	return nil
}

// GetMembers retrieves the members of a panel with their user details
func (r *PanelRepository) GetMembers(ctx context.Context, panelID int64) ([]models.PanelMember, error) {
	sql, args, err := r.sb.Select(
		"pm.id", "pm.panel_id", "pm.user_id", "pm.joined_at",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.role_type").
		From("panel_members pm").
		Join("users u ON u.id = pm.user_id").
		Where(squirrel.Eq{"pm.panel_id": panelID}).
		OrderBy("pm.joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving panel members: %w", err)
	}
	defer rows.Close()

	var members []models.PanelMember
	for rows.Next() {
		var member models.PanelMember
		var user models.User
		if err := rows.Scan(
			&member.ID,
			&member.PanelID,
			&member.UserID,
			&member.JoinedAt,
			&user.ID,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.RoleType,
		); err != nil {
			return nil, err
		}
		member.User = &user
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// IsMember reports whether a user belongs to any panel of a drive
func (r *PanelRepository) IsMember(ctx context.Context, driveID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM panel_members pm
			JOIN panels p ON p.id = pm.panel_id
			WHERE p.drive_id = $1 AND pm.user_id = $2)`,
		driveID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking panel membership: %w", err)
	}

	return exists, nil
}
