package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-house/community-service/internal/domain"
)

// HelpResponseRepository persists offers of assistance.
type HelpResponseRepository interface {
	// Create inserts a response. A missing parent request yields ErrReferenceNotFound.
	Create(ctx context.Context, resp *domain.HelpResponse) error
	GetByID(ctx context.Context, id string) (*domain.HelpResponse, error)
	ListByRequest(ctx context.Context, helpRequestID string) ([]domain.HelpResponse, error)
	MarkAccepted(ctx context.Context, id string) error
}

type helpResponseRepository struct {
	pool *pgxpool.Pool
}

// NewHelpResponseRepository instantiates repository.
func NewHelpResponseRepository(pool *pgxpool.Pool) HelpResponseRepository {
	return &helpResponseRepository{pool: pool}
}

const helpResponseSelect = `
        SELECT r.id, r.help_request_id, r.responder_id, r.message, r.is_accepted, r.created_at,
               u.id, u.first_name, u.last_name, u.profile_image_url, u.location
        FROM help_responses r
        LEFT JOIN users u ON u.id = r.responder_id`

func (r *helpResponseRepository) Create(ctx context.Context, resp *domain.HelpResponse) error {
	const query = `
        INSERT INTO help_responses (help_request_id, responder_id, message, is_accepted)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		resp.HelpRequestID,
		resp.ResponderID,
		resp.Message,
		resp.IsAccepted,
	).Scan(&resp.ID, &resp.CreatedAt)
	return translatePgError(err)
}

func (r *helpResponseRepository) GetByID(ctx context.Context, id string) (*domain.HelpResponse, error) {
	query := helpResponseSelect + ` WHERE r.id=$1`
	return scanHelpResponse(r.pool.QueryRow(ctx, query, id))
}

func (r *helpResponseRepository) ListByRequest(ctx context.Context, helpRequestID string) ([]domain.HelpResponse, error) {
	query := helpResponseSelect + ` WHERE r.help_request_id=$1 ORDER BY r.created_at ASC, r.id`
	rows, err := r.pool.Query(ctx, query, helpRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HelpResponse
	for rows.Next() {
		resp, err := scanHelpResponse(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, rows.Err()
}

func (r *helpResponseRepository) MarkAccepted(ctx context.Context, id string) error {
	const query = `UPDATE help_responses SET is_accepted=TRUE WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanHelpResponse(row rowScanner) (*domain.HelpResponse, error) {
	var (
		resp                                     domain.HelpResponse
		userID, firstName, lastName, avatar, loc *string
	)
	if err := row.Scan(
		&resp.ID,
		&resp.HelpRequestID,
		&resp.ResponderID,
		&resp.Message,
		&resp.IsAccepted,
		&resp.CreatedAt,
		&userID,
		&firstName,
		&lastName,
		&avatar,
		&loc,
	); err != nil {
		return nil, err
	}
	resp.Responder = joinedSummary(userID, firstName, lastName, avatar, loc)
	return &resp, nil
}
