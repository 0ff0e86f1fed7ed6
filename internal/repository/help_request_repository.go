package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-house/community-service/internal/domain"
)

// HelpRequestOrder selects the sort applied by ListWithFilter.
type HelpRequestOrder int

const (
	// OrderByUrgency ranks by urgency, then recency. Used for the community board.
	OrderByUrgency HelpRequestOrder = iota
	// OrderByNewest lists the most recently created first.
	OrderByNewest
)

// HelpRequestFilter narrows help request listings.
type HelpRequestFilter struct {
	RequesterID *string
	Statuses    []domain.HelpRequestStatus
	Order       HelpRequestOrder
	Limit       int
	Offset      int
}

// HelpRequestRepository encapsulates help request persistence.
type HelpRequestRepository interface {
	Create(ctx context.Context, req *domain.HelpRequest) error
	GetByID(ctx context.Context, id string) (*domain.HelpRequest, error)
	ListActive(ctx context.Context, limit, offset int) ([]domain.HelpRequest, error)
	ListWithFilter(ctx context.Context, filter HelpRequestFilter) ([]domain.HelpRequest, error)
	// UpdateStatus moves a request from one status to another and returns the updated row.
	// It yields pgx.ErrNoRows when the row is missing or no longer in the from status.
	UpdateStatus(ctx context.Context, id string, from, to domain.HelpRequestStatus) (*domain.HelpRequest, error)
}

type helpRequestRepository struct {
	pool *pgxpool.Pool
}

// NewHelpRequestRepository instantiates repository.
func NewHelpRequestRepository(pool *pgxpool.Pool) HelpRequestRepository {
	return &helpRequestRepository{pool: pool}
}

const helpRequestSelect = `
        SELECT hr.id, hr.requester_id, hr.title, hr.description, hr.type, hr.location,
               hr.urgency_level, hr.status, hr.created_at, hr.updated_at,
               u.id, u.first_name, u.last_name, u.profile_image_url, u.location
        FROM help_requests hr
        LEFT JOIN users u ON u.id = hr.requester_id`

func (r *helpRequestRepository) Create(ctx context.Context, req *domain.HelpRequest) error {
	const query = `
        INSERT INTO help_requests (requester_id, title, description, type, location, urgency_level, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		req.RequesterID,
		req.Title,
		req.Description,
		req.Type,
		req.Location,
		req.UrgencyLevel,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	return translatePgError(err)
}

func (r *helpRequestRepository) GetByID(ctx context.Context, id string) (*domain.HelpRequest, error) {
	query := helpRequestSelect + ` WHERE hr.id=$1`
	return scanHelpRequest(r.pool.QueryRow(ctx, query, id))
}

func (r *helpRequestRepository) ListActive(ctx context.Context, limit, offset int) ([]domain.HelpRequest, error) {
	return r.ListWithFilter(ctx, HelpRequestFilter{
		Statuses: []domain.HelpRequestStatus{domain.HelpRequestStatusActive},
		Order:    OrderByUrgency,
		Limit:    limit,
		Offset:   offset,
	})
}

func (r *helpRequestRepository) ListWithFilter(ctx context.Context, filter HelpRequestFilter) ([]domain.HelpRequest, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.RequesterID != nil {
		args = append(args, *filter.RequesterID)
		clauses = append(clauses, fmt.Sprintf("hr.requester_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("hr.status IN (%s)", strings.Join(placeholders, ",")))
	}

	orderBy := "hr.urgency_level DESC, hr.created_at DESC, hr.id"
	if filter.Order == OrderByNewest {
		orderBy = "hr.created_at DESC, hr.id"
	}

	limit, offset := normalizePage(filter.Limit, filter.Offset)
	query := fmt.Sprintf(`%s WHERE %s ORDER BY %s LIMIT %d OFFSET %d`,
		helpRequestSelect, strings.Join(clauses, " AND "), orderBy, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.HelpRequest, 0, limit)
	for rows.Next() {
		req, err := scanHelpRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	return result, rows.Err()
}

func (r *helpRequestRepository) UpdateStatus(ctx context.Context, id string, from, to domain.HelpRequestStatus) (*domain.HelpRequest, error) {
	const query = `
        UPDATE help_requests SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3
        RETURNING id, requester_id, title, description, type, location, urgency_level, status, created_at, updated_at`
	var req domain.HelpRequest
	if err := r.pool.QueryRow(ctx, query, to, id, from).Scan(
		&req.ID,
		&req.RequesterID,
		&req.Title,
		&req.Description,
		&req.Type,
		&req.Location,
		&req.UrgencyLevel,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func scanHelpRequest(row rowScanner) (*domain.HelpRequest, error) {
	var (
		req       domain.HelpRequest
		userID    *string
		firstName *string
		lastName  *string
		avatar    *string
		location  *string
	)
	if err := row.Scan(
		&req.ID,
		&req.RequesterID,
		&req.Title,
		&req.Description,
		&req.Type,
		&req.Location,
		&req.UrgencyLevel,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
		&userID,
		&firstName,
		&lastName,
		&avatar,
		&location,
	); err != nil {
		return nil, err
	}
	req.Requester = joinedSummary(userID, firstName, lastName, avatar, location)
	return &req, nil
}

func joinedSummary(id, firstName, lastName, avatar, location *string) *domain.UserSummary {
	if id == nil {
		return nil
	}
	summary := &domain.UserSummary{ID: *id, ProfileImageURL: avatar, Location: location}
	if firstName != nil {
		summary.FirstName = *firstName
	}
	if lastName != nil {
		summary.LastName = *lastName
	}
	return summary
}
