package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-house/community-service/internal/domain"
)

// AnnouncementRepository persists community announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	ListActive(ctx context.Context) ([]domain.Announcement, error)
	ListAll(ctx context.Context) ([]domain.Announcement, error)
}

type announcementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository instantiates repository.
func NewAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepository{pool: pool}
}

const announcementSelect = `
        SELECT a.id, a.author_id, a.title, a.content, a.priority, a.is_active, a.is_pinned,
               a.expires_at, a.created_at, a.updated_at,
               u.id, u.first_name, u.last_name, u.profile_image_url, u.location
        FROM announcements a
        LEFT JOIN users u ON u.id = a.author_id`

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	const query = `
        INSERT INTO announcements (author_id, title, content, priority, is_active, is_pinned, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		a.AuthorID,
		a.Title,
		a.Content,
		a.Priority,
		a.IsActive,
		a.IsPinned,
		a.ExpiresAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translatePgError(err)
}

func (r *announcementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	const query = `
        UPDATE announcements SET title=$1, content=$2, priority=$3, is_active=$4, is_pinned=$5,
            expires_at=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		a.Title,
		a.Content,
		a.Priority,
		a.IsActive,
		a.IsPinned,
		a.ExpiresAt,
		a.ID,
	).Scan(&a.UpdatedAt)
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	return scanAnnouncement(r.pool.QueryRow(ctx, announcementSelect+` WHERE a.id=$1`, id))
}

func (r *announcementRepository) ListActive(ctx context.Context) ([]domain.Announcement, error) {
	const where = ` WHERE a.is_active AND (a.expires_at IS NULL OR a.expires_at > NOW())`
	return r.list(ctx, announcementSelect+where+` ORDER BY a.is_pinned DESC, a.created_at DESC`)
}

func (r *announcementRepository) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	return r.list(ctx, announcementSelect+` ORDER BY a.is_pinned DESC, a.created_at DESC`)
}

func (r *announcementRepository) list(ctx context.Context, query string) ([]domain.Announcement, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

func scanAnnouncement(row rowScanner) (*domain.Announcement, error) {
	var (
		a                                        domain.Announcement
		userID, firstName, lastName, avatar, loc *string
	)
	if err := row.Scan(
		&a.ID,
		&a.AuthorID,
		&a.Title,
		&a.Content,
		&a.Priority,
		&a.IsActive,
		&a.IsPinned,
		&a.ExpiresAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&userID,
		&firstName,
		&lastName,
		&avatar,
		&loc,
	); err != nil {
		return nil, err
	}
	a.Author = joinedSummary(userID, firstName, lastName, avatar, loc)
	return &a, nil
}
