package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/pagination"
)

const photoColumns = `id, album_id, title, description, filename, original_name, mime_type, size,
	acquisition_date, dominant_color, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

func (r *PhotoRepo) Create(ctx context.Context, photo *entity.Photo) error {
	query := `
		INSERT INTO photos (id, album_id, title, description, filename, original_name, mime_type, size,
			acquisition_date, dominant_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		photo.ID, photo.AlbumID, photo.Title, photo.Description, photo.Filename, photo.OriginalName,
		photo.MimeType, photo.Size, photo.AcquisitionDate, photo.DominantColor, photo.CreatedAt, photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting photo: %w", err)
	}
	return nil
}

func (r *PhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`
	photo, err := scanPhoto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return photo, nil
}

func (r *PhotoRepo) ListByAlbum(ctx context.Context, albumID uuid.UUID, params pagination.Params) ([]entity.Photo, *pagination.Info, error) {
	return r.list(ctx, `album_id = $1`, []any{albumID}, params)
}

// Search matches the query as a case-insensitive substring of title,
// description or original filename, restricted to albums of ownerID.
func (r *PhotoRepo) Search(ctx context.Context, ownerID uuid.UUID, query string, params pagination.Params) ([]entity.Photo, *pagination.Info, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	where := `album_id IN (SELECT id FROM albums WHERE owner_id = $1)
		AND (title ILIKE $2 ESCAPE '\' OR description ILIKE $2 ESCAPE '\' OR original_name ILIKE $2 ESCAPE '\')`
	return r.list(ctx, where, []any{ownerID, pattern}, params)
}

func (r *PhotoRepo) list(ctx context.Context, where string, args []any, params pagination.Params) ([]entity.Photo, *pagination.Info, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM photos WHERE %s", where)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting photos: %w", err)
	}

	direction := "DESC"
	if params.Ascending() {
		direction = "ASC"
	}

	argNum := len(args) + 1
	query := fmt.Sprintf(`
		SELECT %s
		FROM photos
		WHERE %s
		ORDER BY acquisition_date %s, id %s
		LIMIT $%d OFFSET $%d
	`, photoColumns, where, direction, direction, argNum, argNum+1)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	photos := []entity.Photo{}
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, nil, err
		}
		photos = append(photos, *photo)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating photos: %w", err)
	}

	return photos, pagination.NewInfo(params.Page, params.Limit, total), nil
}

func (r *PhotoRepo) Update(ctx context.Context, photo *entity.Photo) error {
	query := `
		UPDATE photos
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, photo.ID, photo.Title, photo.Description, photo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE id = ANY($1::uuid[])`, raw)
	if err != nil {
		return 0, fmt.Errorf("deleting photos: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanPhoto(row pgx.Row) (*entity.Photo, error) {
	var photo entity.Photo
	err := row.Scan(
		&photo.ID, &photo.AlbumID, &photo.Title, &photo.Description, &photo.Filename, &photo.OriginalName,
		&photo.MimeType, &photo.Size, &photo.AcquisitionDate, &photo.DominantColor, &photo.CreatedAt, &photo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning photo: %w", err)
	}
	return &photo, nil
}
