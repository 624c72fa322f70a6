package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
)

const (
	uniqueViolation      = "23505"
	foreignKeyViolation  = "23503"
	shareTokenConstraint = "albums_share_token_key"

	albumColumns = `id, owner_id, title, description, is_public, share_token, created_at, updated_at`
)

type AlbumRepo struct {
	pool *pgxpool.Pool
}

func NewAlbumRepo(pool *pgxpool.Pool) *AlbumRepo {
	return &AlbumRepo{pool: pool}
}

func (r *AlbumRepo) Create(ctx context.Context, album *entity.Album) error {
	query := `
		INSERT INTO albums (id, owner_id, title, description, is_public, share_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		album.ID, album.OwnerID, album.Title, album.Description,
		album.IsPublic, album.ShareToken, album.CreatedAt, album.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting album: %w", mapUniqueViolation(err))
	}
	return nil
}

func (r *AlbumRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE id = $1`
	return r.scanAlbum(ctx, query, id)
}

func (r *AlbumRepo) GetByIDWithPhotos(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	album, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachPhotos(ctx, []*entity.Album{album}); err != nil {
		return nil, err
	}
	return album, nil
}

func (r *AlbumRepo) GetByShareToken(ctx context.Context, token string) (*entity.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE share_token = $1`
	album, err := r.scanAlbum(ctx, query, token)
	if err != nil {
		return nil, err
	}
	if err := r.attachPhotos(ctx, []*entity.Album{album}); err != nil {
		return nil, err
	}
	return album, nil
}

func (r *AlbumRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying albums: %w", err)
	}
	defer rows.Close()

	albums := []entity.Album{}
	for rows.Next() {
		var album entity.Album
		if err := rows.Scan(
			&album.ID, &album.OwnerID, &album.Title, &album.Description,
			&album.IsPublic, &album.ShareToken, &album.CreatedAt, &album.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning album: %w", err)
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating albums: %w", err)
	}

	refs := make([]*entity.Album, len(albums))
	for i := range albums {
		refs[i] = &albums[i]
	}
	if err := r.attachPhotos(ctx, refs); err != nil {
		return nil, err
	}

	return albums, nil
}

func (r *AlbumRepo) Update(ctx context.Context, album *entity.Album) error {
	query := `
		UPDATE albums
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, album.ID, album.Title, album.Description, album.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating album: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *AlbumRepo) UpdateSharing(ctx context.Context, id uuid.UUID, isPublic bool, shareToken *string) error {
	query := `
		UPDATE albums
		SET is_public = $2, share_token = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, id, isPublic, shareToken)
	if err != nil {
		return fmt.Errorf("updating album sharing: %w", mapUniqueViolation(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *AlbumRepo) HasPhotos(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM photos WHERE album_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking album photos: %w", err)
	}
	return exists, nil
}

// Delete relies on the photos foreign key to refuse albums that gained a
// photo after the caller checked HasPhotos.
func (r *AlbumRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("%w: %s", domain.ErrAlbumHasPhotos, pgErr.Message)
		}
		return fmt.Errorf("deleting album: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *AlbumRepo) scanAlbum(ctx context.Context, query string, args ...any) (*entity.Album, error) {
	var album entity.Album
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&album.ID, &album.OwnerID, &album.Title, &album.Description,
		&album.IsPublic, &album.ShareToken, &album.CreatedAt, &album.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("querying album: %w", err)
	}
	return &album, nil
}

func (r *AlbumRepo) attachPhotos(ctx context.Context, albums []*entity.Album) error {
	if len(albums) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Album, len(albums))
	ids := make([]string, 0, len(albums))
	for _, a := range albums {
		a.Photos = []entity.Photo{}
		byID[a.ID] = a
		ids = append(ids, a.ID.String())
	}

	query := `SELECT ` + photoColumns + ` FROM photos WHERE album_id = ANY($1::uuid[]) ORDER BY acquisition_date DESC, id`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("querying album photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return err
		}
		if a, ok := byID[photo.AlbumID]; ok {
			a.Photos = append(a.Photos, *photo)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating album photos: %w", err)
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == shareTokenConstraint {
		return fmt.Errorf("%w: %s", domain.ErrShareTokenTaken, pgErr.Message)
	}
	return err
}
