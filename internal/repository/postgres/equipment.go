package postgres

import (
	"context"
	"database/sql"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (id, owner_id, title, type, location, rate, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	eq.CreatedOn = now
	eq.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, eq.ID, eq.OwnerID, eq.Title, eq.Type, eq.Location, eq.Rate, eq.Status, eq.CreatedOn, eq.UpdatedOn)
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT id, owner_id, title, type, location, rate, status, created_on, updated_on FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&eq.ID, &eq.OwnerID, &eq.Title, &eq.Type, &eq.Location, &eq.Rate, &eq.Status, &eq.CreatedOn, &eq.UpdatedOn)
	if err != nil {
		return nil, err
	}
	images, err := r.GetImages(ctx, id)
	if err != nil {
		return nil, err
	}
	eq.Images = images
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET title=$1, type=$2, location=$3, rate=$4, status=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, eq.Title, eq.Type, eq.Location, eq.Rate, eq.Status, time.Now(), eq.ID)
	return err
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	query := `UPDATE equipment SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Equipment, error) {
	query := `SELECT id, owner_id, title, type, location, rate, status, created_on, updated_on
	          FROM equipment WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.OwnerID, &eq.Title, &eq.Type, &eq.Location, &eq.Rate, &eq.Status, &eq.CreatedOn, &eq.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) CreateImage(ctx context.Context, image *domain.EquipmentImage) error {
	query := `INSERT INTO equipment_images (id, equipment_id, file_name, file_path, mime_type, is_main, status, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	image.CreatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, image.ID, image.EquipmentID, image.FileName, image.FilePath, image.MimeType, image.IsMain, image.Status, image.ExpiresAt, image.CreatedOn)
	return err
}

func (r *equipmentRepository) GetImageByID(ctx context.Context, imageID string) (*domain.EquipmentImage, error) {
	img := &domain.EquipmentImage{}
	query := `SELECT id, equipment_id, file_name, file_path, mime_type, is_main, status, expires_at, created_on
	          FROM equipment_images WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, imageID).Scan(&img.ID, &img.EquipmentID, &img.FileName, &img.FilePath, &img.MimeType, &img.IsMain, &img.Status, &img.ExpiresAt, &img.CreatedOn)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *equipmentRepository) GetImages(ctx context.Context, equipmentID string) ([]domain.EquipmentImage, error) {
	query := `SELECT id, equipment_id, file_name, file_path, mime_type, is_main, status, expires_at, created_on
	          FROM equipment_images WHERE equipment_id = $1 AND status = 'CONFIRMED' ORDER BY is_main DESC, created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.EquipmentImage
	for rows.Next() {
		var img domain.EquipmentImage
		if err := rows.Scan(&img.ID, &img.EquipmentID, &img.FileName, &img.FilePath, &img.MimeType, &img.IsMain, &img.Status, &img.ExpiresAt, &img.CreatedOn); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *equipmentRepository) ConfirmImage(ctx context.Context, imageID string) error {
	query := `UPDATE equipment_images SET status='CONFIRMED', expires_at=NULL WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, imageID)
	return err
}

func (r *equipmentRepository) SetMainImage(ctx context.Context, equipmentID, imageID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE equipment_images SET is_main=false WHERE equipment_id=$1`, equipmentID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE equipment_images SET is_main=true WHERE id=$1 AND equipment_id=$2`, imageID, equipmentID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *equipmentRepository) DeleteImage(ctx context.Context, imageID string) error {
	query := `UPDATE equipment_images SET status='DELETED' WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, imageID)
	return err
}
