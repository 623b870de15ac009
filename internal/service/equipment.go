package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/repository"
	"onerental-backend/internal/storage"

	"github.com/google/uuid"
)

// pendingImageTTL is how long an unconfirmed upload reservation stays valid.
const pendingImageTTL = 30 * time.Minute

// downloadURLTTL is how long a presigned image download link stays valid.
const downloadURLTTL = time.Hour

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	storageSvc    storage.StorageInterface
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, storageSvc storage.StorageInterface) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		storageSvc:    storageSvc,
	}
}

func (s *equipmentService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.ID == "" {
		eq.ID = uuid.NewString()
	}
	if eq.Status == "" {
		eq.Status = domain.EquipmentStatusAvailable
	}
	if eq.Title == "" {
		return fmt.Errorf("equipment title is required")
	}
	if eq.Rate < 0 {
		return fmt.Errorf("daily rate must not be negative")
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, ownerID string, eq *domain.Equipment) error {
	existing, err := s.equipmentRepo.GetByID(ctx, eq.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrUnauthorized
	}
	return s.equipmentRepo.Update(ctx, eq)
}

// SetStatus is a soft state change: the row and its booking history stay.
func (s *equipmentService) SetStatus(ctx context.Context, ownerID, equipmentID string, status domain.EquipmentStatus) error {
	existing, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrUnauthorized
	}
	switch status {
	case domain.EquipmentStatusAvailable, domain.EquipmentStatusInactive, domain.EquipmentStatusMaintenance:
	default:
		return fmt.Errorf("unknown equipment status %q", status)
	}
	return s.equipmentRepo.UpdateStatus(ctx, equipmentID, status)
}

func (s *equipmentService) ListMyEquipment(ctx context.Context, ownerID string) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListByOwner(ctx, ownerID)
}

func (s *equipmentService) RequestImageUpload(ctx context.Context, ownerID, equipmentID, fileName, contentType string, isMain bool) (*domain.EquipmentImage, string, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, "", err
	}
	if eq.OwnerID != ownerID {
		return nil, "", ErrUnauthorized
	}

	imageID := uuid.NewString()
	key := fmt.Sprintf("equipment/%s/%s%s", equipmentID, imageID, filepath.Ext(fileName))
	expires := time.Now().Add(pendingImageTTL)

	image := &domain.EquipmentImage{
		ID:          imageID,
		EquipmentID: equipmentID,
		FileName:    fileName,
		FilePath:    key,
		MimeType:    contentType,
		IsMain:      isMain,
		Status:      "PENDING",
		ExpiresAt:   &expires,
	}
	if err := s.equipmentRepo.CreateImage(ctx, image); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.storageSvc.GeneratePresignedUploadURL(ctx, key, contentType, pendingImageTTL)
	if err != nil {
		return nil, "", fmt.Errorf("upload URL generation failed: %w", err)
	}
	return image, uploadURL, nil
}

func (s *equipmentService) ConfirmImageUpload(ctx context.Context, ownerID, imageID string) (*domain.EquipmentImage, error) {
	image, err := s.equipmentRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	eq, err := s.equipmentRepo.GetByID(ctx, image.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	exists, _, err := s.storageSvc.FileExists(ctx, image.FilePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("no uploaded file found for image %s", imageID)
	}

	if err := s.equipmentRepo.ConfirmImage(ctx, imageID); err != nil {
		return nil, err
	}
	image.Status = "CONFIRMED"
	image.ExpiresAt = nil

	if image.IsMain {
		if err := s.equipmentRepo.SetMainImage(ctx, image.EquipmentID, imageID); err != nil {
			return nil, err
		}
	}
	return image, nil
}

func (s *equipmentService) SetMainImage(ctx context.Context, ownerID, equipmentID, imageID string) error {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if eq.OwnerID != ownerID {
		return ErrUnauthorized
	}
	return s.equipmentRepo.SetMainImage(ctx, equipmentID, imageID)
}

// DeleteImage removes the stored file first; if that fails the image record
// stays so the delete can be retried.
func (s *equipmentService) DeleteImage(ctx context.Context, ownerID, imageID string) error {
	image, err := s.equipmentRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	eq, err := s.equipmentRepo.GetByID(ctx, image.EquipmentID)
	if err != nil {
		return err
	}
	if eq.OwnerID != ownerID {
		return ErrUnauthorized
	}

	if err := s.storageSvc.DeleteFile(ctx, image.FilePath); err != nil {
		return fmt.Errorf("stored file removal failed: %w", err)
	}
	return s.equipmentRepo.DeleteImage(ctx, imageID)
}

// ImageDownloadURL returns a short-lived presigned link for a confirmed image.
func (s *equipmentService) ImageDownloadURL(ctx context.Context, equipmentID, imageID string) (string, error) {
	image, err := s.equipmentRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	if image.EquipmentID != equipmentID {
		return "", fmt.Errorf("image %s does not belong to equipment %s", imageID, equipmentID)
	}
	if image.Status != "CONFIRMED" {
		return "", fmt.Errorf("image %s is not confirmed", imageID)
	}
	return s.storageSvc.GeneratePresignedDownloadURL(ctx, image.FilePath, downloadURLTTL)
}
