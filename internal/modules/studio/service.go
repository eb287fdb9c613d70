package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancestudio/internal/domain"
	"dancestudio/internal/storage"
)

// Service manages the owner's studio profile. The profile row is
// created during registration, so reads expect it to exist; the image
// lives in the blob store under studio-images/<owner-id>/ and the
// profile row only carries its URL.
type Service struct {
	profiles ProfileRepositoryInterface
	store    storage.Store
}

func NewService(profiles ProfileRepositoryInterface, store storage.Store) *Service {
	return &Service{profiles: profiles, store: store}
}

func (s *Service) GetProfile(ctx context.Context, ownerID int64) (*domain.OwnerProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateProfile replaces the editable fields. The stored image URL is
// preserved; image changes go through UploadImage and DeleteImage.
func (s *Service) UpdateProfile(ctx context.Context, ownerID int64, req UpdateProfileRequest) (*domain.OwnerProfile, error) {
	current, err := s.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	p := &domain.OwnerProfile{
		ID:         current.ID,
		UserID:     ownerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address1:   req.Address1,
		Address2:   req.Address2,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
		StudioName: req.StudioName,
		ImageURL:   current.ImageURL,
		Website:    req.Website,
		Facebook:   req.Facebook,
		Instagram:  req.Instagram,
		TikTok:     req.TikTok,
		CreatedAt:  current.CreatedAt,
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UploadImage stores a new studio image and swaps the profile URL to
// it. The previous blob is deleted afterwards; a failed delete only
// leaves an orphan on disk, so it is logged and ignored.
func (s *Service) UploadImage(ctx context.Context, ownerID int64, filename string, r io.Reader) (*domain.OwnerProfile, error) {
	p, err := s.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("studio-images/%d/%s%s", ownerID, uuid.NewString(), filepath.Ext(filename))
	url, err := s.store.Save(path, r)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateImageURL(ctx, ownerID, url); err != nil {
		s.dropBlob(url)
		return nil, err
	}

	s.dropBlob(p.ImageURL)
	p.ImageURL = url
	return p, nil
}

// DeleteImage clears the profile image URL and removes the blob.
func (s *Service) DeleteImage(ctx context.Context, ownerID int64) error {
	p, err := s.GetProfile(ctx, ownerID)
	if err != nil {
		return err
	}
	if p.ImageURL == "" {
		return nil
	}

	if err := s.profiles.UpdateImageURL(ctx, ownerID, ""); err != nil {
		return err
	}
	s.dropBlob(p.ImageURL)
	return nil
}

func (s *Service) dropBlob(url string) {
	if url == "" || s.store == nil {
		return
	}
	path := s.store.PathFromURL(url)
	if path == "" {
		return
	}
	if err := s.store.Delete(path); err != nil {
		log.Printf("studio: delete blob %s: %v", path, err)
	}
}
