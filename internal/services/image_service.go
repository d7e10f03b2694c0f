package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"wematch_backend/internal/imageprocessor"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/services/dto"
	"wematch_backend/internal/storage"
	"wematch_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// StoredImage - сохраненный объект: ключ в хранилище и публичный URL
type StoredImage struct {
	Key string
	URL string
}

type ImageService interface {
	// Store проверяет размер и тип, при необходимости уменьшает и сохраняет изображение
	Store(ctx context.Context, folder string, img *dto.ImageUpload) (*StoredImage, error)
	// Remove удаляет объект; ошибки только логируются
	Remove(ctx context.Context, key string)
	MaxSize() int64
}

type ImageConfig struct {
	MaxSize      int64
	AllowedTypes []string
	Quality      int
	MaxDimension int
	MaxPixels    int64
}

type imageService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	maxSize   int64
	maxPixels int64
	allowed   map[string]bool
	types     []string
}

func NewImageService(storage storage.Storage, cfg ImageConfig) ImageService {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[t] = true
	}
	return &imageService{
		storage:   storage,
		processor: imageprocessor.NewProcessor(cfg.Quality, cfg.MaxDimension, cfg.MaxPixels),
		maxSize:   cfg.MaxSize,
		maxPixels: cfg.MaxPixels,
		allowed:   allowed,
		types:     cfg.AllowedTypes,
	}
}

func (s *imageService) MaxSize() int64 {
	return s.maxSize
}

func (s *imageService) Store(ctx context.Context, folder string, img *dto.ImageUpload) (*StoredImage, error) {
	if int64(len(img.Data)) > s.maxSize {
		return nil, apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"maxSize": s.maxSize})
	}

	head := img.Data
	if len(head) > 512 {
		head = head[:512]
	}
	declared := imageprocessor.DetectContentType(img.ContentType, head)
	if !s.allowed[declared] {
		return nil, s.typeError(declared)
	}

	prepared, err := s.processor.Prepare(img.Data)
	if err != nil {
		if errors.Is(err, imageprocessor.ErrInvalidImage) {
			return nil, s.typeError(declared)
		}
		if errors.Is(err, imageprocessor.ErrTooManyPixels) {
			return nil, apperrors.ErrImageTooLarge.WithDetails(map[string]int64{"maxPixels": s.maxPixels})
		}
		return nil, apperrors.InternalError(err)
	}
	// Заявленный тип мог не совпасть с содержимым
	if !s.allowed[prepared.ContentType] {
		return nil, s.typeError(prepared.ContentType)
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), prepared.Ext)
	if err := s.storage.Save(ctx, key, bytes.NewReader(prepared.Data), prepared.ContentType); err != nil {
		return nil, apperrors.ErrStorage(err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		s.Remove(ctx, key)
		return nil, apperrors.ErrStorage(err)
	}

	logger.CtxDebug(ctx, "Image stored",
		"key", key,
		"content_type", prepared.ContentType,
		"resized", prepared.Resized,
		"width", prepared.Width,
		"height", prepared.Height,
	)
	return &StoredImage{Key: key, URL: url}, nil
}

func (s *imageService) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "Failed to remove stored image", err, "key", key)
	}
}

func (s *imageService) typeError(contentType string) error {
	return apperrors.ErrInvalidFileType.WithDetails(map[string]interface{}{
		"contentType": contentType,
		"allowed":     s.types,
	})
}
