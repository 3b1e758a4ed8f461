package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/logger"
	"alcyxob/nutrition-app/internal/repository"
	"alcyxob/nutrition-app/internal/storage"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrInvalidExportFormat = errors.New("export format must be json or csv")
	ErrExportFailed        = errors.New("failed to export meal logs")
)

// ExportResult is export metadata with a temporary download URL.
type ExportResult struct {
	Export      domain.Export `json:"export"`
	DownloadURL string        `json:"downloadUrl"`
}

type ExportService interface {
	// CreateExport serializes every meal log of the user and uploads it.
	CreateExport(ctx context.Context, userID primitive.ObjectID, format string) (*ExportResult, error)
	ListExports(ctx context.Context, userID primitive.ObjectID) ([]ExportResult, error)
}

type exportService struct {
	mealLogRepo repository.MealLogRepository
	exportRepo  repository.ExportRepository
	fileStorage storage.FileStorage
	urlExpiry   time.Duration
	logger      *zap.Logger
}

func NewExportService(mealLogRepo repository.MealLogRepository, exportRepo repository.ExportRepository, fileStorage storage.FileStorage, log *zap.Logger) ExportService {
	return &exportService{
		mealLogRepo: mealLogRepo,
		exportRepo:  exportRepo,
		fileStorage: fileStorage,
		urlExpiry:   storage.DefaultPresignedURLExpiry,
		logger:      logger.OrNop(log),
	}
}

func parseExportFormat(s string) (domain.ExportFormat, error) {
	switch f := domain.ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case domain.ExportJSON, domain.ExportCSV:
		return f, nil
	case "":
		return domain.ExportJSON, nil
	default:
		return "", ErrInvalidExportFormat
	}
}

var csvHeader = []string{"date", "time", "meal_type", "calories", "proteins", "fats", "carbohydrates", "description"}

// encodeMealLogs writes entries as a JSON array or as CSV with a header row.
func encodeMealLogs(entries []domain.MealLogEntry, format domain.ExportFormat) ([]byte, error) {
	var buf bytes.Buffer
	if format == domain.ExportJSON {
		if entries == nil {
			entries = []domain.MealLogEntry{}
		}
		if err := json.NewEncoder(&buf).Encode(entries); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{
			e.MealDate,
			e.MealTime,
			string(e.MealType),
			strconv.Itoa(e.Calories),
			strconv.Itoa(e.Proteins),
			strconv.Itoa(e.Fats),
			strconv.Itoa(e.Carbohydrates),
			e.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportObjectKey(userID primitive.ObjectID, format domain.ExportFormat) string {
	return path.Join("exports", userID.Hex(), uuid.NewString()+"."+string(format))
}

func (s *exportService) CreateExport(ctx context.Context, userID primitive.ObjectID, format string) (*ExportResult, error) {
	f, err := parseExportFormat(format)
	if err != nil {
		return nil, err
	}

	entries, err := s.mealLogRepo.List(ctx, repository.MealLogFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	body, err := encodeMealLogs(entries, f)
	if err != nil {
		s.logger.Error("encoding export", zap.String("userID", userID.Hex()), zap.Error(err))
		return nil, ErrExportFailed
	}

	objectKey := exportObjectKey(userID, f)
	if err = s.fileStorage.PutObject(ctx, objectKey, f.ContentType(), bytes.NewReader(body)); err != nil {
		s.logger.Error("uploading export", zap.String("objectKey", objectKey), zap.Error(err))
		return nil, ErrExportFailed
	}

	export := &domain.Export{
		UserID:      userID,
		S3ObjectKey: objectKey,
		Format:      f,
		EntryCount:  len(entries),
	}
	id, err := s.exportRepo.Create(ctx, export)
	if err != nil {
		if delErr := s.fileStorage.DeleteObject(ctx, objectKey); delErr != nil {
			s.logger.Warn("removing orphaned export object", zap.String("objectKey", objectKey), zap.Error(delErr))
		}
		return nil, fmt.Errorf("saving export metadata: %w", err)
	}
	export.ID = id

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("generating download url: %w", err)
	}
	s.logger.Info("meal logs exported",
		zap.String("userID", userID.Hex()),
		zap.String("format", string(f)),
		zap.Int("entries", len(entries)),
	)
	return &ExportResult{Export: *export, DownloadURL: url}, nil
}

func (s *exportService) ListExports(ctx context.Context, userID primitive.ObjectID) ([]ExportResult, error) {
	exports, err := s.exportRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	results := make([]ExportResult, 0, len(exports))
	for _, e := range exports {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, e.S3ObjectKey, s.urlExpiry)
		if err != nil {
			return nil, fmt.Errorf("generating download url for export %s: %w", e.ID.Hex(), err)
		}
		results = append(results, ExportResult{Export: e, DownloadURL: url})
	}
	return results, nil
}
