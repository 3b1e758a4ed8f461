package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExportHandler_Create(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	t.Run("csv export returns a download url", func(t *testing.T) {
		s := newTestServer()
		s.export.On("CreateExport", mock.Anything, userID, "csv").Return(&service.ExportResult{
			Export:      domain.Export{ID: primitive.NewObjectID(), UserID: userID, Format: domain.ExportCSV, EntryCount: 3},
			DownloadURL: "https://s3.local/x.csv",
		}, nil)

		w := s.do(t, http.MethodPost, "/api/v1/exports", ExportRequest{Format: "csv"}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp service.ExportResult
		decode(t, w, &resp)
		assert.Equal(t, "https://s3.local/x.csv", resp.DownloadURL)
		assert.Equal(t, 3, resp.Export.EntryCount)
	})

	t.Run("empty body defaults the format", func(t *testing.T) {
		s := newTestServer()
		s.export.On("CreateExport", mock.Anything, userID, "").Return(&service.ExportResult{}, nil)

		w := s.do(t, http.MethodPost, "/api/v1/exports", nil, token)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unsupported format", func(t *testing.T) {
		s := newTestServer()
		w := s.do(t, http.MethodPost, "/api/v1/exports", ExportRequest{Format: "xml"}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.export.AssertNotCalled(t, "CreateExport", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStatsHandler(t *testing.T) {
	s := newTestServer()
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	s.stats.On("GetStats", mock.Anything, userID, "week").Return(&service.StatsReport{Period: "week"}, nil)
	s.stats.On("GetStreak", mock.Anything, userID).Return(&service.StreakInfo{Streak: 12, Message: "Amazing dedication! Keep it up!"}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/stats", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/stats/streak", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"streak":12,"message":"Amazing dedication! Keep it up!"}`, w.Body.String())
}
