// internal/service/dispatch_service.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/duescall/duescall-backend/internal/config"
	appErrors "github.com/duescall/duescall-backend/internal/errors"
	"github.com/duescall/duescall-backend/internal/model"
	"github.com/duescall/duescall-backend/internal/telephony"
)

// DispatchService places one call per customer record, sequentially and in
// input order. A single record's failure never aborts the batch.
type DispatchService struct {
	Cfg    config.AppConfig
	Dialer telephony.Dialer
	Logger *zap.Logger
}

// Dispatch builds a callback URL per record and, unless running dry, places
// the call through the dialer. In live mode with no dialer configured the
// whole batch aborts before any call is placed.
func (s *DispatchService) Dispatch(records []model.CustomerRecord, baseURL string) (*model.DispatchResult, error) {
	if !s.Cfg.DryRun && s.Dialer == nil {
		return nil, appErrors.NewProviderNotConfigured()
	}

	batchID := uuid.NewString()
	base := strings.TrimRight(baseURL, "/")

	placed := make([]model.CallPlacement, 0, len(records))
	for _, rec := range records {
		voiceURL := base + "/voice?" + rec.QueryValues().Encode()

		if s.Cfg.DryRun {
			placed = append(placed, model.CallPlacement{
				To:       rec.Phone,
				VoiceURL: voiceURL,
				DryRun:   true,
			})
			continue
		}

		result, err := s.Dialer.Dial(rec.Phone, voiceURL)
		if err != nil {
			s.Logger.Warn("call placement failed",
				zap.String("batch_id", batchID),
				zap.String("to", rec.Phone),
				zap.Error(err))
			placed = append(placed, model.CallPlacement{
				To:    rec.Phone,
				Error: err.Error(),
			})
			continue
		}

		s.Logger.Info("call placed",
			zap.String("batch_id", batchID),
			zap.String("to", rec.Phone),
			zap.String("sid", result.SID))
		placed = append(placed, model.CallPlacement{
			To:       rec.Phone,
			VoiceURL: voiceURL,
			SID:      result.SID,
		})
	}

	return &model.DispatchResult{
		BatchID: batchID,
		Count:   len(placed),
		Placed:  placed,
	}, nil
}
