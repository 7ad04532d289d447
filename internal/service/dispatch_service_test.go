package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/duescall/duescall-backend/internal/config"
	appErrors "github.com/duescall/duescall-backend/internal/errors"
	"github.com/duescall/duescall-backend/internal/model"
	"github.com/duescall/duescall-backend/internal/service"
	"github.com/duescall/duescall-backend/internal/telephony"
)

// MockDialer records calls and answers from a per-number script.
type MockDialer struct {
	Calls  int
	DialFn func(to, voiceURL string) (*telephony.CallResult, error)
}

func (m *MockDialer) Dial(to, voiceURL string) (*telephony.CallResult, error) {
	m.Calls++
	return m.DialFn(to, voiceURL)
}

func sampleRecords() []model.CustomerRecord {
	return []model.CustomerRecord{
		{Name: "Asha", Phone: "+919800000001", LoanNo: "L100", Amount: "5000", DueDate: "12 May"},
		{Name: "Ravi", Phone: "+919800000002", LoanNo: "L101", Amount: "7500", DueDate: "15 May"},
	}
}

func TestDispatchDryRun(t *testing.T) {
	dialer := &MockDialer{DialFn: func(to, voiceURL string) (*telephony.CallResult, error) {
		t.Fatal("dialer must not be called in dry-run mode")
		return nil, nil
	}}
	svc := &service.DispatchService{
		Cfg:    config.AppConfig{DryRun: true},
		Dialer: dialer,
		Logger: zap.NewNop(),
	}

	result, err := svc.Dispatch(sampleRecords(), "http://example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.NotEmpty(t, result.BatchID)
	require.Len(t, result.Placed, 2)
	assert.Equal(t, 0, dialer.Calls)

	for _, p := range result.Placed {
		assert.True(t, p.DryRun)
		assert.Empty(t, p.SID)
		assert.Empty(t, p.Error)
	}
	assert.Equal(t, "+919800000001", result.Placed[0].To)
	assert.Contains(t, result.Placed[0].VoiceURL, "http://example.com/voice?")
	assert.Contains(t, result.Placed[0].VoiceURL, "name=Asha")
	assert.Contains(t, result.Placed[0].VoiceURL, "loan_no=L100")
	assert.Contains(t, result.Placed[0].VoiceURL, "amount=5000")
	assert.Contains(t, result.Placed[0].VoiceURL, "due_date=12+May")
}

func TestDispatchLivePartialFailure(t *testing.T) {
	dialer := &MockDialer{DialFn: func(to, voiceURL string) (*telephony.CallResult, error) {
		if to == "+919800000001" {
			return nil, fmt.Errorf("invalid phone number")
		}
		return &telephony.CallResult{SID: "CA123"}, nil
	}}
	svc := &service.DispatchService{
		Cfg:    config.AppConfig{DryRun: false},
		Dialer: dialer,
		Logger: zap.NewNop(),
	}

	result, err := svc.Dispatch(sampleRecords(), "http://example.com")
	require.NoError(t, err)

	require.Len(t, result.Placed, 2)
	assert.Equal(t, 2, dialer.Calls)

	failed, succeeded := result.Placed[0], result.Placed[1]
	assert.Equal(t, "invalid phone number", failed.Error)
	assert.Empty(t, failed.SID)
	assert.Equal(t, "CA123", succeeded.SID)
	assert.Empty(t, succeeded.Error)
	assert.Contains(t, succeeded.VoiceURL, "name=Ravi")
}

func TestDispatchLiveWithoutDialer(t *testing.T) {
	svc := &service.DispatchService{
		Cfg:    config.AppConfig{DryRun: false},
		Logger: zap.NewNop(),
	}

	_, err := svc.Dispatch(sampleRecords(), "http://example.com")

	var notConfigured *appErrors.ErrProviderNotConfigured
	require.True(t, errors.As(err, &notConfigured), "expected ErrProviderNotConfigured, got %v", err)
}

func TestDispatchTrimsBaseURLSlash(t *testing.T) {
	svc := &service.DispatchService{
		Cfg:    config.AppConfig{DryRun: true},
		Logger: zap.NewNop(),
	}

	result, err := svc.Dispatch(sampleRecords()[:1], "http://example.com/")
	require.NoError(t, err)
	assert.Contains(t, result.Placed[0].VoiceURL, "http://example.com/voice?")
}

func TestDispatchPreservesInputOrder(t *testing.T) {
	svc := &service.DispatchService{
		Cfg:    config.AppConfig{DryRun: true},
		Logger: zap.NewNop(),
	}

	result, err := svc.Dispatch(sampleRecords(), "http://example.com")
	require.NoError(t, err)
	assert.Equal(t, "+919800000001", result.Placed[0].To)
	assert.Equal(t, "+919800000002", result.Placed[1].To)
}
