package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/data"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/repo"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/engine"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/model"
)

// fakeSynthesizer 返回预设结果，并记录收到的关注领域
type fakeSynthesizer struct {
	credErr    error
	result     func(focusAreas []domain.FocusArea) *engine.Result
	gotKey     string
	gotFocus   []domain.FocusArea
	synthCalls int
}

func (f *fakeSynthesizer) ResolveCredential() (engine.Credential, error) {
	if f.credErr != nil {
		return engine.Credential{}, f.credErr
	}
	return engine.Credential{Key: "AIza-test", Source: "API_KEY"}, nil
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, apiKey string, focusAreas []domain.FocusArea) *engine.Result {
	f.synthCalls++
	f.gotKey = apiKey
	f.gotFocus = focusAreas
	return f.result(focusAreas)
}

func degraded(now time.Time) func([]domain.FocusArea) *engine.Result {
	return func(focus []domain.FocusArea) *engine.Result {
		return &engine.Result{
			Payload:  engine.SyntheticPayload(now, focus),
			Degraded: true,
			Cause:    errors.New("quota exceeded"),
		}
	}
}

func generated(p *model.Payload) func([]domain.FocusArea) *engine.Result {
	return func([]domain.FocusArea) *engine.Result {
		return &engine.Result{Payload: p}
	}
}

func newTestRepo(seed data.Seed) repo.DashboardRepo {
	return data.NewDashboardRepo(data.NewStore(seed), log.DefaultLogger)
}

func newTestRefresh(r repo.DashboardRepo, synth Synthesizer) *RefreshUseCase {
	return NewRefreshUseCase(r, NewDashboardUseCase(r, log.DefaultLogger), synth, log.DefaultLogger)
}
