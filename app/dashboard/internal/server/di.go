package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/data"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/service"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/usecase"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/engine"
)

// ProviderSet 是仪表盘服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewRadarEngine,
	wire.Bind(new(usecase.Synthesizer), new(*engine.Engine)),

	// Data providers
	data.NewData,
	data.NewDashboardRepo,

	// UseCase providers
	usecase.NewDashboardUseCase,
	usecase.NewAnnotateUseCase,
	usecase.NewRefreshUseCase,

	// Service providers
	service.NewDashboardService,
)
