//go:build wireinject
// +build wireinject

package di

import (
	"inspirehub/config"
	"inspirehub/infras/jwt"
	"inspirehub/infras/kafka"
	"inspirehub/infras/mail"
	"inspirehub/infras/otel"
	"inspirehub/infras/postgres"
	"inspirehub/infras/redis"
	"inspirehub/infras/s3"
	"inspirehub/internal/worker"
	"inspirehub/permissions"
	"inspirehub/shared/cache"
	"inspirehub/transport/http"
	"inspirehub/transport/http/middleware"
	"inspirehub/transport/http/router"

	"github.com/google/wire"

	authService "inspirehub/internal/domains/auth/service"
	bookingRepository "inspirehub/internal/domains/booking/repository"
	bookingService "inspirehub/internal/domains/booking/service"
	documentRepository "inspirehub/internal/domains/document/repository"
	documentService "inspirehub/internal/domains/document/service"
	memberRepository "inspirehub/internal/domains/member/repository"
	memberService "inspirehub/internal/domains/member/service"
	noticeRepository "inspirehub/internal/domains/notice/repository"
	noticeService "inspirehub/internal/domains/notice/service"
	resourceRepository "inspirehub/internal/domains/resource/repository"
	resourceService "inspirehub/internal/domains/resource/service"
	scheduleService "inspirehub/internal/domains/schedule/service"
	authHandler "inspirehub/internal/handlers/auth"
	bookingHandler "inspirehub/internal/handlers/booking"
	documentHandler "inspirehub/internal/handlers/document"
	healthHandler "inspirehub/internal/handlers/health"
	memberHandler "inspirehub/internal/handlers/member"
	noticeHandler "inspirehub/internal/handlers/notice"
	resourceHandler "inspirehub/internal/handlers/resource"
	scheduleHandler "inspirehub/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var memberDomain = wire.NewSet(
	memberRepository.New,
	memberService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var noticeDomain = wire.NewSet(
	noticeRepository.New,
	noticeService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var domains = wire.NewSet(
	authDomain,
	memberDomain,
	resourceDomain,
	bookingDomain,
	scheduleDomain,
	noticeDomain,
	documentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	memberHandler.New,
	resourceHandler.New,
	bookingHandler.New,
	scheduleHandler.New,
	noticeHandler.New,
	documentHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSweeper() *worker.Sweeper {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		cache.NewRedisCache,
		resourceRepository.New,
		bookingDomain,
		worker.NewSweeper,
	)

	return &worker.Sweeper{}
}

func InitializeNotifier() *worker.Notifier {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		mail.New,
		memberRepository.New,
		worker.NewNotifier,
	)

	return &worker.Notifier{}
}
