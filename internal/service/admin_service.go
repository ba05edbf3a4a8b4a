package service

import (
	"context"
	"time"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/repository/memory"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/pkg/access"
	"motoservice-be/pkg/admin/abuse"

	"github.com/google/uuid"
)

const (
	defaultLogPage  = 1
	defaultLogLimit = 20
)

type IAdminService interface {
	// Abuse monitoring
	AbuseReport(ctx context.Context, actor entity.Actor) (*dto.AbuseReportResponse, error)
	HighRiskShops(ctx context.Context, actor entity.Actor) ([]dto.HighRiskShopResponse, error)

	// Audit trail
	Logs(ctx context.Context, actor entity.Actor, req *dto.AdminLogListRequest) (*dto.AdminLogListResponse, error)

	// Assignment
	TriggerSweep(ctx context.Context, actor entity.Actor) (*dto.SweepResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	scorer     *abuse.Scorer
	cache      *memory.ReportCache
	assigner   IAssignmentService
	logger     logger.ILogger
	now        func() time.Time
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	scorer *abuse.Scorer,
	cache *memory.ReportCache,
	assigner IAssignmentService,
	logger logger.ILogger,
	now func() time.Time,
) IAdminService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &adminService{
		uowFactory: uowFactory,
		scorer:     scorer,
		cache:      cache,
		assigner:   assigner,
		logger:     logger,
		now:        now,
	}
}

func requireAdmin(actor entity.Actor) error {
	if !access.AdminOnly.Allows(actor, access.Subject{}) {
		return apperror.AuthorizationDenied("admin access required")
	}
	return nil
}

func (s *adminService) AbuseReport(ctx context.Context, actor entity.Actor) (*dto.AbuseReportResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if cached, ok := s.cache.GetAbuseReport(); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()

	flags, err := s.scorer.Report(ctx, uow, now)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to build abuse report", err)
	}

	report := &dto.AbuseReportResponse{
		GeneratedAt: now,
		Flags:       make([]dto.AbuseFlagResponse, 0, len(flags)),
	}
	for _, f := range flags {
		report.Flags = append(report.Flags, dto.AbuseFlagResponse{
			ShopId:   f.ShopId,
			ShopName: f.ShopName,
			Type:     f.Type,
			Severity: string(f.Severity),
			Count:    f.Count,
			Rate:     f.Rate,
		})
	}

	s.cache.SaveAbuseReport(report)
	return report, nil
}

func (s *adminService) HighRiskShops(ctx context.Context, actor entity.Actor) ([]dto.HighRiskShopResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if cached, ok := s.cache.GetHighRiskShops(); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	shops, err := s.scorer.HighRiskShops(ctx, uow)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to compute high risk shops", err)
	}

	res := make([]dto.HighRiskShopResponse, 0, len(shops))
	for _, shop := range shops {
		res = append(res, dto.HighRiskShopResponse{
			ShopId:      shop.ShopId,
			ShopName:    shop.ShopName,
			NoShowCount: shop.NoShowCount,
			TotalCount:  shop.TotalCount,
			NoShowRate:  shop.NoShowRate,
		})
	}

	s.cache.SaveHighRiskShops(res)
	return res, nil
}

func (s *adminService) Logs(ctx context.Context, actor entity.Actor, req *dto.AdminLogListRequest) (*dto.AdminLogListResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	page, limit := req.Page, req.Limit
	if page < 1 {
		page = defaultLogPage
	}
	if limit < 1 {
		limit = defaultLogLimit
	}

	var filters []specification.Specification
	if req.SubjectId != "" {
		subjectId, err := uuid.Parse(req.SubjectId)
		if err != nil {
			return nil, apperror.ValidationFailure("subject_id must be a uuid")
		}
		filters = append(filters, specification.BySubjectID{SubjectID: subjectId})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.AdminLogRepository().Count(ctx, filters...)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to count admin logs", err)
	}

	specs := append(filters, specification.Pagination{Limit: limit, Offset: (page - 1) * limit})
	logs, err := uow.AdminLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load admin logs", err)
	}

	items := make([]dto.AdminLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toAdminLogResponse(l))
	}

	return &dto.AdminLogListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *adminService) TriggerSweep(ctx context.Context, actor entity.Actor) (*dto.SweepResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	res, err := s.assigner.Sweep(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SWEEPER", "Manual sweep triggered", map[string]interface{}{
		"admin_id": actor.Id.String(),
		"scanned":  res.Scanned,
		"assigned": res.Assigned,
		"skipped":  res.Skipped,
	})
	return res, nil
}
