package auth

import (
	"context"

	"go-doormint-ledger/internal/model"
	apperrors "go-doormint-ledger/pkg/app_errors"
)

// Policy 注入式授權策略：mint / claim / burn 皆須通過此檢查。
// 身分驗證本身（錢包簽章等）在外部協作者完成，這裡只做能力判定
type Policy interface {
	// Allow 檢查 caller 是否為該活動的 organizer 或平台 admin；
	// 否則回傳 ErrNotAuthorized。活動不存在時回傳 ErrEventNotFound
	Allow(ctx context.Context, eventID string, caller string) error
}

// EventSource 提供 organizer 查詢；由 repository.EventRepository 滿足
type EventSource interface {
	FindByID(ctx context.Context, eventID string) (*model.Event, error)
}

type RBACPolicy struct {
	events EventSource
	admins map[string]struct{}
}

func NewRBACPolicy(events EventSource, adminIDs []string) *RBACPolicy {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &RBACPolicy{
		events: events,
		admins: admins,
	}
}

func (p *RBACPolicy) Allow(ctx context.Context, eventID string, caller string) error {
	if caller == "" {
		return apperrors.ErrNotAuthorized
	}
	if _, ok := p.admins[caller]; ok {
		return nil
	}

	event, err := p.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Organizer != caller {
		return apperrors.ErrNotAuthorized
	}
	return nil
}
