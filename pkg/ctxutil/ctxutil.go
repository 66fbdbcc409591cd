// Package ctxutil carries request-scoped values that every layer reads:
// the owning identity and its role, the request id and the client address.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithUserID scopes ctx to an identity. Storage adapters use it as the row owner.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the identity set by WithUserID. uuid.Nil is treated
// as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole records the role resolved for the request's identity.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx reports false when no role was resolved.
func RoleFromCtx(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

func IsAdminCtx(ctx context.Context) bool {
	role, _ := RoleFromCtx(ctx)
	return role.IsAdmin()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" when no id was set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx returns "" when no address was recorded.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
