package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequesterIDKey contextKey = "requester_id"
	RoleKey        contextKey = "role"
)

func GetRequesterIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	requesterVal := ctx.Value(RequesterIDKey)
	if requesterVal == nil {
		return uuid.Nil, false
	}

	requesterStr, ok := requesterVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	requesterID, err := uuid.Parse(requesterStr)
	if err != nil {
		return uuid.Nil, false
	}

	return requesterID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetRequesterContext(ctx context.Context, requesterID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, RequesterIDKey, requesterID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
