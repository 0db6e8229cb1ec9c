package utils

import (
	"context"
	"petgromee-web/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetVisitorID(ctx context.Context) string {
	if visitorID, ok := ctx.Value(constvars.CONTEXT_VISITOR_ID_KEY).(string); ok {
		return visitorID
	}
	return ""
}
