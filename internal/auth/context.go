package auth

import "context"

// Kind 区分后台用户与小程序用户
type Kind string

const (
	KindAdmin  Kind = "admin"
	KindClient Kind = "client"
)

// Identity 当前请求的操作人
type Identity struct {
	UserID int64
	Name   string
	Kind   Kind
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
