package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	MetadataUsername = "x-username"
	MetadataPassword = "x-password"
)

// Methods under these prefixes skip authentication.
var publicPrefixes = []string{"/grpc.health.v1.Health/"}

func isPublic(fullMethod string) bool {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(fullMethod, p) {
			return true
		}
	}
	return false
}

func (a *Authenticator) authenticate(ctx context.Context) (context.Context, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	user := first(md.Get(MetadataUsername))
	pass := first(md.Get(MetadataPassword))

	s, err := a.Login(user, pass)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return WithSession(ctx, s), nil
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (a *Authenticator) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublic(info.FullMethod) {
			return handler(ctx, req)
		}
		ctx, err := a.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

type sessionStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *sessionStream) Context() context.Context { return s.ctx }

func (a *Authenticator) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if isPublic(info.FullMethod) {
			return handler(srv, ss)
		}
		ctx, err := a.authenticate(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &sessionStream{ServerStream: ss, ctx: ctx})
	}
}

// OutgoingContext attaches credentials for a storefront call.
func OutgoingContext(ctx context.Context, username, password string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, MetadataUsername, username, MetadataPassword, password)
}

// StatusError maps session errors to gRPC status errors. Other errors are
// returned unchanged.
func StatusError(err error) error {
	switch err {
	case ErrUnauthenticated:
		return status.Error(codes.Unauthenticated, err.Error())
	case ErrForbidden:
		return status.Error(codes.PermissionDenied, err.Error())
	}
	return err
}
