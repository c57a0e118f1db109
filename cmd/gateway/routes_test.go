package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
	"github.com/dwikikusuma/refill-store/pkg/logger"
)

func TestHandle_RequiresBasicAuth(t *testing.T) {
	called := false
	h := handle(logger.Discard(),
		func(context.Context, *storefrontv1.GetCartRequest, ...grpc.CallOption) (*storefrontv1.Cart, error) {
			called = true
			return &storefrontv1.Cart{}, nil
		},
		empty[storefrontv1.GetCartRequest])

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v1/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	assert.False(t, called)
}

func TestHandle_ForwardsCredentialsAndBody(t *testing.T) {
	var gotMD metadata.MD
	var gotReq *storefrontv1.PlaceOrderRequest
	h := handle(logger.Discard(),
		func(ctx context.Context, in *storefrontv1.PlaceOrderRequest, _ ...grpc.CallOption) (*storefrontv1.PlaceOrderResponse, error) {
			gotMD, _ = metadata.FromOutgoingContext(ctx)
			gotReq = in
			return &storefrontv1.PlaceOrderResponse{Order: storefrontv1.Order{ID: "o-1", Status: "pending"}}, nil
		},
		decodeBody[storefrontv1.PlaceOrderRequest])

	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(`{"delivery_address":"12 Mabini St"}`))
	req.SetBasicAuth("juan", "secret")
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"juan"}, gotMD.Get(auth.MetadataUsername))
	assert.Equal(t, []string{"secret"}, gotMD.Get(auth.MetadataPassword))
	assert.Equal(t, "12 Mabini St", gotReq.DeliveryAddress)

	var body storefrontv1.PlaceOrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "o-1", body.Order.ID)
}

func TestHandle_MapsErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		callErr  error
		wantCode int
		wantBody string
	}{
		{name: "malformed body", body: `{`, wantCode: http.StatusBadRequest, wantBody: "INVALID_ARGUMENT"},
		{name: "invalid transition", body: `{"status":"delivered"}`, callErr: status.Error(codes.FailedPrecondition, "invalid status transition"), wantCode: http.StatusConflict, wantBody: "FAILED_PRECONDITION"},
		{name: "forbidden", body: `{"status":"preparing"}`, callErr: status.Error(codes.PermissionDenied, "forbidden"), wantCode: http.StatusForbidden, wantBody: "PERMISSION_DENIED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			var gotID string
			mux.HandleFunc("POST /v1/admin/orders/{id}/status", handle(logger.Discard(),
				func(_ context.Context, in *storefrontv1.UpdateStatusRequest, _ ...grpc.CallOption) (*storefrontv1.Empty, error) {
					gotID = in.ID
					if tt.callErr != nil {
						return nil, tt.callErr
					}
					return &storefrontv1.Empty{}, nil
				},
				func(r *http.Request) (*storefrontv1.UpdateStatusRequest, error) {
					in, err := decodeBody[storefrontv1.UpdateStatusRequest](r)
					if err != nil {
						return nil, err
					}
					in.ID = r.PathValue("id")
					return in, nil
				}))

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/orders/o-9/status", strings.NewReader(tt.body))
			req.SetBasicAuth("admin", "secret")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.callErr != nil {
				assert.Equal(t, "o-9", gotID)
			}
		})
	}
}
