package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
)

type clients struct {
	catalog  *storefrontv1.CatalogServiceClient
	cart     *storefrontv1.CartServiceClient
	checkout *storefrontv1.CheckoutServiceClient
	orders   *storefrontv1.OrderServiceClient
	ratings  *storefrontv1.RatingServiceClient
}

func newClients(cc grpc.ClientConnInterface) clients {
	return clients{
		catalog:  storefrontv1.NewCatalogServiceClient(cc),
		cart:     storefrontv1.NewCartServiceClient(cc),
		checkout: storefrontv1.NewCheckoutServiceClient(cc),
		orders:   storefrontv1.NewOrderServiceClient(cc),
		ratings:  storefrontv1.NewRatingServiceClient(cc),
	}
}

// handle adapts one unary storefront call to HTTP. build turns the request
// into the gRPC message; basic auth credentials travel as call metadata.
func handle[Req, Resp any](log *slog.Logger, call func(context.Context, *Req, ...grpc.CallOption) (*Resp, error), build func(*http.Request) (*Req, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := withCredentials(w, r)
		if !ok {
			return
		}

		in, err := build(r)
		if err != nil {
			writeError(w, log, r, status.Error(codes.InvalidArgument, err.Error()))
			return
		}

		out, err := call(ctx, in)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func withCredentials(w http.ResponseWriter, r *http.Request) (context.Context, bool) {
	user, pass, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="storefront"`)
		writeJSON(w, http.StatusUnauthorized, errorBody{Code: "UNAUTHENTICATED", Message: "credentials required"})
		return nil, false
	}
	return auth.OutgoingContext(r.Context(), user, pass), true
}

func empty[Req any](*http.Request) (*Req, error) { return new(Req), nil }

func decodeBody[Req any](r *http.Request) (*Req, error) {
	in := new(Req)
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(in); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return in, nil
}

func productFromPath(r *http.Request) (*storefrontv1.CartProductRequest, error) {
	return &storefrontv1.CartProductRequest{ProductID: r.PathValue("id")}, nil
}

func orderFromPath(r *http.Request) (*storefrontv1.OrderIDRequest, error) {
	return &storefrontv1.OrderIDRequest{ID: r.PathValue("id")}, nil
}

func registerRoutes(mux *http.ServeMux, c clients, log *slog.Logger) {
	// Catalog
	mux.HandleFunc("GET /v1/products", handle(log, c.catalog.ListProducts, func(r *http.Request) (*storefrontv1.ListProductsRequest, error) {
		q := r.URL.Query()
		req := &storefrontv1.ListProductsRequest{Query: q.Get("q"), Cursor: q.Get("cursor")}
		if v := q.Get("limit"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, errors.New("limit must be an integer")
			}
			req.Limit = int32(n)
		}
		return req, nil
	}))
	mux.HandleFunc("GET /v1/products/{id}", handle(log, c.catalog.GetProduct, func(r *http.Request) (*storefrontv1.GetProductRequest, error) {
		return &storefrontv1.GetProductRequest{ID: r.PathValue("id")}, nil
	}))

	// Cart
	mux.HandleFunc("GET /v1/cart", handle(log, c.cart.GetCart, empty[storefrontv1.GetCartRequest]))
	mux.HandleFunc("POST /v1/cart/lines", handle(log, c.cart.AddProduct, decodeBody[storefrontv1.CartProductRequest]))
	mux.HandleFunc("POST /v1/cart/lines/{id}/increment", handle(log, c.cart.Increment, productFromPath))
	mux.HandleFunc("POST /v1/cart/lines/{id}/decrement", handle(log, c.cart.Decrement, productFromPath))
	mux.HandleFunc("DELETE /v1/cart/lines/{id}", handle(log, c.cart.RemoveLine, productFromPath))

	// Checkout
	mux.HandleFunc("GET /v1/checkout/quote", handle(log, c.checkout.Quote, empty[storefrontv1.QuoteRequest]))
	mux.HandleFunc("POST /v1/orders", handle(log, c.checkout.PlaceOrder, decodeBody[storefrontv1.PlaceOrderRequest]))

	// Orders
	mux.HandleFunc("GET /v1/orders", handle(log, c.orders.ListCustomerOrders, empty[storefrontv1.ListOrdersRequest]))
	mux.HandleFunc("GET /v1/orders/{id}", handle(log, c.orders.GetOrder, func(r *http.Request) (*storefrontv1.GetOrderRequest, error) {
		return &storefrontv1.GetOrderRequest{ID: r.PathValue("id")}, nil
	}))
	mux.HandleFunc("POST /v1/orders/{id}/cancel", handle(log, c.orders.CancelOrder, orderFromPath))
	mux.HandleFunc("DELETE /v1/orders/{id}", handle(log, c.orders.DeleteForCustomer, orderFromPath))
	mux.HandleFunc("GET /v1/orders/watch", watchOrders(log, c.orders))

	mux.HandleFunc("GET /v1/admin/orders", handle(log, c.orders.ListAdminOrders, func(r *http.Request) (*storefrontv1.ListOrdersRequest, error) {
		archived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))
		return &storefrontv1.ListOrdersRequest{Archived: archived}, nil
	}))
	mux.HandleFunc("POST /v1/admin/orders/{id}/status", handle(log, c.orders.UpdateStatus, func(r *http.Request) (*storefrontv1.UpdateStatusRequest, error) {
		in, err := decodeBody[storefrontv1.UpdateStatusRequest](r)
		if err != nil {
			return nil, err
		}
		in.ID = r.PathValue("id")
		return in, nil
	}))
	mux.HandleFunc("POST /v1/admin/orders/{id}/advance", handle(log, c.orders.AdvanceOrder, orderFromPath))
	mux.HandleFunc("POST /v1/admin/orders/{id}/archive", handle(log, c.orders.ArchiveOrder, orderFromPath))
	mux.HandleFunc("DELETE /v1/admin/orders/{id}", handle(log, c.orders.RemoveOrder, orderFromPath))

	// Ratings
	mux.HandleFunc("POST /v1/ratings", handle(log, c.ratings.SubmitRating, decodeBody[storefrontv1.SubmitRatingRequest]))
	mux.HandleFunc("GET /v1/ratings", handle(log, c.ratings.ListRatings, empty[storefrontv1.ListRatingsRequest]))
	mux.HandleFunc("GET /v1/ratings/summary", handle(log, c.ratings.RatingSummary, empty[storefrontv1.RatingSummaryRequest]))
}

// watchOrders relays the order stream as server-sent events, one JSON view per
// event.
func watchOrders(log *slog.Logger, orders *storefrontv1.OrderServiceClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := withCredentials(w, r)
		if !ok {
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeJSON(w, http.StatusInternalServerError, errorBody{Code: "INTERNAL", Message: "streaming unsupported"})
			return
		}

		archived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))
		stream, err := orders.WatchOrders(ctx, &storefrontv1.WatchOrdersRequest{Archived: archived})
		if err != nil {
			writeError(w, log, r, err)
			return
		}

		// Auth failures surface on the first receive.
		view, err := stream.Recv()
		if err != nil {
			writeError(w, log, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)

		for {
			payload, err := json.Marshal(view)
			if err != nil {
				log.ErrorContext(ctx, "encode order view", slog.Any("err", err))
				return
			}
			if _, err := fmt.Fprintf(w, "event: orders\ndata: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()

			view, err = stream.Recv()
			if err != nil {
				if status.Code(err) != codes.Canceled && !errors.Is(err, io.EOF) {
					log.WarnContext(ctx, "order watch ended", slog.Any("err", err))
				}
				return
			}
		}
	}
}
