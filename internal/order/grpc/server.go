package grpc

import (
	"context"
	"errors"
	"sync"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"
	"github.com/dwikikusuma/refill-store/internal/order/app"
	"github.com/dwikikusuma/refill-store/internal/order/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	ledger *app.Ledger

	done      chan struct{}
	closeOnce sync.Once
}

func NewServer(ledger *app.Ledger) *Server {
	return &Server{ledger: ledger, done: make(chan struct{})}
}

// Close ends every open WatchOrders stream so a graceful stop need not wait
// for watchers to hang up. Safe to call more than once.
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Server) ListCustomerOrders(ctx context.Context, _ *storefrontv1.ListOrdersRequest) (*storefrontv1.ListOrdersResponse, error) {
	sess, err := auth.Require(ctx, auth.OpListOwnOrders)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	return toListResponse(s.ledger.CustomerOrders(sess.Username)), nil
}

func (s *Server) ListAdminOrders(ctx context.Context, req *storefrontv1.ListOrdersRequest) (*storefrontv1.ListOrdersResponse, error) {
	if _, err := auth.Require(ctx, auth.OpListAllOrders); err != nil {
		return nil, auth.StatusError(err)
	}
	if req.Archived {
		return toListResponse(s.ledger.AdminArchivedOrders()), nil
	}
	return toListResponse(s.ledger.AdminLiveOrders()), nil
}

func (s *Server) GetOrder(ctx context.Context, req *storefrontv1.GetOrderRequest) (*storefrontv1.GetOrderResponse, error) {
	sess, err := auth.Require(ctx, auth.OpViewOrder)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	o, ok := s.ledger.Get(req.ID)
	if !ok || (sess.Role == auth.RoleCustomer && !o.VisibleToCustomer(sess.Username)) {
		return nil, status.Error(codes.NotFound, "order not found")
	}
	return &storefrontv1.GetOrderResponse{Order: ToAPI(o)}, nil
}

func (s *Server) UpdateStatus(ctx context.Context, req *storefrontv1.UpdateStatusRequest) (*storefrontv1.Empty, error) {
	if _, err := auth.Require(ctx, auth.OpAdvanceStatus); err != nil {
		return nil, auth.StatusError(err)
	}
	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if target == domain.StatusCancelled {
		return nil, status.Error(codes.PermissionDenied, "only the customer can cancel an order")
	}
	if err := s.ledger.UpdateStatus(ctx, req.ID, target); err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.Empty{}, nil
}

// AdvanceOrder moves an order one fulfillment step forward.
func (s *Server) AdvanceOrder(ctx context.Context, req *storefrontv1.OrderIDRequest) (*storefrontv1.Empty, error) {
	if _, err := auth.Require(ctx, auth.OpAdvanceStatus); err != nil {
		return nil, auth.StatusError(err)
	}
	if err := s.ledger.Advance(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.Empty{}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *storefrontv1.OrderIDRequest) (*storefrontv1.Empty, error) {
	sess, err := auth.Require(ctx, auth.OpCancelOrder)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	if err := s.checkOwner(sess, req.ID); err != nil {
		return nil, err
	}
	if err := s.ledger.Cancel(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.Empty{}, nil
}

func (s *Server) ArchiveOrder(ctx context.Context, req *storefrontv1.OrderIDRequest) (*storefrontv1.Empty, error) {
	if _, err := auth.Require(ctx, auth.OpArchiveOrder); err != nil {
		return nil, auth.StatusError(err)
	}
	if err := s.ledger.ArchiveForAdmin(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.Empty{}, nil
}

func (s *Server) DeleteForCustomer(ctx context.Context, req *storefrontv1.OrderIDRequest) (*storefrontv1.Empty, error) {
	sess, err := auth.Require(ctx, auth.OpDeleteForCustomer)
	if err != nil {
		return nil, auth.StatusError(err)
	}
	if err := s.checkOwner(sess, req.ID); err != nil {
		return nil, err
	}
	if err := s.ledger.MarkDeletedByCustomer(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.Empty{}, nil
}

func (s *Server) RemoveOrder(ctx context.Context, req *storefrontv1.OrderIDRequest) (*storefrontv1.Empty, error) {
	if _, err := auth.Require(ctx, auth.OpRemoveOrder); err != nil {
		return nil, auth.StatusError(err)
	}
	if err := s.ledger.RemoveOrder(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &storefrontv1.Empty{}, nil
}

// WatchOrders sends the caller's view now and again after every ledger change.
// Slow receivers only get the latest view.
func (s *Server) WatchOrders(req *storefrontv1.WatchOrdersRequest, stream storefrontv1.OrderService_WatchOrdersServer) error {
	ctx := stream.Context()
	sess, err := auth.Require(ctx, auth.OpWatchOrders)
	if err != nil {
		return auth.StatusError(err)
	}

	view := app.View(app.AdminLiveView)
	switch {
	case sess.Role == auth.RoleCustomer:
		view = app.CustomerView(sess.Username)
	case req.Archived:
		view = app.AdminArchiveView
	}

	updates := make(chan []domain.Order, 1)
	cancel := s.ledger.Subscribe(func(orders []domain.Order) {
		select {
		case <-updates:
		default:
		}
		updates <- orders
	})
	defer cancel()

	if err := stream.Send(toListResponse(view(s.ledger.Orders()))); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case orders := <-updates:
			if err := stream.Send(toListResponse(view(orders))); err != nil {
				return err
			}
		}
	}
}

// Customers may only touch their own orders. Unknown ids fall through to the
// ledger's no-op.
func (s *Server) checkOwner(sess auth.Session, id string) error {
	o, ok := s.ledger.Get(id)
	if ok && o.CustomerName != sess.Username {
		return status.Error(codes.PermissionDenied, "order belongs to another customer")
	}
	return nil
}

// statusTone is the display semantics of each status.
func statusTone(s domain.Status) string {
	switch s {
	case domain.StatusPending:
		return "attention"
	case domain.StatusPreparing:
		return "in_progress"
	case domain.StatusOnDelivery:
		return "in_transit"
	case domain.StatusDelivered:
		return "success"
	case domain.StatusCancelled:
		return "failed"
	}
	return ""
}

func toListResponse(orders []domain.Order) *storefrontv1.ListOrdersResponse {
	out := make([]storefrontv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToAPI(o))
	}
	return &storefrontv1.ListOrdersResponse{Orders: out}
}

// ToAPI renders an order for the wire, including its display tone.
func ToAPI(o domain.Order) storefrontv1.Order {
	items := make([]storefrontv1.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, storefrontv1.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageRef:  it.ImageRef,
			Quantity:  it.Quantity,
			UnitPrice: storefrontv1.NewMoney(o.Currency, it.UnitAmount),
			LineTotal: storefrontv1.NewMoney(o.Currency, it.LineTotal()),
		})
	}

	return storefrontv1.Order{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		Total:           storefrontv1.NewMoney(o.Currency, o.TotalAmount),
		Status:          o.Status.String(),
		StatusTone:      statusTone(o.Status),
		OrderDate:       o.OrderDate,
		AdminArchived:   o.AdminArchived,
		CustomerDeleted: o.CustomerDeleted,
	}
}

func mapErr(err error) error {
	if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrNotArchivable) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	if errors.Is(err, app.ErrInvalidOrder) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrDuplicateOrder) {
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
