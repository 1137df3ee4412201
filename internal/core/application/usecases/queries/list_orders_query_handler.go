package queries

import (
	"context"
	"sort"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/ports"
)

// ListOrdersQueryHandler reads the Order Store for the actor.
//
// Administrators see every order, annotated with the owner's email; everyone else sees
// only their own. Results are sorted by creation time, newest first, with the higher id
// first on ties.
type ListOrdersQueryHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
}

func NewListOrdersQueryHandler(identities ports.IdentityStore, orders ports.OrderStore) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{identities: identities, orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, h.identities, query.ActorID())
	if err != nil {
		return nil, err
	}

	var orders []*order.Order
	emails := map[kernel.UUID]string{}
	if actor.IsAdmin() {
		if orders, err = h.orders.ListAll(ctx); err != nil {
			return nil, err
		}
		users, err := h.identities.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			emails[u.ID()] = u.Email()
		}
	} else if orders, err = h.orders.ListFor(ctx, actor.ID()); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		email := emails[o.OwnerID()]
		if !query.matches(o, email) {
			continue
		}
		views = append(views, NewOrderView(o, email))
	}

	sort.SliceStable(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return views[i].ID > views[j].ID
	})
	return views, nil
}
