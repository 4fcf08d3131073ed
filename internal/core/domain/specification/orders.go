package specification

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderByOwner matches orders placed by the given buyer.
func OrderByOwner(ownerID kernel.UUID) Predicate {
	return FieldEq("owner_id", ownerID.String())
}

// OrderByStatus matches orders in the given lifecycle status.
func OrderByStatus(status order.Status) Predicate {
	return FieldEq("status", int(status))
}

// OrderCancellable matches orders that would accept Cancel: everything
// except delivered and already cancelled ones.
func OrderCancellable() Predicate {
	return OrderByStatus(order.Delivered).Or(OrderByStatus(order.Cancelled)).Not()
}
