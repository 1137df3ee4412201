package orderstore

import (
	"time"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
)

// SnapshotState is the persisted order state stored under "orders-storage".
type SnapshotState struct {
	Orders      []OrderDTO `json:"orders"`
	LastOrderID int64      `json:"lastOrderId"`
}

// OrderDTO is the persisted shape of an order.
type OrderDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Height      float64   `json:"height"`
	Length      float64   `json:"length"`
	Width       float64   `json:"width"`
	Weight      float64   `json:"weight"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId"`
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Shipment()
	return OrderDTO{
		ID:          o.ID(),
		Name:        s.Name(),
		Quantity:    s.Quantity(),
		Description: s.Description(),
		Address:     s.Address(),
		Height:      s.Height(),
		Length:      s.Length(),
		Width:       s.Width(),
		Weight:      s.Weight(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		UserID:      o.OwnerID().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ownerID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	shipment, err := order.NewShipment(order.ShipmentParams{
		Name:        dto.Name,
		Description: dto.Description,
		Address:     dto.Address,
		Quantity:    dto.Quantity,
		Height:      dto.Height,
		Length:      dto.Length,
		Width:       dto.Width,
		Weight:      dto.Weight,
	})
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, ownerID, shipment, status, dto.CreatedAt)
}
