package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"setralog/internal/pkg/errs"
)

// Shipment is the client-supplied part of an order: what is shipped, how much of it,
// where to, and its physical size. Measurements must be finite and strictly positive.
type Shipment struct {
	name        string
	description string
	address     string
	quantity    int
	height      float64
	length      float64
	width       float64
	weight      float64
}

// ShipmentParams carries raw shipment input to NewShipment.
type ShipmentParams struct {
	Name        string
	Description string
	Address     string
	Quantity    int
	Height      float64
	Length      float64
	Width       float64
	Weight      float64
}

// NewShipment validates every field and reports all problems at once.
func NewShipment(p ShipmentParams) (Shipment, error) {
	if err := errors.Join(
		requireText("name", p.Name),
		requireText("description", p.Description),
		requireText("address", p.Address),
		requireQuantity(p.Quantity),
		requirePositive("height", p.Height),
		requirePositive("length", p.Length),
		requirePositive("width", p.Width),
		requirePositive("weight", p.Weight),
	); err != nil {
		return Shipment{}, err
	}

	return Shipment{
		name:        p.Name,
		description: p.Description,
		address:     p.Address,
		quantity:    p.Quantity,
		height:      p.Height,
		length:      p.Length,
		width:       p.Width,
		weight:      p.Weight,
	}, nil
}

func (s Shipment) Name() string        { return s.name }
func (s Shipment) Description() string { return s.description }
func (s Shipment) Address() string     { return s.address }
func (s Shipment) Quantity() int       { return s.quantity }
func (s Shipment) Height() float64     { return s.height }
func (s Shipment) Length() float64     { return s.length }
func (s Shipment) Width() float64      { return s.width }
func (s Shipment) Weight() float64     { return s.weight }

// Params returns the shipment as raw parameters, e.g. for serialization.
func (s Shipment) Params() ShipmentParams {
	return ShipmentParams{
		Name:        s.name,
		Description: s.description,
		Address:     s.address,
		Quantity:    s.quantity,
		Height:      s.height,
		Length:      s.length,
		Width:       s.width,
		Weight:      s.weight,
	}
}

// Validate fails for the zero value.
func (s Shipment) Validate() error {
	if s.quantity < 1 {
		return errs.NewValueIsRequiredError("shipment")
	}
	return nil
}

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	return nil
}

func requirePositive(param string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}
