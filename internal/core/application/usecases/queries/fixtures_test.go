package queries_test

import (
	"testing"
	"time"

	"setralog/internal/adapters/out/memory/identitystore"
	"setralog/internal/adapters/out/memory/orderstore"
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	identities *identitystore.Store
	orders     *orderstore.Store
	admin      *user.User
	ana        *user.User
	bruno      *user.User
}

// newFixture registers an admin and two customers. Each created order is stamped one
// minute after the previous one.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	f := &fixture{
		identities: identitystore.New(),
		orders: orderstore.New(orderstore.WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		})),
	}
	f.admin = f.register(t, "admin@setralog.cl", "Admin", "12.345.678-5", user.Individual)
	f.ana = f.register(t, "ana@example.cl", "Ana Pérez", "11.111.111-1", user.Individual)
	f.bruno = f.register(t, "bruno@transportes.cl", "Bruno Díaz", "7.654.321-6", user.Business)
	return f
}

func (f *fixture) register(t *testing.T, email, name, rawRUT string, role user.Role) *user.User {
	t.Helper()
	rut, err := kernel.NewRUT(rawRUT)
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+56912345678")
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), user.Profile{
		Email: email, Name: name, RUT: rut, Phone: phone,
	}, role, "secret1")
	require.NoError(t, err)
	registered, err := f.identities.Register(t.Context(), u)
	require.NoError(t, err)
	return registered
}

func (f *fixture) createOrder(t *testing.T, owner *user.User, name, description string) *order.Order {
	t.Helper()
	shipment, err := order.NewShipment(order.ShipmentParams{
		Name: name, Description: description, Address: "Av. Matta 100",
		Quantity: 1, Height: 1, Length: 1, Width: 1, Weight: 10,
	})
	require.NoError(t, err)
	o, err := f.orders.Create(t.Context(), owner.ID(), shipment)
	require.NoError(t, err)
	return o
}
