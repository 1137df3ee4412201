package commands_test

import (
	"context"
	"testing"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdentityStore struct{ mock.Mock }

func (m *MockIdentityStore) Register(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	registered, _ := args.Get(0).(*user.User)
	return registered, args.Error(1)
}

func (m *MockIdentityStore) Update(ctx context.Context, patch user.Patch) (*user.User, error) {
	args := m.Called(ctx, patch)
	updated, _ := args.Get(0).(*user.User)
	return updated, args.Error(1)
}

func (m *MockIdentityStore) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIdentityStore) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockIdentityStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockIdentityStore) FindByRut(ctx context.Context, rut kernel.RUT) (*user.User, error) {
	args := m.Called(ctx, rut)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockIdentityStore) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

// MockOrderStore runs the guard passed to SetStatusIf against the order returned by
// the "Current" expectation, like the real store does under its lock.
type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Create(ctx context.Context, ownerID kernel.UUID, shipment order.Shipment) (*order.Order, error) {
	args := m.Called(ctx, ownerID, shipment)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) SetStatus(ctx context.Context, id int64, status order.Status) (*order.Order, error) {
	return m.SetStatusIf(ctx, id, status, nil)
}

func (m *MockOrderStore) SetStatusIf(
	ctx context.Context,
	id int64,
	status order.Status,
	guard ports.StatusGuard,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	current, _ := args.Get(0).(*order.Order)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if guard != nil {
		if err := guard(current.Clone()); err != nil {
			return nil, err
		}
	}
	updated := current.Clone()
	if err := updated.ChangeStatus(status); err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *MockOrderStore) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderStore) ListFor(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderStore) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(credential, password string) bool {
	args := m.Called(credential, password)
	return args.Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) IssueAccessToken(u *user.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) ParseAccessToken(token string) (ports.AccessClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(ports.AccessClaims)
	return claims, args.Error(1)
}

func (m *MockTokenIssuer) IssueResetToken(userID kernel.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) ParseResetToken(token string) (kernel.UUID, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyPasswordReset(ctx context.Context, email, link string) error {
	args := m.Called(ctx, email, link)
	return args.Error(0)
}

func newTestUser(t *testing.T, email, rawRUT string, role user.Role) *user.User {
	t.Helper()
	rut, err := kernel.NewRUT(rawRUT)
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+56912345678")
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), user.Profile{
		Email: email, Name: "Test User", RUT: rut, Phone: phone,
	}, role, "hashed:secret1")
	require.NoError(t, err)
	return u
}

func newTestShipment(t *testing.T) order.Shipment {
	t.Helper()
	shipment, err := order.NewShipment(testShipmentParams())
	require.NoError(t, err)
	return shipment
}

func testShipmentParams() order.ShipmentParams {
	return order.ShipmentParams{
		Name:        "Pallets",
		Description: "Two pallets of tiles",
		Address:     "Av. Matta 100, Santiago",
		Quantity:    2,
		Height:      1.2,
		Length:      1,
		Width:       0.8,
		Weight:      300,
	}
}

func newTestOrder(t *testing.T, id int64, owner kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, owner, newTestShipment(t), testNow)
	require.NoError(t, err)
	if status != order.Pending {
		require.NoError(t, o.ChangeStatus(status))
	}
	return o
}
