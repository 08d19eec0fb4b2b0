package repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-mock-backend/internal/domain"
)

var fixed = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestUserRepo_IDsAreMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	st := NewStore(Seed{Users: []domain.User{{ID: 1}, {ID: 7}, {ID: 3}}})
	r := NewUserRepo(st)

	u, err := r.Create(ctx, domain.User{ID: 1, Username: "ignored id"})
	require.NoError(t, err)
	assert.Equal(t, 8, u.ID)

	empty := NewUserRepo(NewStore(Seed{}))
	u, err = empty.Create(ctx, domain.User{Username: "first"})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	list, err := r.List(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(list))
	for _, u := range list {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int{1, 7, 3, 8}, ids, "insertion order")
}

func TestUserRepo_FindByIDMissing(t *testing.T) {
	r := NewUserRepo(NewStore(DefaultSeed()))
	_, err := r.FindByID(context.Background(), 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 3, r.Count(context.Background()))
}

func TestOrderRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepo(NewStore(Seed{}))

	o, err := r.Create(ctx, domain.Order{UserID: 1, Items: []domain.OrderItem{{ProductID: 1, Quantity: 2}}, Status: domain.StatusPending})
	require.NoError(t, err)
	o.Items[0].Quantity = 100

	got, err := r.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)

	list, err := r.List(ctx, "")
	require.NoError(t, err)
	list[0].Items[0].Quantity = 100
	got, _ = r.FindByID(ctx, o.ID)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestOrderRepo_UpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepo(NewStore(Seed{}))
	o, err := r.Create(ctx, domain.Order{UserID: 1, Status: domain.StatusPending})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = r.Update(ctx, o.ID, func(o *domain.Order) error {
		o.Status = domain.StatusCancelled
		o.ID = 500
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := r.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	_, err = r.Update(ctx, 404, func(*domain.Order) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderRepo_ListFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepo(NewStore(Seed{}))
	for _, s := range []domain.OrderStatus{domain.StatusPending, domain.StatusProcessing, domain.StatusPending} {
		_, err := r.Create(ctx, domain.Order{UserID: 1, Status: s})
		require.NoError(t, err)
	}

	pending, err := r.List(ctx, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].ID)
	assert.Equal(t, 3, pending[1].ID)

	all, _ := r.List(ctx, "")
	assert.Len(t, all, 3)
	none, _ := r.List(ctx, "shipped")
	assert.Empty(t, none)
}

func TestProductRepo_UpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo(NewStore(DefaultSeed()))

	p, err := r.Update(ctx, 2, func(p *domain.Product) error {
		p.ID = 99
		p.Stock = 0
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
	assert.False(t, p.InStock())

	_, err = r.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ResetRestoresSeed(t *testing.T) {
	ctx := context.Background()
	st := NewStore(DefaultSeed(), WithClock(func() time.Time { return fixed }))
	users, orders := NewUserRepo(st), NewOrderRepo(st)

	_, err := users.Create(ctx, domain.User{Username: "tmp"})
	require.NoError(t, err)
	_, err = orders.Create(ctx, domain.Order{UserID: 1})
	require.NoError(t, err)
	_, err = NewProductRepo(st).Update(ctx, 1, func(p *domain.Product) error { p.Price = 1; return nil })
	require.NoError(t, err)

	st.Reset()

	snap := st.Snapshot()
	assert.Len(t, snap.Users, 3)
	assert.Empty(t, snap.Orders)
	assert.Equal(t, 1299.99, snap.Products[0].Price)
	assert.Equal(t, fixed, st.Now())
}

func TestStore_SeedOrdersAreNormalised(t *testing.T) {
	st := NewStore(Seed{Orders: []domain.Order{{
		ID:     4,
		UserID: 1,
		Items:  []domain.OrderItem{{ProductID: 1, Quantity: 3, UnitPrice: 2.5}},
	}}}, WithClock(func() time.Time { return fixed }))

	o, err := NewOrderRepo(st).FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, 7.5, o.Total)
	assert.Equal(t, fixed, o.CreatedAt)
	assert.Equal(t, fixed, o.UpdatedAt)
}

func TestLoadSeed(t *testing.T) {
	t.Run("empty path uses builtin", func(t *testing.T) {
		s, err := LoadSeed("")
		require.NoError(t, err)
		assert.Equal(t, DefaultSeed(), s)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
users:
  - id: 5
    username: qa
    email: qa@example.com
    firstName: Q
products:
  - id: 1
    name: Desk
    price: 10.5
    stock: 2
orders:
  - id: 2
    userId: 5
    status: processing
    createdAt: "2026-01-02T15:04:05Z"
    items:
      - productId: 1
        quantity: 2
        unitPrice: 10.5
`), 0o600))

		s, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, s.Users, 1)
		assert.Equal(t, domain.User{ID: 5, Username: "qa", Email: "qa@example.com", FirstName: "Q"}, s.Users[0])
		require.Len(t, s.Products, 1)
		assert.Equal(t, 10.5, s.Products[0].Price)
		require.Len(t, s.Orders, 1)
		assert.Equal(t, domain.StatusProcessing, s.Orders[0].Status)
		assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), s.Orders[0].CreatedAt.UTC())
		assert.Equal(t, []domain.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 10.5}}, s.Orders[0].Items)

		o, err := NewOrderRepo(NewStore(s)).FindByID(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, 21.0, o.Total)
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		cases := []struct {
			name string
			yaml string
			msg  string
		}{
			{"status outside enum", "orders:\n  - {id: 1, userId: 1, status: shipped, items: [{productId: 1, quantity: 1}]}\n", `orders[0].status "shipped"`},
			{"negative price", "products:\n  - {id: 1, name: Desk, price: -5, stock: 1}\n", "price must be greater than 0"},
			{"negative stock", "products:\n  - {id: 1, name: Desk, price: 5, stock: -3}\n", "stock must not be negative"},
			{"blank name", "products:\n  - {id: 1, name: \" \", price: 5, stock: 1}\n", "name must not be empty"},
			{"duplicate product id", "products:\n  - {id: 1, name: A, price: 1, stock: 1}\n  - {id: 1, name: B, price: 1, stock: 1}\n", "products[1]: duplicate id 1"},
			{"duplicate user id", "users:\n  - {id: 2, username: a}\n  - {id: 2, username: b}\n", "users[1]: duplicate id 2"},
			{"missing id", "users:\n  - {username: a}\n", "users[0].id must be a positive integer"},
			{"empty items", "orders:\n  - {id: 1, userId: 1, items: []}\n", "orders[0].items must not be empty"},
			{"zero quantity", "orders:\n  - {id: 1, userId: 1, items: [{productId: 1, quantity: 0}]}\n", "orders[0].items[0].quantity must be greater than 0"},
			{"negative unit price", "orders:\n  - {id: 1, userId: 1, items: [{productId: 1, quantity: 1, unitPrice: -1}]}\n", "orders[0].items[0].unitPrice must not be negative"},
			{"zero user", "orders:\n  - {id: 1, userId: 0, items: [{productId: 1, quantity: 1}]}\n", "orders[0].userId must be a positive integer"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "seed.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o600))

				_, err := LoadSeed(path)
				require.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), tc.msg)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestSeed_DefaultIsValid(t *testing.T) {
	assert.NoError(t, DefaultSeed().Validate())
}
