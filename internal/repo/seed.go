package repo

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"go-gin-mock-backend/internal/domain"
)

// DefaultSeed 内置演示数据：3 个用户、12 个商品、无订单
func DefaultSeed() Seed {
	return Seed{
		Users: []domain.User{
			{ID: 1, Username: "john_doe", Email: "john@example.com", FirstName: "John", LastName: "Doe"},
			{ID: 2, Username: "jane_smith", Email: "jane@example.com", FirstName: "Jane", LastName: "Smith"},
			{ID: 3, Username: "bob_wilson", Email: "bob@example.com", FirstName: "Bob", LastName: "Wilson"},
		},
		Products: []domain.Product{
			{ID: 1, Name: "Laptop Pro 15", Description: "15-inch laptop with 16GB RAM", Price: 1299.99, Stock: 50},
			{ID: 2, Name: "Wireless Mouse", Description: "Ergonomic wireless mouse", Price: 29.99, Stock: 200},
			{ID: 3, Name: "Mechanical Keyboard", Description: "RGB mechanical keyboard", Price: 89.99, Stock: 75},
			{ID: 4, Name: "USB-C Hub", Description: "7-in-1 USB-C hub", Price: 49.99, Stock: 120},
			{ID: 5, Name: "27\" Monitor", Description: "27-inch 4K monitor", Price: 399.99, Stock: 30},
			{ID: 6, Name: "Laptop Stand", Description: "Aluminium laptop stand", Price: 39.99, Stock: 0},
			{ID: 7, Name: "Noise Cancelling Headphones", Description: "Over-ear bluetooth headphones", Price: 249.99, Stock: 40},
			{ID: 8, Name: "Webcam HD", Description: "1080p webcam", Price: 59.99, Stock: 60},
			{ID: 9, Name: "External SSD 1TB", Description: "Portable NVMe SSD", Price: 119.99, Stock: 80},
			{ID: 10, Name: "Desk Lamp", Description: "LED desk lamp", Price: 24.99, Stock: 150},
			{ID: 11, Name: "Gaming Laptop", Description: "17-inch gaming laptop", Price: 1899.99, Stock: 10},
			{ID: 12, Name: "Phone Charger", Description: "65W GaN charger", Price: 34.99, Stock: 300},
		},
	}
}

// LoadSeed 从 YAML / JSON 文件读取种子数据；path 为空返回 DefaultSeed
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	var s Seed
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return Seed{}, fmt.Errorf("decode seed %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Seed{}, fmt.Errorf("seed %s: %w", path, err)
	}
	return s, nil
}

// Validate 种子数据也要满足运行期的约束：id 唯一且为正、商品字段合法、订单状态在枚举内、明细非空
func (s Seed) Validate() error {
	users := map[int]bool{}
	for i, u := range s.Users {
		if err := uniqueID("users", i, u.ID, users); err != nil {
			return err
		}
	}

	products := map[int]bool{}
	for i, p := range s.Products {
		if err := uniqueID("products", i, p.ID, products); err != nil {
			return err
		}
		check := domain.ProductPatch{Name: &p.Name, Price: &p.Price, Stock: &p.Stock}
		if err := check.Validate(); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}

	orders := map[int]bool{}
	for i, o := range s.Orders {
		if err := uniqueID("orders", i, o.ID, orders); err != nil {
			return err
		}
		if o.UserID <= 0 {
			return domain.Invalid("orders[%d].userId must be a positive integer", i)
		}
		// 状态留空时 Reset 会补成 pending
		if o.Status != "" && !o.Status.Valid() {
			return domain.Invalid("orders[%d].status %q is not one of %v", i, o.Status, domain.OrderStatuses)
		}
		if len(o.Items) == 0 {
			return domain.Invalid("orders[%d].items must not be empty", i)
		}
		for j, it := range o.Items {
			if it.Quantity <= 0 {
				return domain.Invalid("orders[%d].items[%d].quantity must be greater than 0", i, j)
			}
			if it.UnitPrice < 0 {
				return domain.Invalid("orders[%d].items[%d].unitPrice must not be negative", i, j)
			}
		}
	}
	return nil
}

func uniqueID(resource string, i, id int, seen map[int]bool) error {
	if id <= 0 {
		return domain.Invalid("%s[%d].id must be a positive integer", resource, i)
	}
	if seen[id] {
		return domain.Invalid("%s[%d]: duplicate id %d", resource, i, id)
	}
	seen[id] = true
	return nil
}
