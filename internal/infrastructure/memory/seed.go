package memory

import (
	"time"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// DefaultPassword credencial asignada cuando se crea un usuario sin password.
const DefaultPassword = "password123"

// SeedDataset datos iniciales de la cadena. Los passwords vienen en texto plano;
// quien cargue el dataset debe hashearlos antes de servirlo.
func SeedDataset(now time.Time) entity.Dataset {
	note1 := "Lunas via BCA"
	note2 := "Ambil di toko"
	return entity.Dataset{
		Users: []entity.User{
			{ID: "u1", Name: "Zaki Superadmin", Role: entity.RoleSuperAdmin, Phone: "08123456781", Email: "superadmin@wellcomputer.com", Password: DefaultPassword, Active: true},
			{ID: "u2", Name: "Budi Owner", Role: entity.RoleOwner, Phone: "08123456782", Email: "owner@wellcomputer.com", Password: DefaultPassword, Active: true},
			{ID: "u3", Name: "Siti Admin", Role: entity.RoleAdmin, Phone: "08123456783", Email: "admin@wellcomputer.com", Password: DefaultPassword, Active: true},
			{ID: "u4", Name: "Andi Sales", Role: entity.RoleSales, Phone: "08123456784", Email: "sales@wellcomputer.com", Password: DefaultPassword, Active: true},
		},
		Stores: []entity.Store{
			{ID: "s1", Name: "Well Computer - Pusat", Address: "Jl. Utama No. 123, Jakarta", Phone: "021-5551234", Active: true},
			{ID: "s2", Name: "Well Computer - Bandung", Address: "Jl. Merdeka No. 45, Bandung", Phone: "022-4445678", Active: true},
		},
		Products: []entity.Product{
			{ID: "p1", Code: "AS-ROG-G14-01", Brand: "ASUS", Name: "ASUS ROG Zephyrus G14", Specs: "Ryzen 9, 32GB RAM, 1TB SSD, RTX 4070", Color: "Eclipse Gray", StoreID: "s1", BuyPrice: 22000000, SellPrice: 25000000, Stock: 5, Active: true},
			{ID: "p2", Code: "AP-MBA-M2-02", Brand: "APPLE", Name: "MacBook Air M2", Specs: "8GB RAM, 256GB SSD", Color: "Midnight", StoreID: "s1", BuyPrice: 15000000, SellPrice: 17500000, Stock: 12, Active: true},
			{ID: "p3", Code: "LN-LEG-5I-03", Brand: "LENOVO", Name: "Lenovo Legion 5i", Specs: "i7-13700H, 16GB RAM, RTX 4060", Color: "Storm Grey", StoreID: "s2", BuyPrice: 18000000, SellPrice: 21000000, Stock: 3, Active: true},
			{ID: "p4", Code: "HP-VIC-16-04", Brand: "HP", Name: "HP Victus 16", Specs: "Ryzen 7, 16GB RAM, RTX 4050", Color: "Performance Blue", StoreID: "s2", BuyPrice: 12500000, SellPrice: 14000000, Stock: 8, Active: true},
		},
		Transactions: []entity.Transaction{
			{
				ID: "t1", Date: now.AddDate(0, 0, -1),
				CustomerID: "c1", CustomerName: "Budi Santoso",
				ProductID: "p1", ProductName: "ASUS ROG Zephyrus G14", ProductCode: "AS-ROG-G14-01",
				StoreName: "Well Computer - Pusat", SalesID: "u4", SalesName: "Andi Sales",
				Price: 25000000, PaymentMethod: entity.PaymentTransfer, Note: &note1,
			},
			{
				ID: "t2", Date: now.AddDate(0, 0, -2),
				CustomerID: "c2", CustomerName: "Ani Wijaya",
				ProductID: "p2", ProductName: "MacBook Air M2", ProductCode: "AP-MBA-M2-02",
				StoreName: "Well Computer - Pusat", SalesID: "u4", SalesName: "Andi Sales",
				Price: 17500000, PaymentMethod: entity.PaymentCash, Note: &note2,
			},
		},
	}
}
