package database

// Migration bookkeeping
const (
	CreateMigrationsTableSQL = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			migration_name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)`

	SelectAppliedMigrationsSQL = `SELECT migration_name FROM schema_migrations`

	InsertMigrationSQL = `INSERT INTO schema_migrations (migration_name) VALUES ($1)`
)

// Customer queries
const (
	ListCustomersSQL = `
		SELECT C_ID, C_fname, C_lname, C_email1, C_Phno1
		FROM Customer
		ORDER BY C_ID`

	GetCustomerSQL = `
		SELECT C_ID, C_fname, C_lname, C_email1, C_Phno1
		FROM Customer WHERE C_ID = $1`

	InsertCustomerSQL = `
		INSERT INTO Customer (C_ID, C_fname, C_lname, C_email1, C_Phno1)
		VALUES ($1, $2, $3, $4, $5)`

	UpdateCustomerSQL = `
		UPDATE Customer SET C_fname = $1, C_lname = $2, C_email1 = $3, C_Phno1 = $4
		WHERE C_ID = $5`

	DeleteCustomerSQL = `DELETE FROM Customer WHERE C_ID = $1`

	MaxCustomerIDSQL = `
		SELECT C_ID FROM Customer
		ORDER BY LENGTH(C_ID) DESC, C_ID DESC
		LIMIT 1`
)

// Staff queries
const (
	ListStaffSQL = `
		SELECT S_ID, SF_Name, SL_Name, Role, S_Phone1, DOB, Salary
		FROM Staff
		ORDER BY S_ID`

	ListStaffByRoleSQL = `
		SELECT S_ID, SF_Name, SL_Name, Role, S_Phone1, DOB, Salary
		FROM Staff WHERE Role = $1
		ORDER BY S_ID`

	GetStaffSQL = `
		SELECT S_ID, SF_Name, SL_Name, Role, S_Phone1, DOB, Salary
		FROM Staff WHERE S_ID = $1`

	InsertStaffSQL = `
		INSERT INTO Staff (S_ID, SF_Name, SL_Name, Role, S_Phone1, DOB, Salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	UpdateStaffSQL = `
		UPDATE Staff SET SF_Name = $1, SL_Name = $2, Role = $3, S_Phone1 = $4, DOB = $5, Salary = $6
		WHERE S_ID = $7`

	DeleteStaffSQL = `DELETE FROM Staff WHERE S_ID = $1`

	MaxStaffIDSQL = `
		SELECT S_ID FROM Staff
		ORDER BY LENGTH(S_ID) DESC, S_ID DESC
		LIMIT 1`
)

// Menu queries
const (
	ListMenuItemsSQL = `
		SELECT I_Name, Category, Price
		FROM Menu
		ORDER BY Category, I_Name`

	ListMenuItemsByCategorySQL = `
		SELECT I_Name, Category, Price
		FROM Menu WHERE Category = $1
		ORDER BY I_Name`

	ListMenuCategoriesSQL = `SELECT DISTINCT Category FROM Menu ORDER BY Category`

	GetMenuItemSQL = `
		SELECT I_Name, Category, Price
		FROM Menu WHERE I_Name = $1`

	InsertMenuItemSQL = `
		INSERT INTO Menu (I_Name, Category, Price)
		VALUES ($1, $2, $3)`

	// The original name keys the row so that a rename is a single update.
	UpdateMenuItemSQL = `
		UPDATE Menu SET I_Name = $1, Category = $2, Price = $3
		WHERE I_Name = $4`

	DeleteMenuItemSQL = `DELETE FROM Menu WHERE I_Name = $1`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO Orders (Order_ID, C_ID, S_ID, Order_Date, Total_Amt)
		VALUES ($1, $2, $3, $4, $5)`

	InsertOrderItemSQL = `
		INSERT INTO Order_Items (Order_ID, I_Name, Quantity)
		VALUES ($1, $2, $3)`

	ListOrdersSQL = `
		SELECT Order_ID, C_ID, S_ID, Order_Date, Total_Amt
		FROM Orders
		ORDER BY Order_Date DESC, Order_ID DESC`

	ListOrdersByCustomerSQL = `
		SELECT Order_ID, C_ID, S_ID, Order_Date, Total_Amt
		FROM Orders WHERE C_ID = $1
		ORDER BY Order_Date DESC, Order_ID DESC`

	GetOrderSQL = `
		SELECT Order_ID, C_ID, S_ID, Order_Date, Total_Amt
		FROM Orders WHERE Order_ID = $1`

	GetOrderItemsSQL = `
		SELECT oi.Order_ID, m.I_Name, m.Category, m.Price, oi.Quantity
		FROM Order_Items oi
		JOIN Menu m ON m.I_Name = oi.I_Name
		WHERE oi.Order_ID = $1
		ORDER BY oi.Line_No`

	ListOrderItemsSQL = `
		SELECT oi.Order_ID, m.I_Name, m.Category, m.Price, oi.Quantity
		FROM Order_Items oi
		JOIN Menu m ON m.I_Name = oi.I_Name
		ORDER BY oi.Line_No`

	ListOrderItemsByCustomerSQL = `
		SELECT oi.Order_ID, m.I_Name, m.Category, m.Price, oi.Quantity
		FROM Order_Items oi
		JOIN Menu m ON m.I_Name = oi.I_Name
		JOIN Orders o ON o.Order_ID = oi.Order_ID
		WHERE o.C_ID = $1
		ORDER BY oi.Line_No`

	MaxOrderIDSQL = `
		SELECT Order_ID FROM Orders
		ORDER BY LENGTH(Order_ID) DESC, Order_ID DESC
		LIMIT 1`
)

// Payment queries
const (
	ListPaymentsSQL = `
		SELECT P_ID, Order_ID, P_Method, Amount
		FROM Payment
		ORDER BY P_ID`

	GetPaymentSQL = `
		SELECT P_ID, Order_ID, P_Method, Amount
		FROM Payment WHERE P_ID = $1`

	GetPaymentByOrderSQL = `
		SELECT P_ID, Order_ID, P_Method, Amount
		FROM Payment WHERE Order_ID = $1
		ORDER BY P_ID
		LIMIT 1`

	InsertPaymentSQL = `
		INSERT INTO Payment (P_ID, Order_ID, P_Method, Amount)
		VALUES ($1, $2, $3, $4)`

	UpdatePaymentSQL = `
		UPDATE Payment SET Order_ID = $1, P_Method = $2, Amount = $3
		WHERE P_ID = $4`

	DeletePaymentSQL = `DELETE FROM Payment WHERE P_ID = $1`

	MaxPaymentIDSQL = `
		SELECT P_ID FROM Payment
		ORDER BY LENGTH(P_ID) DESC, P_ID DESC
		LIMIT 1`
)

// Dashboard queries
const (
	DashboardSummarySQL = `
		SELECT
			(SELECT COUNT(*) FROM Customer),
			(SELECT COUNT(*) FROM Staff),
			(SELECT COUNT(*) FROM Menu),
			(SELECT COUNT(*) FROM Orders),
			(SELECT COALESCE(SUM(Amount), 0) FROM Payment)`
)
