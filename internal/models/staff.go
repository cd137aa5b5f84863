package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StaffRole is the job a staff member is employed for
type StaffRole string

const (
	RoleManager      StaffRole = "Manager"
	RoleChef         StaffRole = "Chef"
	RoleWaiter       StaffRole = "Waiter"
	RoleReceptionist StaffRole = "Receptionist"
	RoleCashier      StaffRole = "Cashier"
	RoleCleaner      StaffRole = "Cleaner"
	RoleSecurity     StaffRole = "Security"
	RoleBartender    StaffRole = "Bartender"
)

// StaffRoles lists the roles in the order they are offered to operators.
var StaffRoles = []StaffRole{
	RoleManager, RoleChef, RoleWaiter, RoleReceptionist,
	RoleCashier, RoleCleaner, RoleSecurity, RoleBartender,
}

func (r StaffRole) Valid() bool {
	for _, known := range StaffRoles {
		if r == known {
			return true
		}
	}
	return false
}

// DateLayout is the format staff dates of birth are exchanged in.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON shadows the RFC 3339 encoding promoted from time.Time.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Staff is a row of the Staff table
type Staff struct {
	ID          ID              `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        StaffRole       `json:"role"`
	Phone       string          `json:"phone"`
	DateOfBirth Date            `json:"date_of_birth"`
	Salary      decimal.Decimal `json:"salary"`
}

func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
