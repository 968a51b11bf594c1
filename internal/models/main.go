// Package models defines the core data structures for users, books, and orders,
// along with the domain errors shared by the repository and service layers.
package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername is returned when registration collides with an
// existing username. The database unique constraint is the authoritative
// guard; repositories translate the constraint violation into this error.
var ErrDuplicateUsername = errors.New("username already exists")

// Role identifies the authorization category of a user.
type Role string

const (
	// RoleUser is the default role assigned at self-registration.
	RoleUser Role = "user"
	// RoleAdmin marks accounts provisioned out-of-band with access
	// to catalog management and stats endpoints.
	RoleAdmin Role = "admin"
)

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized or logged.
	PasswordHash string
	// Role is the authorization category ("user" or "admin").
	Role Role
}

// Book represents a catalog entry.
type Book struct {
	// ID is the unique identifier for the book.
	ID string `json:"id"`
	// Title is the display title of the book.
	Title string `json:"title"`
	// Description holds the catalog description text.
	Description string `json:"description"`
	// Category groups the book in the catalog ("fiction", "business", etc.).
	Category string `json:"category"`
	// Trending marks books surfaced on the storefront landing page.
	Trending bool `json:"trending"`
	// CoverImage is the filename or URL of the cover image.
	CoverImage string `json:"coverImage"`
	// OldPrice is the pre-discount price.
	OldPrice float64 `json:"oldPrice"`
	// NewPrice is the current selling price.
	NewPrice float64 `json:"newPrice"`
	// CreatedAt is the catalog insertion timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// Address holds the shipping address of an order.
type Address struct {
	City    string `json:"city"`
	Country string `json:"country"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// Order represents a placed order.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"id"`
	// Name is the customer's full name.
	Name string `json:"name"`
	// Email identifies the customer; order history is looked up by it.
	Email string `json:"email"`
	// Address is the shipping address.
	Address Address `json:"address"`
	// Phone is the customer's contact number.
	Phone string `json:"phone"`
	// ProductIDs lists the IDs of the ordered books.
	ProductIDs []string `json:"productIds"`
	// TotalPrice is the order total at checkout time.
	TotalPrice float64 `json:"totalPrice"`
	// CreatedAt is the order placement timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// StatsTotals holds the aggregate figures shown on the admin dashboard.
type StatsTotals struct {
	// TotalOrders is the number of orders ever placed.
	TotalOrders int64 `json:"totalOrders"`
	// TotalSales is the sum of all order totals.
	TotalSales float64 `json:"totalSales"`
	// TrendingBooks is the number of books currently marked trending.
	TrendingBooks int64 `json:"trendingBooks"`
	// TotalBooks is the number of books in the catalog.
	TotalBooks int64 `json:"totalBooks"`
}

// MonthlySales holds per-month sales figures for the admin dashboard chart.
type MonthlySales struct {
	// Month in "YYYY-MM" form.
	Month string `json:"month"`
	// TotalSales is the sum of order totals placed in the month.
	TotalSales float64 `json:"totalSales"`
	// TotalOrders is the number of orders placed in the month.
	TotalOrders int64 `json:"totalOrders"`
}
