package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/ndgrowth/backoffice/internal/common"
	"github.com/ndgrowth/backoffice/internal/storage"
)

// Mock resource records. Plain data, no referential integrity: an order's
// ProductID is never checked against the product collection.

type Blog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Active      bool    `json:"active"`
}

type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

type Order struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	CustomerEmail string  `json:"customerEmail"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

type Booking struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"serviceId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Status        string    `json:"status"`
}

type Class struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	InstructorID string    `json:"instructorId"`
	Capacity     int       `json:"capacity"`
	Enrolled     int       `json:"enrolled"`
	StartsAt     time.Time `json:"startsAt"`
}

var mockPublishedAt = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

// MockDataset returns the fixed fallback dataset for a collection, or
// common.ErrUnknownCollection for a name with no dataset defined. Every call
// returns fresh copies of identical data; fallbacks are deterministic.
func MockDataset(collection string) (any, error) {
	switch collection {
	case "blogs":
		pub := mockPublishedAt
		return []Blog{
			{ID: "b-001", Title: "Five Growth Levers for 2024", Slug: "five-growth-levers", Excerpt: "The levers we see working across client engagements.", Author: "Maya Chen", Published: true, PublishedAt: &pub},
			{ID: "b-002", Title: "Why Funnels Fail", Slug: "why-funnels-fail", Excerpt: "Most funnels leak in the same three places.", Author: "Natalie Gross", Published: true, PublishedAt: &pub},
			{ID: "b-003", Title: "Draft: Attribution Deep Dive", Slug: "attribution-deep-dive", Excerpt: "Work in progress.", Author: "Maya Chen", Published: false},
		}, nil
	case "products":
		return []Product{
			{ID: "p-001", Name: "Growth Audit", Description: "Full-funnel audit with a prioritized backlog.", Price: 1499, Currency: "USD", Active: true},
			{ID: "p-002", Name: "SEO Starter Pack", Description: "Technical and content SEO baseline.", Price: 899, Currency: "USD", Active: true},
			{ID: "p-003", Name: "Legacy Analytics Setup", Description: "Retired offering.", Price: 499, Currency: "USD", Active: false},
		}, nil
	case "services":
		return []Service{
			{ID: "s-001", Name: "Strategy Call", Description: "One-on-one consultation.", DurationMinutes: 60, Price: 250, Active: true},
			{ID: "s-002", Name: "Campaign Review", Description: "Ad account and creative review.", DurationMinutes: 90, Price: 400, Active: true},
		}, nil
	case "orders":
		return []Order{
			{ID: "o-001", ProductID: "p-001", CustomerEmail: "client@acme.io", Quantity: 1, Total: 1499, Status: "paid"},
			{ID: "o-002", ProductID: "p-002", CustomerEmail: "founder@startup.dev", Quantity: 2, Total: 1798, Status: "pending"},
		}, nil
	case "bookings":
		return []Booking{
			{ID: "bk-001", ServiceID: "s-001", CustomerName: "Alex Rivera", CustomerEmail: "alex@rivera.me", ScheduledAt: time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC), Status: "confirmed"},
			{ID: "bk-002", ServiceID: "s-002", CustomerName: "Sam Kim", CustomerEmail: "sam.kim@corp.com", ScheduledAt: time.Date(2024, 3, 6, 10, 30, 0, 0, time.UTC), Status: "pending"},
		}, nil
	case "classes":
		return []Class{
			{ID: "c-001", Title: "Digital Marketing Bootcamp", InstructorID: "a1b9f6e0-3c1d-4f6a-9b2e-101000000003", Capacity: 25, Enrolled: 18, StartsAt: time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC)},
			{ID: "c-002", Title: "Analytics for Founders", InstructorID: "a1b9f6e0-3c1d-4f6a-9b2e-101000000003", Capacity: 15, Enrolled: 15, StartsAt: time.Date(2024, 4, 8, 18, 0, 0, 0, time.UTC)},
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", common.ErrUnknownCollection, collection)
}

// KnownCollections lists every collection with a fallback dataset, sorted.
func KnownCollections() []string {
	names := []string{"blogs", "products", "services", "orders", "bookings", "classes"}
	sort.Strings(names)
	return names
}

// filterMockDataset applies the query semantics the caller requested to a
// mock dataset, mirroring what the real API would have done server-side.
// Recognized filters: published (blogs), active (products, services),
// status (orders, bookings). Unrecognized parameters are ignored.
func filterMockDataset(data any, query url.Values) any {
	switch records := data.(type) {
	case []Blog:
		if v := query.Get("published"); v != "" {
			want := v == "true"
			out := make([]Blog, 0, len(records))
			for _, r := range records {
				if r.Published == want {
					out = append(out, r)
				}
			}
			return out
		}
	case []Product:
		if v := query.Get("active"); v != "" {
			want := v == "true"
			out := make([]Product, 0, len(records))
			for _, r := range records {
				if r.Active == want {
					out = append(out, r)
				}
			}
			return out
		}
	case []Service:
		if v := query.Get("active"); v != "" {
			want := v == "true"
			out := make([]Service, 0, len(records))
			for _, r := range records {
				if r.Active == want {
					out = append(out, r)
				}
			}
			return out
		}
	case []Order:
		if v := query.Get("status"); v != "" {
			out := make([]Order, 0, len(records))
			for _, r := range records {
				if r.Status == v {
					out = append(out, r)
				}
			}
			return out
		}
	case []Booking:
		if v := query.Get("status"); v != "" {
			out := make([]Booking, 0, len(records))
			for _, r := range records {
				if r.Status == v {
					out = append(out, r)
				}
			}
			return out
		}
	}
	return data
}

// findMockRecord returns the record whose "id" field equals id, or nil when
// the dataset has no such record. Working on the marshalled form keeps this
// independent of the per-collection struct types.
func findMockRecord(data any, id string) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	want, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if string(r["id"]) == string(want) {
			return json.Marshal(r)
		}
	}
	return nil, nil
}

// SeedStore writes every mock dataset into st under its mock:<name> key,
// once: when the initialized marker is already present, nothing is touched.
// The dev backend serves collections from these keys.
func SeedStore(ctx context.Context, st storage.Store) error {
	marker, err := st.Get(ctx, common.KeyMockInitialized)
	if err != nil {
		return fmt.Errorf("reading mock marker: %w", err)
	}
	if marker != nil {
		return nil
	}

	for _, name := range KnownCollections() {
		data, err := MockDataset(name)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshalling %s dataset: %w", name, err)
		}
		if err := st.Set(ctx, common.MockKeyPrefix+name, raw); err != nil {
			return fmt.Errorf("seeding %s: %w", name, err)
		}
	}

	return st.Set(ctx, common.KeyMockInitialized, []byte("1"))
}
