package services

import (
	"testing"
	"time"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func testDeals() []models.Deal {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.Deal{
		{
			ID:              uuid.MustParse("018e0000-0000-7000-8000-000000000001"),
			Title:           "ThinkPad X1 Carbon",
			Category:        "Laptops",
			Brand:           "Lenovo",
			CurrentPrice:    900,
			DiscountPercent: 10,
			DealScore:       f(82),
			IsHot:           false,
			CreatedAt:       base,
		},
		{
			ID:              uuid.MustParse("018e0000-0000-7000-8000-000000000002"),
			Title:           "Pixel 9",
			Category:        "Phones",
			Brand:           "Google",
			CurrentPrice:    500,
			DiscountPercent: 30,
			IsHot:           true,
			IsAllTimeLow:    true,
			CreatedAt:       base.Add(24 * time.Hour),
		},
		{
			ID:              uuid.MustParse("018e0000-0000-7000-8000-000000000003"),
			Title:           "No-name dock",
			Category:        "Accessories",
			Brand:           "",
			CurrentPrice:    45,
			DiscountPercent: 55,
			DealScore:       f(40),
			CreatedAt:       base.Add(48 * time.Hour),
		},
	}
}

func TestFilterDealsEmptyStateIsIdentity(t *testing.T) {
	deals := testDeals()
	got := FilterDeals(deals, models.DefaultFilterState())
	assert.Equal(t, deals, got)
}

func TestFilterDealsIsIdempotent(t *testing.T) {
	deals := testDeals()
	state := models.FilterState{
		Categories:  []string{"Laptops", "Phones"},
		MinDiscount: f(10),
		OnlyHot:     false,
	}
	once := FilterDeals(deals, state)
	twice := FilterDeals(once, state)
	assert.Equal(t, once, twice)
}

func TestFilterDealsCategoryAndPriceCap(t *testing.T) {
	deals := testDeals()
	state := models.FilterState{
		Categories: []string{"Laptops"},
		PriceMax:   f(1000),
	}
	got := FilterDeals(deals, state)
	require.Len(t, got, 1)
	assert.Equal(t, "ThinkPad X1 Carbon", got[0].Title)
}

func TestFilterDealsClauses(t *testing.T) {
	deals := testDeals()

	tests := []struct {
		name  string
		state models.FilterState
		want  []string
	}{
		{
			name:  "brand membership",
			state: models.FilterState{Brands: []string{"Lenovo"}},
			want:  []string{"ThinkPad X1 Carbon"},
		},
		{
			name:  "empty brand never matches a selection",
			state: models.FilterState{Brands: []string{"Lenovo", "Google"}},
			want:  []string{"ThinkPad X1 Carbon", "Pixel 9"},
		},
		{
			name:  "price floor",
			state: models.FilterState{PriceMin: f(500)},
			want:  []string{"ThinkPad X1 Carbon", "Pixel 9"},
		},
		{
			name:  "price floor is inclusive",
			state: models.FilterState{PriceMin: f(900)},
			want:  []string{"ThinkPad X1 Carbon"},
		},
		{
			name:  "discount floor",
			state: models.FilterState{MinDiscount: f(30)},
			want:  []string{"Pixel 9", "No-name dock"},
		},
		{
			name:  "missing deal score counts as zero",
			state: models.FilterState{MinScore: f(50)},
			want:  []string{"ThinkPad X1 Carbon"},
		},
		{
			name:  "hot only",
			state: models.FilterState{OnlyHot: true},
			want:  []string{"Pixel 9"},
		},
		{
			name:  "all time low only",
			state: models.FilterState{OnlyAllTimeLow: true},
			want:  []string{"Pixel 9"},
		},
		{
			name:  "conditions and marketplaces are not applied",
			state: models.FilterState{Conditions: []string{"refurbished"}, Marketplaces: []string{"ebay"}},
			want:  []string{"ThinkPad X1 Carbon", "Pixel 9", "No-name dock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDeals(deals, tt.state)
			titles := make([]string, 0, len(got))
			for _, d := range got {
				titles = append(titles, d.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestSortDeals(t *testing.T) {
	deals := testDeals()

	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortByScore, []string{"ThinkPad X1 Carbon", "No-name dock", "Pixel 9"}},
		{models.SortByPriceLow, []string{"No-name dock", "Pixel 9", "ThinkPad X1 Carbon"}},
		{models.SortByPriceHigh, []string{"ThinkPad X1 Carbon", "Pixel 9", "No-name dock"}},
		{models.SortByDiscount, []string{"No-name dock", "Pixel 9", "ThinkPad X1 Carbon"}},
		{models.SortByNewest, []string{"No-name dock", "Pixel 9", "ThinkPad X1 Carbon"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := SortDeals(deals, tt.key)
			titles := make([]string, 0, len(got))
			for _, d := range got {
				titles = append(titles, d.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}

	// Input order untouched.
	assert.Equal(t, "ThinkPad X1 Carbon", deals[0].Title)
}

func TestSortDealsUnknownKeyKeepsInputOrder(t *testing.T) {
	deals := testDeals()
	got := SortDeals(deals, models.SortKey("popularity"))
	assert.Equal(t, deals, got)
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(models.DefaultFilterState()))

	// Multi-select filters count selections, scalar filters count as flags,
	// and the two price bounds collapse into one flag.
	state := models.FilterState{
		Categories:     []string{"Laptops", "Phones"},
		Brands:         []string{"Lenovo"},
		Conditions:     []string{"new", "refurbished", "open-box"},
		Marketplaces:   []string{"ebay"},
		PriceMin:       f(100),
		PriceMax:       f(2000),
		MinDiscount:    f(20),
		MinScore:       f(70),
		OnlyHot:        true,
		OnlyAllTimeLow: true,
	}
	assert.Equal(t, 2+1+3+1+1+1+1+1+1, ActiveFilterCount(state))

	// A single price bound still counts once.
	assert.Equal(t, 1, ActiveFilterCount(models.FilterState{PriceMax: f(500)}))
}
