package cart

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marrsDev/DS-CBNode/models"
	"github.com/marrsDev/DS-CBNode/pricing"
)

func newTestService(t *testing.T) (*Service, *pricing.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.WindowItem{}, &models.GlassPrice{}, &models.ProfileOption{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := pricing.NewStore(db)
	if err := store.Load(); err != nil {
		t.Fatalf("load pricing store: %v", err)
	}
	return NewService(db, pricing.NewService(store)), store
}

func standardInput() AddInput {
	return AddInput{
		WindowType:     "type1",
		Height:         1200,
		Width:          900,
		GlassType:      "clear",
		GlassThickness: "5mm",
		ProfileColour:  "white",
		Quantity:       1,
	}
}

func TestAddCreatesActiveItem(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(summary.Items))
	}
	item := summary.Items[0]
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if item.TypeLabel != "Sliding window" || item.TypeCode != "#sw001" {
		t.Errorf("display metadata = %q %q", item.TypeLabel, item.TypeCode)
	}
	if math.Abs(summary.GrandTotal-item.UnitPrice) > 1e-6 {
		t.Errorf("grand total = %v, want unit price %v", summary.GrandTotal, item.UnitPrice)
	}

	var sum float64
	for _, v := range item.Components {
		sum += v
	}
	if math.Abs(sum-item.UnitPrice) > 1e-6 {
		t.Errorf("component sum %v != unit price %v", sum, item.UnitPrice)
	}
}

func TestAddGlassCostUsesConfiguredUnitPrice(t *testing.T) {
	svc, store := newTestService(t)

	if _, err := store.SetGlassPrice("clear", "5mm", 1000); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}

	wantGlass := 1.2 * 0.9 * 1000
	got := summary.Items[0].Components["glass"]
	if math.Abs(got-wantGlass) > 1e-6 {
		t.Errorf("glass component = %v, want area*price = %v", got, wantGlass)
	}
}

func TestComponentsSurviveStorageRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	in := standardInput()
	in.WindowType = "type19"
	if _, err := svc.Add("cart-1", in); err != nil {
		t.Fatal(err)
	}

	// Summary re-reads the row, so the breakdown has been through the JSON
	// column: serialized on write, decoded on read. Every entry must come
	// back as a number, not vanish in the decode.
	summary, err := svc.Summary("cart-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(summary.Items))
	}
	item := summary.Items[0]
	if len(item.Components) == 0 {
		t.Fatal("stored components came back empty")
	}
	if item.Components["hinges"] <= 0 {
		t.Errorf("folding item lost its hinges entry: %v", item.Components)
	}

	var sum float64
	for _, v := range item.Components {
		sum += v
	}
	if math.Abs(sum-item.UnitPrice) > 1e-6 {
		t.Errorf("reloaded component sum %v != unit price %v", sum, item.UnitPrice)
	}
	if math.Abs(summary.ComponentTotals["hinges"]-item.Components["hinges"]) > 1e-6 {
		t.Errorf("component totals lost the reloaded hinges entry: %v", summary.ComponentTotals)
	}
}

func TestAddMergesIdenticalConfiguration(t *testing.T) {
	svc, store := newTestService(t)

	in := standardInput()
	in.Quantity = 2
	if _, err := svc.Add("cart-1", in); err != nil {
		t.Fatal(err)
	}

	// Raise the glass price between the two adds: the merged line must take
	// the fresh price for its entire quantity.
	if _, err := store.SetGlassPrice("clear", "5mm", 2000); err != nil {
		t.Fatal(err)
	}

	in.Quantity = 3
	summary, err := svc.Add("cart-1", in)
	if err != nil {
		t.Fatal(err)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("expected merged single item, got %d", len(summary.Items))
	}
	item := summary.Items[0]
	if item.Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", item.Quantity)
	}

	wantGlass := 1.2 * 0.9 * 2000
	if math.Abs(item.Components["glass"]-wantGlass) > 1e-6 {
		t.Errorf("merged glass component = %v, want re-priced %v", item.Components["glass"], wantGlass)
	}
	if math.Abs(summary.GrandTotal-item.UnitPrice*5) > 1e-6 {
		t.Errorf("grand total = %v, want 5x fresh unit price %v", summary.GrandTotal, item.UnitPrice*5)
	}
}

func TestAddDifferentConfigurationsStaySeparate(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Add("cart-1", standardInput()); err != nil {
		t.Fatal(err)
	}
	other := standardInput()
	other.Width = 1100
	summary, err := svc.Add("cart-1", other)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(summary.Items))
	}
}

func TestAddScopedByCart(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Add("cart-1", standardInput()); err != nil {
		t.Fatal(err)
	}
	summary, err := svc.Add("cart-2", standardInput())
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 1 {
		t.Errorf("cart-2 should not see cart-1 items, got %d", len(summary.Items))
	}
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*AddInput)
	}{
		{"missing window type", func(in *AddInput) { in.WindowType = "" }},
		{"missing measurements", func(in *AddInput) { in.Height = 0 }},
		{"missing glass type", func(in *AddInput) { in.GlassType = "" }},
		{"missing thickness", func(in *AddInput) { in.GlassThickness = "" }},
		{"missing colour", func(in *AddInput) { in.ProfileColour = "" }},
		{"negative quantity", func(in *AddInput) { in.Quantity = -1 }},
		{"unknown window type", func(in *AddInput) { in.WindowType = "type42" }},
		{"height out of range", func(in *AddInput) { in.Height = 99 }},
		{"width out of range", func(in *AddInput) { in.Width = 10000 }},
		{"unknown glass type", func(in *AddInput) { in.GlassType = "mirror" }},
		{"unknown colour", func(in *AddInput) { in.ProfileColour = "crimson" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := standardInput()
			tc.mutate(&in)
			_, err := svc.Add("cart-1", in)
			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}

			// A failed add must not leave a partial row behind.
			summary, err := svc.Summary("cart-1")
			if err != nil {
				t.Fatal(err)
			}
			if len(summary.Items) != 0 {
				t.Errorf("failed add persisted %d items", len(summary.Items))
			}
		})
	}
}

func TestAdjustQuantityClampsAtOne(t *testing.T) {
	svc, _ := newTestService(t)

	in := standardInput()
	in.Quantity = 3
	summary, err := svc.Add("cart-1", in)
	if err != nil {
		t.Fatal(err)
	}
	itemID := summary.Items[0].ID

	summary, err = svc.AdjustQuantity("cart-1", itemID, -100)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want floor of 1", summary.Items[0].Quantity)
	}

	summary, err = svc.AdjustQuantity("cart-1", itemID, 4)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", summary.Items[0].Quantity)
	}
}

func TestAdjustQuantityRepricesAgainstCurrentConfig(t *testing.T) {
	svc, store := newTestService(t)

	summary, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}
	itemID := summary.Items[0].ID
	priceBefore := summary.Items[0].UnitPrice

	if _, err := store.SetGlassPrice("clear", "5mm", 9000); err != nil {
		t.Fatal(err)
	}

	// Zero delta still refreshes the price: quantity adjustments always
	// reflect the pricing tables as of now, not as of add time.
	summary, err = svc.AdjustQuantity("cart-1", itemID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Items[0].UnitPrice <= priceBefore {
		t.Errorf("unit price did not pick up new glass price: %v -> %v",
			priceBefore, summary.Items[0].UnitPrice)
	}
}

func TestAdjustQuantityNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.AdjustQuantity("cart-1", 42, 1); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRemoveSoftDeletes(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}
	other := standardInput()
	other.WindowType = "type13"
	second, err := svc.Add("cart-1", other)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Items) != 2 {
		t.Fatalf("setup expected 2 items, got %d", len(second.Items))
	}

	summary, err := svc.Remove("cart-1", first.Items[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 item after remove, got %d", len(summary.Items))
	}
	if summary.Items[0].Type != "type13" {
		t.Errorf("wrong item removed; remaining is %s", summary.Items[0].Type)
	}

	// Removing the same item again must fail: inactive is terminal.
	if _, err := svc.Remove("cart-1", first.Items[0].ID); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound on double remove, got %v", err)
	}
}

func TestRemoveUnknownLeavesOthersUntouched(t *testing.T) {
	svc, _ := newTestService(t)

	before, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Remove("cart-1", 9999); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}

	after, err := svc.Summary("cart-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Items) != len(before.Items) {
		t.Errorf("failed remove changed the cart: %d -> %d items", len(before.Items), len(after.Items))
	}
}

func TestRemoveScopedByCart(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}

	// The item id exists, but belongs to another cart.
	if _, err := svc.Remove("cart-2", summary.Items[0].ID); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound across carts, got %v", err)
	}
}

func TestReAddAfterRemoveCreatesNewItem(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}
	removedID := first.Items[0].ID

	if _, err := svc.Remove("cart-1", removedID); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Add("cart-1", standardInput())
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 active item, got %d", len(summary.Items))
	}
	if summary.Items[0].ID == removedID {
		t.Error("re-add revived the removed row instead of creating a new one")
	}
	if summary.Items[0].Quantity != 1 {
		t.Errorf("re-added quantity = %d, want fresh 1", summary.Items[0].Quantity)
	}
}

func TestClearThenSummaryEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Add("cart-1", standardInput()); err != nil {
		t.Fatal(err)
	}
	other := standardInput()
	other.WindowType = "type18"
	if _, err := svc.Add("cart-1", other); err != nil {
		t.Fatal(err)
	}

	if err := svc.Clear("cart-1"); err != nil {
		t.Fatal(err)
	}
	// Idempotent: clearing an already-empty cart is fine.
	if err := svc.Clear("cart-1"); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Summary("cart-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 0 || summary.GrandTotal != 0 || summary.TotalItems != 0 {
		t.Errorf("summary after clear = %+v, want empty", summary)
	}
	if len(summary.ComponentTotals) != 0 {
		t.Errorf("component totals after clear = %v, want empty", summary.ComponentTotals)
	}
}

func TestSummaryAggregates(t *testing.T) {
	svc, _ := newTestService(t)

	sliding := standardInput()
	sliding.Quantity = 2
	if _, err := svc.Add("cart-1", sliding); err != nil {
		t.Fatal(err)
	}

	folding := standardInput()
	folding.WindowType = "type19"
	folding.Height = 2100
	folding.Width = 2400
	folding.GlassThickness = "6mmTuff"
	summary, err := svc.Add("cart-1", folding)
	if err != nil {
		t.Fatal(err)
	}

	var wantGrand float64
	wantItems := 0
	wantComponents := make(map[string]float64)
	for _, item := range summary.Items {
		wantGrand += item.UnitPrice * float64(item.Quantity)
		wantItems += item.Quantity
		for name, cost := range item.Components {
			wantComponents[name] += cost * float64(item.Quantity)
		}
	}

	if math.Abs(summary.GrandTotal-wantGrand) > 1e-6 {
		t.Errorf("grand total = %v, want %v", summary.GrandTotal, wantGrand)
	}
	if summary.TotalItems != wantItems {
		t.Errorf("total items = %d, want %d", summary.TotalItems, wantItems)
	}
	for name, want := range wantComponents {
		if math.Abs(summary.ComponentTotals[name]-want) > 1e-6 {
			t.Errorf("component total %s = %v, want %v", name, summary.ComponentTotals[name], want)
		}
	}

	// Hinges exist only on the folding item; the union fold must still
	// aggregate them, weighted by quantity.
	if _, ok := summary.ComponentTotals["hinges"]; !ok {
		t.Error("component union lost the folding-only hinges entry")
	}
	// Track appears on both sliding and folding items.
	var trackSum float64
	for _, item := range summary.Items {
		trackSum += item.Components["track"] * float64(item.Quantity)
	}
	if math.Abs(summary.ComponentTotals["track"]-trackSum) > 1e-6 {
		t.Errorf("track total = %v, want %v", summary.ComponentTotals["track"], trackSum)
	}
}
