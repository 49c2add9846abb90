package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-front/internal/config"
	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/mock"
	"github.com/MKhiriev/go-shop-front/internal/nav"
	"github.com/MKhiriev/go-shop-front/internal/service"
	"github.com/MKhiriev/go-shop-front/internal/session"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/store"
	"github.com/MKhiriev/go-shop-front/models"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()

	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobRepository(ctrl)
	blobs.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	blobs.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	blobs.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()
	blobs.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, store.ErrKeyNotFound).AnyTimes()

	codec := session.NewCodec(config.App{
		SessionSignKey:  "test-secret",
		SessionIssuer:   "shop-front-test",
		SessionDuration: time.Hour,
	})

	st := state.New(blobs, codec, logger.NewLogger("test"))
	st.Users = []models.User{
		{ID: 1, Email: "admin@yiopatretruck.com", Password: "admin123", FirstName: "Admin", LastName: "User", IsAdmin: true, Addresses: []models.Address{}},
		{ID: 2, Email: "user@test.com", Password: "user123", FirstName: "John", LastName: "Doe", IsAdmin: false, Addresses: []models.Address{}},
	}
	st.Products = []models.Product{
		{ID: 1, Name: "Heavy Duty Air Filter", Ref: "AF-HD900", Category: "Filters", Brand: "MANN-FILTER", Price: 599.00, Stock: 40, Featured: true, Description: "Air filter for trucks."},
		{ID: 2, Name: "Brake Pad Set", Ref: "BP-HD880", Category: "Brakes", Brand: "Meritor", Price: 2899.00, Stock: 30, Description: "Ceramic brake pads."},
		{ID: 3, Name: "LED Headlight Pair", Ref: "LED-HL900", Category: "Lights", Brand: "Peterson", Price: 1999.00, Stock: 0, Featured: true, Description: "Bright LED headlights."},
	}
	st.Categories = []models.Category{
		{ID: "Filters", Name: "Filters"},
		{ID: "Brakes", Name: "Brakes"},
		{ID: "Lights", Name: "Lights"},
	}
	st.FAQ = []models.FAQEntry{
		{Question: "How fast is shipping?", Answer: "Two business days."},
	}

	log := logger.NewLogger("test")
	services := service.NewServices(st, log)
	notifier := NewQueueNotifier()
	router := nav.NewRouter(services.Auth, notifier, log)

	return newAppModel(context.Background(), services, router, notifier)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(appModel)
	require.True(t, ok)
	return app
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		m = update(t, m, keyPress(r))
	}
	return m
}

func login(t *testing.T, m appModel, email, password string) appModel {
	t.Helper()
	m = update(t, m, keyPress('7')) // redirected to auth when anonymous
	require.Equal(t, nav.ViewAuth, m.router.Current())
	m = typeText(t, m, email)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, password)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestApp_StartsOnHome(t *testing.T) {
	m := newTestApp(t)

	assert.Equal(t, nav.ViewHome, m.router.Current())
	view := m.View()
	assert.Contains(t, view, "Featured products")
	assert.Contains(t, view, "Heavy Duty Air Filter")
	assert.Contains(t, view, "LED Headlight Pair")
	// Non-featured products stay off the home screen.
	assert.NotContains(t, view, "Brake Pad Set")
}

func TestApp_DigitNavigation(t *testing.T) {
	m := newTestApp(t)

	m = update(t, m, keyPress('2'))
	assert.Equal(t, nav.ViewProducts, m.router.Current())

	m = update(t, m, keyPress('6'))
	assert.Equal(t, nav.ViewSupport, m.router.Current())
	assert.Contains(t, m.View(), "How fast is shipping?")

	m = update(t, m, keyPress('1'))
	assert.Equal(t, nav.ViewHome, m.router.Current())
}

func TestApp_GateRedirectsAnonymousToAuth(t *testing.T) {
	m := newTestApp(t)

	m = update(t, m, keyPress('5'))

	assert.Equal(t, nav.ViewAuth, m.router.Current())
	assert.True(t, m.showNotification)
	assert.Equal(t, "Please login to access this page", m.notification.text)
	assert.Equal(t, nav.LevelError, m.notification.level)
}

func TestApp_AdminGateForNonAdmin(t *testing.T) {
	m := newTestApp(t)
	m = login(t, m, "user@test.com", "user123")
	require.Equal(t, nav.ViewHome, m.router.Current())

	m = update(t, m, keyPress('8'))

	assert.Equal(t, nav.ViewHome, m.router.Current())
	assert.Equal(t, "Admin access required", m.notification.text)
}

func TestApp_LoginFlow(t *testing.T) {
	m := newTestApp(t)

	m = login(t, m, "user@test.com", "user123")

	assert.Equal(t, nav.ViewHome, m.router.Current())
	assert.Equal(t, "Welcome back, John!", m.notification.text)
	assert.Contains(t, m.View(), "John Doe")
}

func TestApp_LoginFailureStaysOnAuth(t *testing.T) {
	m := newTestApp(t)

	m = login(t, m, "user@test.com", "wrong")

	assert.Equal(t, nav.ViewAuth, m.router.Current())
	assert.Equal(t, "Invalid email or password", m.notification.text)
}

func TestApp_AddToCartFromProducts(t *testing.T) {
	m := newTestApp(t)

	m = update(t, m, keyPress('2'))
	m = update(t, m, keyPress('a'))

	assert.Equal(t, "Added to cart", m.notification.text)
	assert.Contains(t, m.View(), "cart(1)")
}

func TestApp_AddOutOfStockRejected(t *testing.T) {
	m := newTestApp(t)

	// Featured list is [Air Filter, LED Headlight]; move to the one
	// with zero stock.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, keyPress('a'))

	assert.Equal(t, "This product is out of stock", m.notification.text)
	assert.Contains(t, m.View(), "cart(0)")
}

func TestApp_ProductsSearch(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, keyPress('2'))

	m = update(t, m, keyPress('/'))
	m = typeText(t, m, "brake")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.products.items, 1)
	assert.Equal(t, "Brake Pad Set", m.products.items[0].Name)

	// Esc from a fresh search clears the query.
	m = update(t, m, keyPress('/'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.products.items, 3)
}

func TestApp_CategoryDrillDown(t *testing.T) {
	m := newTestApp(t)

	m = update(t, m, keyPress('3'))
	require.Equal(t, nav.ViewCategories, m.router.Current())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.ViewProducts, m.router.Current())
	assert.Equal(t, "Brakes", m.products.criteria.Category)
	require.Len(t, m.products.items, 1)
	assert.Equal(t, "Brake Pad Set", m.products.items[0].Name)
}

func TestApp_CartQuantityAndRemove(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, keyPress('2'))
	m = update(t, m, keyPress('a'))
	m = update(t, m, keyPress('4'))
	require.Len(t, m.cart.lines, 1)

	m = update(t, m, keyPress('+'))
	assert.Equal(t, 2, m.cart.lines[0].Quantity)

	m = update(t, m, keyPress('-'))
	assert.Equal(t, 1, m.cart.lines[0].Quantity)

	// Dropping below one removes the line.
	m = update(t, m, keyPress('-'))
	assert.Empty(t, m.cart.lines)
}

func TestApp_CheckoutPlacesOrder(t *testing.T) {
	m := newTestApp(t)
	m = login(t, m, "user@test.com", "user123")

	m = update(t, m, keyPress('2'))
	m = update(t, m, keyPress('a'))
	m = update(t, m, keyPress('4'))
	m = update(t, m, keyPress('c'))
	require.Equal(t, nav.ViewCheckout, m.router.Current())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.ViewOrders, m.router.Current())
	assert.True(t, strings.HasPrefix(m.notification.text, "Order placed!"))
	require.Len(t, m.orders.orders, 1)
	assert.Contains(t, m.View(), "cart(0)")
}

func TestApp_CheckoutAnonymousRedirectsToAuth(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, keyPress('2'))
	m = update(t, m, keyPress('a'))
	m = update(t, m, keyPress('4'))
	m = update(t, m, keyPress('c'))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.ViewAuth, m.router.Current())
}

func TestApp_AdminCreateProduct(t *testing.T) {
	m := newTestApp(t)
	m = login(t, m, "admin@yiopatretruck.com", "admin123")

	m = update(t, m, keyPress('8'))
	require.Equal(t, nav.ViewAdmin, m.router.Current())

	m = update(t, m, keyPress('n'))
	require.True(t, m.admin.formOpen)

	fields := []string{"Coolant Hose Kit", "CHK-200", "Cooling", "450", "20", "images/hose1.jpg", "Silicone hose kit."}
	for i, value := range fields {
		m = typeText(t, m, value)
		if i < len(fields)-1 {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.admin.formOpen)
	assert.Equal(t, "Product saved", m.notification.text)
	require.Len(t, m.admin.products, 4)
	assert.Equal(t, "Coolant Hose Kit", m.admin.products[3].Name)
	assert.Equal(t, "Yiopatre", m.admin.products[3].Brand)
}

func TestApp_AdminDeleteNeedsConfirmation(t *testing.T) {
	m := newTestApp(t)
	m = login(t, m, "admin@yiopatretruck.com", "admin123")
	m = update(t, m, keyPress('8'))

	m = update(t, m, keyPress('d'))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Delete \"Heavy Duty Air Filter\"?")

	// Declining keeps the product.
	m = update(t, m, keyPress('n'))
	assert.False(t, m.showConfirm)
	assert.Len(t, m.admin.products, 3)

	m = update(t, m, keyPress('d'))
	m = update(t, m, keyPress('y'))
	assert.Len(t, m.admin.products, 2)
	assert.Equal(t, "Product deleted", m.notification.text)
}

func TestApp_ProductDetailOverlay(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, keyPress('2'))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.showDetail)
	assert.Contains(t, m.View(), m.detail.product.Description)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showDetail)
}

func TestApp_LogoutFromProfile(t *testing.T) {
	m := newTestApp(t)
	m = login(t, m, "user@test.com", "user123")

	m = update(t, m, keyPress('7'))
	require.Equal(t, nav.ViewProfile, m.router.Current())
	assert.Contains(t, m.View(), "My Profile")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, nav.ViewHome, m.router.Current())
	assert.Contains(t, m.View(), "not logged in")
}

func TestApp_SignupTab(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, keyPress('7')) // lands on auth

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, tabSignup, m.auth.tab)

	fields := []string{"Jane", "Smith", "jane@example.com", "+1 (555) 222-3333", "secret123", "secret123"}
	for i, value := range fields {
		m = typeText(t, m, value)
		if i < len(fields)-1 {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.ViewHome, m.router.Current())
	assert.Contains(t, m.View(), "Jane Smith")
}

func TestApp_ResetRequiresConfirmation(t *testing.T) {
	m := newTestApp(t)
	m = login(t, m, "user@test.com", "user123")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Reset all data?")

	// Declining keeps the current data and session.
	m = update(t, m, keyPress('n'))
	assert.False(t, m.showConfirm)
	assert.Contains(t, m.View(), "John Doe")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m = update(t, m, keyPress('y'))

	assert.Equal(t, nav.ViewHome, m.router.Current())
	assert.Equal(t, "All data reset", m.notification.text)
	assert.Contains(t, m.View(), "not logged in")
	// The catalog is re-seeded from scratch.
	assert.Len(t, m.products.items, 50)
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "Invalid email or password", humanizeError(service.ErrInvalidCredentials))
	assert.Equal(t, "Your cart is empty", humanizeError(service.ErrEmptyCart))
	assert.Equal(t, assert.AnError.Error(), humanizeError(assert.AnError))
}
