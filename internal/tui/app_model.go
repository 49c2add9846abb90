package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-shop-front/internal/nav"
	"github.com/MKhiriev/go-shop-front/internal/service"
	"github.com/MKhiriev/go-shop-front/models"
)

type appModel struct {
	ctx      context.Context
	services *service.Services
	router   *nav.Router
	notifier *QueueNotifier

	home       homeModel
	products   productsModel
	categories categoriesModel
	cart       cartModel
	checkout   checkoutModel
	orders     ordersModel
	support    supportModel
	auth       authModel
	profile    profileModel
	admin      adminModel

	showDetail bool
	detail     detailModel

	showConfirm   bool
	confirm       confirmModel
	confirmFor    confirmAction
	pendingDelete int64

	showNotification bool
	notification     notification

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.Services, router *nav.Router, notifier *QueueNotifier) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		router:   router,
		notifier: notifier,
		products: newProductsModel(),
		support:  newSupportModel(),
		auth:     newAuthModel(),
		profile:  newProfileModel(),
		admin:    newAdminModel(),
	}
	for _, v := range []nav.View{
		nav.ViewHome, nav.ViewProducts, nav.ViewCategories,
		nav.ViewCart, nav.ViewSupport,
	} {
		m.reload(v)
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showDetail {
			return m.updateDetail(msg)
		}
	case notificationMsg:
		cmd := m.notify(msg.level, msg.text)
		return m, cmd
	case clearNotificationMsg:
		m.showNotification = false
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			cmd := m.notify(nav.LevelError, "Copy failed: "+msg.err.Error())
			return m, cmd
		}
		m.orders.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.orders.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.router.Current() {
	case nav.ViewHome:
		return m.updateHome(msg)
	case nav.ViewProducts:
		return m.updateProducts(msg)
	case nav.ViewCategories:
		return m.updateCategories(msg)
	case nav.ViewCart:
		return m.updateCart(msg)
	case nav.ViewCheckout:
		return m.updateCheckout(msg)
	case nav.ViewOrders:
		return m.updateOrders(msg)
	case nav.ViewSupport:
		return m.updateSupport(msg)
	case nav.ViewAuth:
		return m.updateAuth(msg)
	case nav.ViewProfile:
		return m.updateProfile(msg)
	case nav.ViewAdmin:
		return m.updateAdmin(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.router.Current() {
	case nav.ViewHome:
		body = m.home.View()
	case nav.ViewProducts:
		body = m.products.View()
	case nav.ViewCategories:
		body = m.categories.View()
	case nav.ViewCart:
		body = m.cart.View()
	case nav.ViewCheckout:
		body = m.checkout.View()
	case nav.ViewOrders:
		body = m.orders.View()
	case nav.ViewSupport:
		body = m.support.View()
	case nav.ViewAuth:
		body = m.auth.View()
	case nav.ViewProfile:
		body = m.profile.View()
	case nav.ViewAdmin:
		body = m.admin.View()
	}

	out := m.viewHeader() + "\n\n" + body

	if m.showDetail {
		out += "\n\n" + m.detail.View()
	}
	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showNotification {
		out = m.viewNotification() + "\n\n" + out
	}

	return appStyle.Render(out)
}

func (m appModel) viewHeader() string {
	account := "not logged in"
	if user, ok := m.services.Auth.CurrentUser(m.ctx); ok {
		account = user.FullName()
		if user.IsAdmin {
			account += " (admin)"
		}
	}
	return helpStyle.Render(fmt.Sprintf(
		"1 home  2 products  3 categories  4 cart(%d)  5 orders  6 support  7 profile  8 admin  |  %s",
		m.services.Cart.ItemCount(m.ctx), account))
}

func (m appModel) viewNotification() string {
	style := infoStyle
	switch m.notification.level {
	case nav.LevelSuccess:
		style = successStyle
	case nav.LevelError:
		style = errorStyle
	case nav.LevelWarning:
		style = warningStyle
	}
	return style.Render(m.notification.text)
}

func (m *appModel) notify(level nav.Level, text string) tea.Cmd {
	m.showNotification = true
	m.notification = notification{level: level, text: text}
	return cmdClearNotification()
}

// navigate routes through the access gates and refreshes the data of the
// view actually shown. Gate notifications queued during the transition are
// surfaced in the banner.
func (m *appModel) navigate(view nav.View) tea.Cmd {
	shown := m.router.Navigate(m.ctx, view)
	m.reload(shown)

	for _, n := range m.notifier.drain() {
		return m.notify(n.level, n.text)
	}
	return nil
}

// reload pulls fresh data for the view from the service layer.
func (m *appModel) reload(view nav.View) {
	switch view {
	case nav.ViewHome:
		m.home.featured = m.services.Catalog.Featured(m.ctx)
		m.home.idx = clampIndex(m.home.idx, len(m.home.featured))
	case nav.ViewProducts:
		m.refreshProducts()
	case nav.ViewCategories:
		m.categories.items = m.services.Catalog.CategoryCounts(m.ctx)
		m.categories.idx = clampIndex(m.categories.idx, len(m.categories.items))
	case nav.ViewCart:
		m.cart.lines = m.services.Cart.Lines(m.ctx)
		m.cart.totals = m.services.Cart.Totals(m.ctx)
		m.cart.idx = clampIndex(m.cart.idx, len(m.cart.lines))
	case nav.ViewCheckout:
		m.checkout.lines = m.services.Cart.Lines(m.ctx)
		m.checkout.totals = m.services.Cart.Totals(m.ctx)
		m.checkout.user = nil
		if user, ok := m.services.Auth.CurrentUser(m.ctx); ok {
			m.checkout.user = &user
		}
	case nav.ViewOrders:
		m.orders.orders = m.services.Orders.OrdersForCurrentUser(m.ctx)
		m.orders.idx = clampIndex(m.orders.idx, len(m.orders.orders))
	case nav.ViewSupport:
		m.support.entries = m.services.Catalog.FAQ(m.ctx)
		m.support.idx = clampIndex(m.support.idx, len(m.support.entries))
	case nav.ViewProfile:
		if user, ok := m.services.Auth.CurrentUser(m.ctx); ok {
			m.profile.load(user)
		}
	case nav.ViewAdmin:
		m.admin.products = m.services.Admin.Products(m.ctx)
		m.admin.idx = clampIndex(m.admin.idx, len(m.admin.products))
	}
}

// refreshProducts recombines the listing: a non-empty query searches the
// whole catalog, otherwise the filter criteria apply; ordering always
// comes from the selected sort.
func (m *appModel) refreshProducts() {
	pm := &m.products

	var base []models.Product
	if q := strings.TrimSpace(pm.search.Value()); q != "" {
		base = m.services.Catalog.Search(m.ctx, q)
	} else {
		base = m.services.Catalog.Filter(m.ctx, pm.criteria)
	}

	keep := make(map[int64]struct{}, len(base))
	for _, p := range base {
		keep[p.ID] = struct{}{}
	}

	items := make([]models.Product, 0, len(base))
	for _, p := range m.services.Catalog.Sort(m.ctx, sortCycle[pm.sortIdx]) {
		if _, ok := keep[p.ID]; ok {
			items = append(items, p)
		}
	}
	pm.items = items
	pm.idx = clampIndex(pm.idx, len(pm.items))

	pm.categories = []string{service.CategoryAll}
	for _, c := range m.services.Catalog.CategoryCounts(m.ctx) {
		pm.categories = append(pm.categories, c.Name)
	}
}

// handleNav processes the global navigation and quit keys shared by every
// screen that is not capturing text input.
func (m appModel) handleNav(keyMsg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	var view nav.View
	switch {
	case key.Matches(keyMsg, keys.goHome):
		view = nav.ViewHome
	case key.Matches(keyMsg, keys.goProducts):
		view = nav.ViewProducts
	case key.Matches(keyMsg, keys.goCategories):
		view = nav.ViewCategories
	case key.Matches(keyMsg, keys.goCart):
		view = nav.ViewCart
	case key.Matches(keyMsg, keys.goOrders):
		view = nav.ViewOrders
	case key.Matches(keyMsg, keys.goSupport):
		view = nav.ViewSupport
	case key.Matches(keyMsg, keys.goProfile):
		view = nav.ViewProfile
	case key.Matches(keyMsg, keys.goAdmin):
		view = nav.ViewAdmin
	case key.Matches(keyMsg, keys.reset):
		m.showConfirm = true
		m.confirmFor = confirmResetAll
		m.confirm.message = "Reset all data? Accounts, carts and orders will be wiped."
		return m, nil, true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit, true
	default:
		return m, nil, false
	}

	cmd := m.navigate(view)
	return m, cmd, true
}

func (m appModel) addToCart(productID int64) (appModel, tea.Cmd) {
	if err := m.services.Cart.AddItem(m.ctx, productID); err != nil {
		cmd := m.notify(nav.LevelError, humanizeError(err))
		return m, cmd
	}
	cmd := m.notify(nav.LevelSuccess, "Added to cart")
	m.reload(m.router.Current())
	return m, cmd
}

func (m appModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.showConfirm = false
		switch m.confirmFor {
		case confirmDeleteProduct:
			return m.deleteProduct()
		case confirmResetAll:
			return m.resetAll()
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
		m.confirmFor = confirmNone
		m.pendingDelete = 0
	}
	return m, nil
}

func (m appModel) deleteProduct() (tea.Model, tea.Cmd) {
	m.confirmFor = confirmNone
	if err := m.services.Admin.DeleteProduct(m.ctx, m.pendingDelete); err != nil {
		cmd := m.notify(nav.LevelError, humanizeError(err))
		return m, cmd
	}
	m.pendingDelete = 0
	cmd := m.notify(nav.LevelSuccess, "Product deleted")
	m.reload(nav.ViewAdmin)
	m.refreshProducts()
	return m, cmd
}

// resetAll wipes the store and rehydrates the seed data, dropping the
// session. The user lands on the home screen.
func (m appModel) resetAll() (tea.Model, tea.Cmd) {
	m.confirmFor = confirmNone
	if err := m.services.Reset(m.ctx); err != nil {
		cmd := m.notify(nav.LevelError, humanizeError(err))
		return m, cmd
	}
	cmd := m.notify(nav.LevelInfo, "All data reset")
	navCmd := m.navigate(nav.ViewHome)
	for _, v := range []nav.View{nav.ViewProducts, nav.ViewCategories, nav.ViewCart, nav.ViewSupport} {
		m.reload(v)
	}
	return m, tea.Batch(cmd, navCmd)
}

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.showDetail = false
		return m, nil
	case key.Matches(keyMsg, keys.addToCart):
		m.showDetail = false
		return m.addToCart(m.detail.product.ID)
	}
	return m, nil
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.featured)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if p, ok := m.home.current(); ok {
			m.showDetail = true
			m.detail.product = p
		}
	case key.Matches(keyMsg, keys.addToCart):
		if p, ok := m.home.current(); ok {
			return m.addToCart(p.ID)
		}
	}
	return m, nil
}

func (m appModel) updateProducts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.products.searching {
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.products.searching = false
				m.products.search.SetValue("")
				m.products.search.Blur()
				m.refreshProducts()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				m.products.searching = false
				m.products.search.Blur()
				m.refreshProducts()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.products.search, cmd = m.products.search.Update(msg)
		m.refreshProducts()
		return m, cmd
	}

	if !isKey {
		return m, nil
	}
	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.products.idx > 0 {
			m.products.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.products.idx < len(m.products.items)-1 {
			m.products.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.products.searching = true
		m.products.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.filter):
		m.products.criteria.Category = nextCategory(m.products.categories, m.products.criteria.Category)
		m.refreshProducts()
	case key.Matches(keyMsg, keys.sort):
		m.products.sortIdx = (m.products.sortIdx + 1) % len(sortCycle)
		m.refreshProducts()
	case key.Matches(keyMsg, keys.stockOnly):
		m.products.criteria.InStockOnly = !m.products.criteria.InStockOnly
		m.refreshProducts()
	case key.Matches(keyMsg, keys.enter):
		if p, ok := m.products.current(); ok {
			m.showDetail = true
			m.detail.product = p
		}
	case key.Matches(keyMsg, keys.addToCart):
		if p, ok := m.products.current(); ok {
			return m.addToCart(p.ID)
		}
	}
	return m, nil
}

func (m appModel) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.categories.idx > 0 {
			m.categories.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.categories.idx < len(m.categories.items)-1 {
			m.categories.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if c, ok := m.categories.current(); ok {
			m.products.criteria.Category = c.Name
			m.products.search.SetValue("")
			cmd := m.navigate(nav.ViewProducts)
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.checkout):
		if len(m.cart.lines) == 0 {
			cmd := m.notify(nav.LevelWarning, "Your cart is empty")
			return m, cmd
		}
		cmd := m.navigate(nav.ViewCheckout)
		return m, cmd
	case key.Matches(keyMsg, keys.up):
		if m.cart.idx > 0 {
			m.cart.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.cart.idx < len(m.cart.lines)-1 {
			m.cart.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.plus):
		if l, ok := m.cart.current(); ok {
			if err := m.services.Cart.SetQuantity(m.ctx, l.ID, l.Quantity+1); err != nil {
				cmd := m.notify(nav.LevelError, humanizeError(err))
				return m, cmd
			}
			m.reload(nav.ViewCart)
		}
		return m, nil
	case key.Matches(keyMsg, keys.minus):
		if l, ok := m.cart.current(); ok {
			if err := m.services.Cart.SetQuantity(m.ctx, l.ID, l.Quantity-1); err != nil {
				cmd := m.notify(nav.LevelError, humanizeError(err))
				return m, cmd
			}
			m.reload(nav.ViewCart)
		}
		return m, nil
	case key.Matches(keyMsg, keys.remove):
		if l, ok := m.cart.current(); ok {
			if err := m.services.Cart.RemoveItem(m.ctx, l.ID); err != nil {
				cmd := m.notify(nav.LevelError, humanizeError(err))
				return m, cmd
			}
			m.reload(nav.ViewCart)
		}
		return m, nil
	}

	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}
	return m, nil
}

func (m appModel) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		cmd := m.navigate(nav.ViewCart)
		return m, cmd
	case key.Matches(keyMsg, keys.enter):
		order, err := m.services.Orders.PlaceOrder(m.ctx)
		if err != nil {
			cmd := m.notify(nav.LevelError, humanizeError(err))
			if errors.Is(err, service.ErrNotAuthenticated) {
				navCmd := m.navigate(nav.ViewAuth)
				return m, tea.Batch(cmd, navCmd)
			}
			return m, cmd
		}
		cmd := m.notify(nav.LevelSuccess, "Order placed! Reference: "+order.Ref)
		navCmd := m.navigate(nav.ViewOrders)
		return m, tea.Batch(cmd, navCmd)
	}

	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}
	return m, nil
}

func (m appModel) updateOrders(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		if o, ok := m.orders.current(); ok {
			return m, cmdCopyToClipboard(o.Ref)
		}
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.orders.idx > 0 {
			m.orders.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.orders.idx < len(m.orders.orders)-1 {
			m.orders.idx++
		}
		return m, nil
	}

	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}
	return m, nil
}

func (m appModel) updateSupport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.support.idx > 0 {
			m.support.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.support.idx < len(m.support.entries)-1 {
			m.support.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.support.expanded[m.support.idx] = !m.support.expanded[m.support.idx]
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.switchTab):
			if m.auth.tab == tabLogin {
				m.auth.tab = tabSignup
				m.auth.loginInputs[m.auth.loginFocus].Blur()
				m.auth.signupFocus = 0
				m.auth.signupInputs[0].Focus()
			} else {
				m.auth.tab = tabLogin
				m.auth.signupInputs[m.auth.signupFocus].Blur()
				m.auth.loginFocus = 0
				m.auth.loginInputs[0].Focus()
			}
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			cmd := m.navigate(nav.ViewHome)
			return m, cmd
		case key.Matches(keyMsg, keys.tab):
			if m.auth.tab == tabLogin {
				m.auth.loginFocus = focusNext(m.auth.loginInputs, m.auth.loginFocus)
			} else {
				m.auth.signupFocus = focusNext(m.auth.signupInputs, m.auth.signupFocus)
			}
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			if m.auth.tab == tabLogin {
				m.auth.loginFocus = focusPrev(m.auth.loginInputs, m.auth.loginFocus)
			} else {
				m.auth.signupFocus = focusPrev(m.auth.signupInputs, m.auth.signupFocus)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitAuth()
		}
	}

	var cmd tea.Cmd
	if m.auth.tab == tabLogin {
		m.auth.loginInputs[m.auth.loginFocus], cmd = m.auth.loginInputs[m.auth.loginFocus].Update(msg)
	} else {
		m.auth.signupInputs[m.auth.signupFocus], cmd = m.auth.signupInputs[m.auth.signupFocus].Update(msg)
	}
	return m, cmd
}

func (m appModel) submitAuth() (tea.Model, tea.Cmd) {
	if m.auth.tab == tabLogin {
		email := strings.TrimSpace(m.auth.loginInputs[loginFieldEmail].Value())
		password := m.auth.loginInputs[loginFieldPassword].Value()
		if email == "" || password == "" {
			cmd := m.notify(nav.LevelError, "Email and password are required")
			return m, cmd
		}
		user, err := m.services.Auth.Login(m.ctx, email, password)
		if err != nil {
			cmd := m.notify(nav.LevelError, humanizeError(err))
			return m, cmd
		}
		m.auth.loginInputs[loginFieldPassword].SetValue("")
		cmd := m.notify(nav.LevelSuccess, "Welcome back, "+user.FirstName+"!")
		navCmd := m.navigate(nav.ViewHome)
		return m, tea.Batch(cmd, navCmd)
	}

	user, err := m.services.Auth.Signup(m.ctx, m.auth.signupForm())
	if err != nil {
		cmd := m.notify(nav.LevelError, humanizeError(err))
		return m, cmd
	}
	m.auth.signupInputs[signupFieldPassword].SetValue("")
	m.auth.signupInputs[signupFieldConfirm].SetValue("")
	cmd := m.notify(nav.LevelSuccess, "Welcome, "+user.FirstName+"! Your account is ready.")
	navCmd := m.navigate(nav.ViewHome)
	return m, tea.Batch(cmd, navCmd)
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.logout):
			if err := m.services.Auth.Logout(m.ctx); err != nil {
				cmd := m.notify(nav.LevelError, humanizeError(err))
				return m, cmd
			}
			cmd := m.notify(nav.LevelInfo, "Logged out")
			navCmd := m.navigate(nav.ViewHome)
			return m, tea.Batch(cmd, navCmd)
		case key.Matches(keyMsg, keys.esc):
			cmd := m.navigate(nav.ViewHome)
			return m, cmd
		case key.Matches(keyMsg, keys.tab):
			m.profile.focus = focusNext(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.focus = focusPrev(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			user, err := m.services.Auth.UpdateProfile(m.ctx, m.profile.form())
			if err != nil {
				cmd := m.notify(nav.LevelError, humanizeError(err))
				return m, cmd
			}
			m.profile.load(user)
			cmd := m.notify(nav.LevelSuccess, "Profile updated")
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.admin.formOpen {
		return m.updateAdminForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.newItem):
		m.admin.openForm(nil)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if p, ok := m.admin.current(); ok {
			m.admin.openForm(&p)
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		if p, ok := m.admin.current(); ok {
			m.showConfirm = true
			m.confirmFor = confirmDeleteProduct
			m.confirm.message = fmt.Sprintf("Delete %q?", p.Name)
			m.pendingDelete = p.ID
		}
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.admin.idx > 0 {
			m.admin.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.admin.idx < len(m.admin.products)-1 {
			m.admin.idx++
		}
		return m, nil
	}

	if next, cmd, handled := m.handleNav(keyMsg); handled {
		return next, cmd
	}
	return m, nil
}

func (m appModel) updateAdminForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.admin.formOpen = false
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.admin.focus = focusNext(m.admin.inputs, m.admin.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.admin.focus = focusPrev(m.admin.inputs, m.admin.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			var err error
			if m.admin.editing {
				_, err = m.services.Admin.UpdateProduct(m.ctx, m.admin.productID, m.admin.form())
			} else {
				_, err = m.services.Admin.CreateProduct(m.ctx, m.admin.form())
			}
			if err != nil {
				cmd := m.notify(nav.LevelError, humanizeError(err))
				return m, cmd
			}
			m.admin.formOpen = false
			cmd := m.notify(nav.LevelSuccess, "Product saved")
			m.reload(nav.ViewAdmin)
			m.refreshProducts()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.admin.inputs[m.admin.focus], cmd = m.admin.inputs[m.admin.focus].Update(msg)
	return m, cmd
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearNotification() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func nextCategory(categories []string, current string) string {
	if len(categories) == 0 {
		return service.CategoryAll
	}
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}
	return categories[0]
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
