package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-shop-front/models"
)

const (
	adminFieldName = iota
	adminFieldRef
	adminFieldCategory
	adminFieldPrice
	adminFieldStock
	adminFieldImage
	adminFieldDescription
)

type adminModel struct {
	products []models.Product
	idx      int

	formOpen  bool
	editing   bool
	productID int64
	inputs    []textinput.Model
	focus     int
}

func newAdminModel() adminModel {
	inputs := make([]textinput.Model, 7)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[adminFieldName].Placeholder = "name"
	inputs[adminFieldRef].Placeholder = "reference"
	inputs[adminFieldCategory].Placeholder = "category"
	inputs[adminFieldPrice].Placeholder = "price"
	inputs[adminFieldStock].Placeholder = "stock"
	inputs[adminFieldImage].Placeholder = "image"
	inputs[adminFieldDescription].Placeholder = "description"
	return adminModel{inputs: inputs}
}

func (m adminModel) current() (models.Product, bool) {
	if len(m.products) == 0 || m.idx < 0 || m.idx >= len(m.products) {
		return models.Product{}, false
	}
	return m.products[m.idx], true
}

func (m *adminModel) openForm(product *models.Product) {
	m.formOpen = true
	m.editing = product != nil
	m.productID = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	if product != nil {
		m.productID = product.ID
		m.inputs[adminFieldName].SetValue(product.Name)
		m.inputs[adminFieldRef].SetValue(product.Ref)
		m.inputs[adminFieldCategory].SetValue(product.Category)
		m.inputs[adminFieldPrice].SetValue(strconv.FormatFloat(product.Price, 'f', -1, 64))
		m.inputs[adminFieldStock].SetValue(strconv.Itoa(product.Stock))
		m.inputs[adminFieldImage].SetValue(product.Image)
		m.inputs[adminFieldDescription].SetValue(product.Description)
	}
	m.focus = 0
	m.inputs[0].Focus()
}

// form parses the numeric fields. A malformed number comes back as its
// zero value and is rejected by the form validator downstream.
func (m adminModel) form() models.ProductForm {
	price, _ := strconv.ParseFloat(m.inputs[adminFieldPrice].Value(), 64)
	stock, _ := strconv.Atoi(m.inputs[adminFieldStock].Value())
	return models.ProductForm{
		Name:        m.inputs[adminFieldName].Value(),
		Ref:         m.inputs[adminFieldRef].Value(),
		Category:    m.inputs[adminFieldCategory].Value(),
		Price:       price,
		Stock:       stock,
		Image:       m.inputs[adminFieldImage].Value(),
		Description: m.inputs[adminFieldDescription].Value(),
	}
}

func (m adminModel) View() string {
	if m.formOpen {
		return m.viewForm()
	}

	out := titleStyle.Render("Admin: Product Catalog") + "\n\n"

	if len(m.products) == 0 {
		out += "  Catalog is empty\n"
	}
	for i, p := range m.products {
		out += fmt.Sprintf("%s%-4d %-30s %-14s %10s  %s\n",
			cursorFor(i == m.idx), p.ID, fitText(p.Name, 30), fitText(p.Category, 14), money(p.Price), stockLabel(p.Stock))
	}

	out += "\n" + helpStyle.Render("n new  e edit  d delete  q quit")
	return out
}

func (m adminModel) viewForm() string {
	title := "New product"
	if m.editing {
		title = "Edit product #" + strconv.FormatInt(m.productID, 10)
	}
	out := titleStyle.Render(title) + "\n\n"
	out += "Name:        " + m.inputs[adminFieldName].View() + "\n"
	out += "Reference:   " + m.inputs[adminFieldRef].View() + "\n"
	out += "Category:    " + m.inputs[adminFieldCategory].View() + "\n"
	out += "Price:       " + m.inputs[adminFieldPrice].View() + "\n"
	out += "Stock:       " + m.inputs[adminFieldStock].View() + "\n"
	out += "Image:       " + m.inputs[adminFieldImage].View() + "\n"
	out += "Description: " + m.inputs[adminFieldDescription].View() + "\n"
	out += "\n" + helpStyle.Render("enter save  tab next field  esc cancel")
	return out
}
