package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-shop-front/models"
)

const (
	profileFieldFirstName = iota
	profileFieldLastName
	profileFieldEmail
	profileFieldPhone
)

type profileModel struct {
	inputs []textinput.Model
	focus  int
	user   models.User
}

func newProfileModel() profileModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	return profileModel{inputs: inputs}
}

func (m *profileModel) load(user models.User) {
	m.user = user
	m.inputs[profileFieldFirstName].SetValue(user.FirstName)
	m.inputs[profileFieldLastName].SetValue(user.LastName)
	m.inputs[profileFieldEmail].SetValue(user.Email)
	m.inputs[profileFieldPhone].SetValue(user.Phone)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m profileModel) form() models.ProfileForm {
	return models.ProfileForm{
		FirstName: m.inputs[profileFieldFirstName].Value(),
		LastName:  m.inputs[profileFieldLastName].Value(),
		Email:     m.inputs[profileFieldEmail].Value(),
		Phone:     m.inputs[profileFieldPhone].Value(),
	}
}

func (m profileModel) View() string {
	out := titleStyle.Render("My Profile") + "\n\n"
	out += fmt.Sprintf("Member since %s", m.user.Joined)
	if m.user.IsAdmin {
		out += "  (administrator)"
	}
	out += "\n\n"

	out += "First name: " + m.inputs[profileFieldFirstName].View() + "\n"
	out += "Last name:  " + m.inputs[profileFieldLastName].View() + "\n"
	out += "Email:      " + m.inputs[profileFieldEmail].View() + "\n"
	out += "Phone:      " + m.inputs[profileFieldPhone].View() + "\n"

	if len(m.user.Addresses) > 0 {
		out += "\nSaved addresses:\n"
		for _, a := range m.user.Addresses {
			def := ""
			if a.IsDefault {
				def = " (default)"
			}
			out += fmt.Sprintf("  %s: %s, %s, %s %s%s\n", a.Label, a.Street, a.City, a.State, a.Zip, def)
		}
	}

	out += "\n" + helpStyle.Render("enter save  tab next field  ctrl+l logout  esc home")
	return out
}
