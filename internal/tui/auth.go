package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-shop-front/models"
)

type authTab int

const (
	tabLogin authTab = iota
	tabSignup
)

const (
	loginFieldEmail = iota
	loginFieldPassword
)

const (
	signupFieldFirstName = iota
	signupFieldLastName
	signupFieldEmail
	signupFieldPhone
	signupFieldPassword
	signupFieldConfirm
)

type authModel struct {
	tab authTab

	loginInputs []textinput.Model
	loginFocus  int

	signupInputs []textinput.Model
	signupFocus  int
}

func newAuthModel() authModel {
	loginInputs := make([]textinput.Model, 2)
	for i := range loginInputs {
		loginInputs[i] = textinput.New()
		loginInputs[i].Width = 40
	}
	loginInputs[loginFieldEmail].Placeholder = "email"
	loginInputs[loginFieldPassword].Placeholder = "password"
	loginInputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	loginInputs[loginFieldPassword].EchoCharacter = '*'
	loginInputs[loginFieldEmail].Focus()

	signupInputs := make([]textinput.Model, 6)
	for i := range signupInputs {
		signupInputs[i] = textinput.New()
		signupInputs[i].Width = 40
	}
	signupInputs[signupFieldFirstName].Placeholder = "first name"
	signupInputs[signupFieldLastName].Placeholder = "last name"
	signupInputs[signupFieldEmail].Placeholder = "email"
	signupInputs[signupFieldPhone].Placeholder = "phone"
	signupInputs[signupFieldPassword].Placeholder = "password"
	signupInputs[signupFieldPassword].EchoMode = textinput.EchoPassword
	signupInputs[signupFieldPassword].EchoCharacter = '*'
	signupInputs[signupFieldConfirm].Placeholder = "confirm password"
	signupInputs[signupFieldConfirm].EchoMode = textinput.EchoPassword
	signupInputs[signupFieldConfirm].EchoCharacter = '*'

	return authModel{loginInputs: loginInputs, signupInputs: signupInputs}
}

func (m authModel) signupForm() models.SignupForm {
	return models.SignupForm{
		FirstName:       m.signupInputs[signupFieldFirstName].Value(),
		LastName:        m.signupInputs[signupFieldLastName].Value(),
		Email:           m.signupInputs[signupFieldEmail].Value(),
		Phone:           m.signupInputs[signupFieldPhone].Value(),
		Password:        m.signupInputs[signupFieldPassword].Value(),
		ConfirmPassword: m.signupInputs[signupFieldConfirm].Value(),
	}
}

func (m authModel) View() string {
	loginTab, signupTab := "[ Login ]", "  Signup  "
	if m.tab == tabSignup {
		loginTab, signupTab = "  Login  ", "[ Signup ]"
	}
	out := titleStyle.Render("Account") + "\n\n"
	out += loginTab + "  " + signupTab + "\n\n"

	if m.tab == tabLogin {
		out += "Email:    " + m.loginInputs[loginFieldEmail].View() + "\n"
		out += "Password: " + m.loginInputs[loginFieldPassword].View() + "\n"
	} else {
		out += "First name: " + m.signupInputs[signupFieldFirstName].View() + "\n"
		out += "Last name:  " + m.signupInputs[signupFieldLastName].View() + "\n"
		out += "Email:      " + m.signupInputs[signupFieldEmail].View() + "\n"
		out += "Phone:      " + m.signupInputs[signupFieldPhone].View() + "\n"
		out += "Password:   " + m.signupInputs[signupFieldPassword].View() + "\n"
		out += "Confirm:    " + m.signupInputs[signupFieldConfirm].View() + "\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  ctrl+t switch tab  esc home")
	return out
}
