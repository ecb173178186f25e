package views

import (
	"fmt"
	"slices"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/tui/ui"
	"github.com/rivo/tview"
)

type formField struct{ key, label, placeholder string }

// profileFields lists the form inputs with their field keys.
var profileFields = []formField{
	{"name", "Name", "Enter your full name"},
	{"email", "Email", "Enter your email"},
	{"phone", "Phone", "Enter your phone number"},
	{"status", "Status", "Enter your status"},
	{"bio", "Bio", "Tell us about yourself"},
}

// EditProfile is the profile form.
type EditProfile struct {
	*tview.Flex
	theme    *ui.Theme
	form     *tview.Form
	errors   *tview.TextView
	inputs   map[string]*tview.InputField
	onSave   func(p *baatchitv1.Profile)
	onCancel func()
}

// NewEditProfile creates the edit-profile page.
func NewEditProfile(theme *ui.Theme) *EditProfile {
	form := tview.NewForm()
	form.SetBorder(true)
	form.SetTitle(" Edit Profile ")

	errs := tview.NewTextView().SetDynamicColors(true)
	errs.SetBorderPadding(0, 0, 2, 0)

	ep := &EditProfile{
		Flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(form, 0, 1, true).
			AddItem(errs, 5, 0, false),
		form:   form,
		errors: errs,
		inputs: make(map[string]*tview.InputField),
	}

	for _, f := range profileFields {
		input := tview.NewInputField().
			SetLabel(f.label).
			SetPlaceholder(f.placeholder).
			SetFieldWidth(40)
		ep.inputs[f.key] = input
		form.AddFormItem(input)
	}
	form.AddButton("Save", func() {
		if ep.onSave != nil {
			ep.onSave(ep.Value())
		}
	})
	form.AddButton("Cancel", func() {
		if ep.onCancel != nil {
			ep.onCancel()
		}
	})
	form.SetCancelFunc(func() {
		if ep.onCancel != nil {
			ep.onCancel()
		}
	})

	ep.ApplyTheme(theme)
	return ep
}

// Name implements ui.Component.
func (ep *EditProfile) Name() string { return "Edit Profile" }

// Hints implements ui.Component.
func (ep *EditProfile) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Press button"},
		{Key: "Esc", Description: "Cancel"},
	}
}

// ApplyTheme implements ui.Component.
func (ep *EditProfile) ApplyTheme(theme *ui.Theme) {
	ep.theme = theme
	ep.SetBackgroundColor(theme.BgColor)
	ep.errors.SetBackgroundColor(theme.BgColor)
	ep.form.SetBackgroundColor(theme.BgColor)
	ep.form.SetBorderColor(theme.BorderColor)
	ep.form.SetTitleColor(theme.TitleColor)
	ep.form.SetLabelColor(theme.FgColor)
	ep.form.SetFieldBackgroundColor(theme.SurfaceColor)
	ep.form.SetFieldTextColor(theme.FgColor)
	ep.form.SetButtonBackgroundColor(theme.TabActiveBg)
	ep.form.SetButtonTextColor(theme.TabActiveFg)
	for _, in := range ep.inputs {
		in.SetPlaceholderTextColor(theme.MutedColor)
	}
}

// SetOnSave sets the callback for the Save button.
func (ep *EditProfile) SetOnSave(fn func(p *baatchitv1.Profile)) { ep.onSave = fn }

// SetOnCancel sets the callback for Cancel and Esc.
func (ep *EditProfile) SetOnCancel(fn func()) { ep.onCancel = fn }

// Load fills the form with p and clears any errors.
func (ep *EditProfile) Load(p *baatchitv1.Profile) {
	ep.inputs["name"].SetText(p.GetName())
	ep.inputs["email"].SetText(p.GetEmail())
	ep.inputs["phone"].SetText(p.GetPhone())
	ep.inputs["status"].SetText(p.GetStatus())
	ep.inputs["bio"].SetText(p.GetBio())
	ep.SetErrors(nil)
	ep.form.SetFocus(0)
}

// Value returns the profile as currently typed.
func (ep *EditProfile) Value() *baatchitv1.Profile {
	return &baatchitv1.Profile{
		Name:   ep.inputs["name"].GetText(),
		Email:  ep.inputs["email"].GetText(),
		Phone:  ep.inputs["phone"].GetText(),
		Status: ep.inputs["status"].GetText(),
		Bio:    ep.inputs["bio"].GetText(),
	}
}

// SetErrors shows per-field validation messages in form order.
func (ep *EditProfile) SetErrors(fieldErrors map[string]string) {
	ep.errors.Clear()
	for _, f := range profileFields {
		label := f.label
		if _, bad := fieldErrors[f.key]; bad {
			label = "* " + f.label
		}
		ep.inputs[f.key].SetLabel(label)
	}
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return fieldIndex(a) - fieldIndex(b) })
	for _, k := range keys {
		_, _ = fmt.Fprintf(ep.errors, "[%s]%s[-]\n", ui.Tag(ep.theme.FlashErrColor), tview.Escape(fieldErrors[k]))
	}
}

// ErrorText returns the rendered error lines without color tags.
func (ep *EditProfile) ErrorText() string {
	return ep.errors.GetText(true)
}

func fieldIndex(key string) int {
	return slices.IndexFunc(profileFields, func(f formField) bool { return f.key == key })
}
