// Package ui holds the client-side product state, the store that drives it
// against the API and the terminal renderer.
package ui

import "estoque/internal/model"

// Draft is the editable copy of a product while the form is open.
type Draft struct {
	Name       string
	Kind       model.Kind
	Quantity   int
	OutOfStock bool
}

// NewDraft returns the defaults used when creating a product.
func NewDraft() Draft {
	return Draft{Kind: model.KindFresh}
}

// DraftFrom seeds a draft from an existing product.
func DraftFrom(p model.Product) Draft {
	return Draft{
		Name:       p.Name,
		Kind:       p.Kind,
		Quantity:   p.Quantity,
		OutOfStock: p.OutOfStock,
	}
}

// Input converts the draft to a full API payload.
func (d Draft) Input() model.ProductInput {
	name, kind, quantity, outOfStock := d.Name, d.Kind, d.Quantity, d.OutOfStock
	return model.ProductInput{
		Name:       &name,
		Kind:       &kind,
		Quantity:   &quantity,
		OutOfStock: &outOfStock,
	}
}

// Form is an open create or edit form. EditingID is nil in create mode.
type Form struct {
	EditingID *int64
	Draft     Draft
}

// Editing reports whether the form edits an existing product.
func (f *Form) Editing() bool {
	return f != nil && f.EditingID != nil
}

// State is the client view of the inventory. Values are never mutated in
// place; Reduce returns a new State.
type State struct {
	Products []model.Product
	Loading  bool
	Form     *Form
	Err      error
}

// Action describes one state transition.
type Action interface {
	action()
}

// LoadStarted marks a list fetch in flight.
type LoadStarted struct{}

// LoadSucceeded replaces the product list with a fresh copy from the API.
type LoadSucceeded struct {
	Products []model.Product
}

// FormOpenedCreate opens the form with default values.
type FormOpenedCreate struct{}

// FormOpenedEdit opens the form seeded from Product.
type FormOpenedEdit struct {
	Product model.Product
}

// DraftChanged replaces the draft of the open form.
type DraftChanged struct {
	Draft Draft
}

// FormClosed discards the open form.
type FormClosed struct{}

// SubmitSucceeded clears the draft and leaves form mode.
type SubmitSucceeded struct{}

// RequestFailed records a failed API call. The form, if open, stays open.
type RequestFailed struct {
	Err error
}

func (LoadStarted) action()      {}
func (LoadSucceeded) action()    {}
func (FormOpenedCreate) action() {}
func (FormOpenedEdit) action()   {}
func (DraftChanged) action()     {}
func (FormClosed) action()       {}
func (SubmitSucceeded) action()  {}
func (RequestFailed) action()    {}

// Reduce applies a to s and returns the resulting state.
func Reduce(s State, a Action) State {
	next := s

	switch a := a.(type) {
	case LoadStarted:
		next.Loading = true
	case LoadSucceeded:
		next.Loading = false
		next.Err = nil
		next.Products = make([]model.Product, len(a.Products))
		copy(next.Products, a.Products)
	case FormOpenedCreate:
		next.Form = &Form{Draft: NewDraft()}
		next.Err = nil
	case FormOpenedEdit:
		id := a.Product.ID
		next.Form = &Form{EditingID: &id, Draft: DraftFrom(a.Product)}
		next.Err = nil
	case DraftChanged:
		if s.Form == nil {
			return s
		}
		next.Form = &Form{EditingID: s.Form.EditingID, Draft: a.Draft}
	case FormClosed, SubmitSucceeded:
		next.Form = nil
		next.Err = nil
	case RequestFailed:
		next.Loading = false
		next.Err = a.Err
	}

	return next
}
