// Package score folds page signals into a bounded lead-quality score.
package score

import "github.com/leadforge/leadscan-cli/internal/model"

// Profile is a named weight table. Score is a pure function of a profile
// and a signal set; swapping profiles never touches detector output.
type Profile struct {
	Name string

	Base        int
	Chat        int
	ContactForm int
	AnyForm     int
	Phone       int
	Email       int
	Technology  int

	// AnyFormExclusive grants the AnyForm bonus only when no contact-intent
	// form was found. When false the bonus stacks on top of ContactForm.
	AnyFormExclusive bool

	Clamp int
}

// StandardProfile is the batch-scan weight table: the any-form bonus is a
// weaker substitute for a missing contact-intent form, clamped to 20.
func StandardProfile() Profile {
	return Profile{
		Name:             "standard",
		Base:             5,
		Chat:             8,
		ContactForm:      7,
		AnyForm:          2,
		Phone:            3,
		Email:            2,
		Technology:       1,
		AnyFormExclusive: true,
		Clamp:            20,
	}
}

// DeepScanProfile is the single-URL scan weight table: the any-form bonus
// stacks with the contact-form bonus and the ceiling is 25.
func DeepScanProfile() Profile {
	return Profile{
		Name:        "deep",
		Base:        5,
		Chat:        8,
		ContactForm: 7,
		AnyForm:     2,
		Phone:       3,
		Email:       2,
		Technology:  1,
		Clamp:       25,
	}
}

// ByName resolves a profile by its configured name, defaulting to standard.
func ByName(name string) Profile {
	if name == "deep" {
		return DeepScanProfile()
	}
	return StandardProfile()
}

// Score computes the weighted sum for the given signals, clamped to
// [0, Clamp]. Monotonic in every contributing signal.
func (p Profile) Score(s model.PageSignals) int {
	v := p.Base
	if s.HasChat {
		v += p.Chat
	}
	if s.HasForm {
		v += p.ContactForm
	}
	if s.HasAnyForm && (!p.AnyFormExclusive || !s.HasForm) {
		v += p.AnyForm
	}
	if len(s.Phones) > 0 {
		v += p.Phone
	}
	if len(s.Emails) > 0 {
		v += p.Email
	}
	if len(s.Technologies) > 0 {
		v += p.Technology
	}

	if v < 0 {
		v = 0
	}
	if v > p.Clamp {
		v = p.Clamp
	}
	return v
}
