// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package page renders flow snapshots into the views a front end draws.

Views are display-only: they hold no state of their own and are rebuilt from a
[flow.Snapshot] on every change. The HTTP handler serves them as JSON; the CLI
prints them with [WriteText].
*/
package page

import (
	"github.com/taibuivan/langgate/internal/core/flow"
	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
)

// Title is the page heading.
const Title = "Multi-language Experience"

// View is the whole page.
type View struct {
	Title        string           `json:"title"`
	LanguageList LanguageListView `json:"language_list"`
	Content      ContentView      `json:"content"`
	Modal        *AuthModalView   `json:"modal"`
	Banner       *BannerView      `json:"banner"`
}

// LanguageListView is the picker.
type LanguageListView struct {
	Heading   string         `json:"heading"`
	Languages []LanguageItem `json:"languages"`
}

// LanguageItem is one picker button.
type LanguageItem struct {
	language.Language
	Active bool `json:"active"`
}

// ContentView shows the welcome string in the active language.
type ContentView struct {
	Heading      string `json:"heading"`
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
}

// AuthModalView is the verification dialog.
type AuthModalView struct {
	Title        string    `json:"title"`
	Step         flow.Step `json:"step"`
	LanguageCode string    `json:"language_code"`
	Label        string    `json:"label"`
	InputType    string    `json:"input_type"`
	Placeholder  string    `json:"placeholder"`
	Value        string    `json:"value"`
	ButtonLabel  string    `json:"button_label"`
	Disabled     bool      `json:"disabled"`
}

// BannerView is the transient success toast.
type BannerView struct {
	Message string `json:"message"`
}

// Render builds the page for snap.
func Render(snap flow.Snapshot) View {
	return View{
		Title:        Title,
		LanguageList: RenderLanguageList(snap),
		Content:      RenderContent(snap),
		Modal:        RenderModal(snap),
		Banner:       RenderBanner(snap),
	}
}

// RenderLanguageList marks the active language in catalog order.
func RenderLanguageList(snap flow.Snapshot) LanguageListView {
	langs := snap.Catalog().Languages()
	items := make([]LanguageItem, len(langs))
	for i, l := range langs {
		items[i] = LanguageItem{Language: l, Active: l.Code == snap.ActiveLanguage}
	}
	return LanguageListView{Heading: "Select Your Language", Languages: items}
}

// RenderContent looks up the active translation.
func RenderContent(snap flow.Snapshot) ContentView {
	text, _ := snap.Catalog().Translation(snap.ActiveLanguage)
	return ContentView{
		Heading:      "Translated Content",
		LanguageCode: snap.ActiveLanguage,
		Text:         text,
	}
}

// RenderModal returns nil while no session is open.
func RenderModal(snap flow.Snapshot) *AuthModalView {
	session := snap.Session
	if session == nil {
		return nil
	}

	modal := &AuthModalView{
		Step:         session.Step,
		LanguageCode: session.LanguageCode,
		Disabled:     session.Submitting,
	}

	switch session.Step {
	case flow.StepAwaitingContact:
		modal.Title = "Verify Your Identity"
		modal.Value = session.ContactInput
		modal.ButtonLabel = "Send OTP"
		if session.Medium == otp.MediumEmail {
			modal.Label = "Email Address"
			modal.InputType = "email"
			modal.Placeholder = "Enter your email"
		} else {
			modal.Label = "Phone Number"
			modal.InputType = "tel"
			modal.Placeholder = "Enter your phone number"
		}
	default:
		modal.Title = "Enter OTP"
		modal.Label = "One-Time Password"
		modal.InputType = "text"
		modal.Placeholder = "Enter the OTP"
		modal.Value = session.OTPInput
		modal.ButtonLabel = "Verify OTP"
	}

	if session.Submitting {
		modal.ButtonLabel = "Sending OTP..."
	}
	return modal
}

// RenderBanner returns nil while the banner is hidden.
func RenderBanner(snap flow.Snapshot) *BannerView {
	if !snap.BannerVisible {
		return nil
	}
	name := snap.ActiveLanguage
	if l, ok := snap.Catalog().Lookup(snap.ActiveLanguage); ok {
		name = l.Name
	}
	return &BannerView{Message: "Language successfully changed to " + name + "!"}
}
