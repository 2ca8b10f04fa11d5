// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

// Medium is the channel a code is sent through.
type Medium string

const (
	MediumEmail Medium = "email"
	MediumPhone Medium = "phone"
)

// emailLanguages pick email over phone. The rule is arbitrary and not localized.
var emailLanguages = map[string]struct{}{"fr": {}}

// MediumFor returns the contact medium used when switching to languageCode.
func MediumFor(languageCode string) Medium {
	if _, ok := emailLanguages[languageCode]; ok {
		return MediumEmail
	}
	return MediumPhone
}
