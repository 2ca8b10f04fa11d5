// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package page

import (
	"fmt"
	"io"
	"strings"
)

// WriteText prints v as plain text, one block per view.
func WriteText(w io.Writer, v View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "== %s ==\n", v.Title)

	fmt.Fprintf(&b, "%s:", v.LanguageList.Heading)
	for _, item := range v.LanguageList.Languages {
		marker := " "
		if item.Active {
			marker = "*"
		}
		fmt.Fprintf(&b, " [%s%s %s]", marker, item.Flag, item.Name)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s (%s): %s\n", v.Content.Heading, v.Content.LanguageCode, v.Content.Text)

	if m := v.Modal; m != nil {
		fmt.Fprintf(&b, "-- %s --\n", m.Title)
		fmt.Fprintf(&b, "   %s: %q\n", m.Label, m.Value)
		state := ""
		if m.Disabled {
			state = " (disabled)"
		}
		fmt.Fprintf(&b, "   <%s>%s\n", m.ButtonLabel, state)
	}

	if v.Banner != nil {
		fmt.Fprintf(&b, ">> %s\n", v.Banner.Message)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
