// Package types provides type definitions for the CV document and the payloads exchanged with the AI and export endpoints.
//
//nolint:revive // types is a standard Go package name pattern
package types

// String returns a pointer to s, for building patches
func String(s string) *string {
	return &s
}

// ThemePatch is a partial theme. Nil fields leave the current value untouched.
type ThemePatch struct {
	TemplateName   *TemplateName `json:"templateName,omitempty" validate:"omitempty,oneof=classic modern creative"`
	FontFamily     *string       `json:"fontFamily,omitempty"`
	FontSize       *string       `json:"fontSize,omitempty"`
	PrimaryColor   *string       `json:"primaryColor,omitempty"`
	BgColor        *string       `json:"bgColor,omitempty"`
	TextColor      *string       `json:"textColor,omitempty"`
	PageMargin     *string       `json:"pageMargin,omitempty"`
	SectionSpacing *string       `json:"sectionSpacing,omitempty"`
	LineSpacing    *string       `json:"lineSpacing,omitempty"`
	Pattern        *string       `json:"pattern,omitempty"`
}

// FullThemePatch turns a complete theme into a patch that overwrites every field
func FullThemePatch(t Theme) ThemePatch {
	name := t.TemplateName
	return ThemePatch{
		TemplateName:   &name,
		FontFamily:     String(t.FontFamily),
		FontSize:       String(t.FontSize),
		PrimaryColor:   String(t.PrimaryColor),
		BgColor:        String(t.BgColor),
		TextColor:      String(t.TextColor),
		PageMargin:     String(t.PageMargin),
		SectionSpacing: String(t.SectionSpacing),
		LineSpacing:    String(t.LineSpacing),
		Pattern:        String(t.Pattern),
	}
}

// Merge returns t with every non-nil patch field applied
func (t Theme) Merge(p ThemePatch) Theme {
	if p.TemplateName != nil {
		t.TemplateName = *p.TemplateName
	}
	mergeString(&t.FontFamily, p.FontFamily)
	mergeString(&t.FontSize, p.FontSize)
	mergeString(&t.PrimaryColor, p.PrimaryColor)
	mergeString(&t.BgColor, p.BgColor)
	mergeString(&t.TextColor, p.TextColor)
	mergeString(&t.PageMargin, p.PageMargin)
	mergeString(&t.SectionSpacing, p.SectionSpacing)
	mergeString(&t.LineSpacing, p.LineSpacing)
	mergeString(&t.Pattern, p.Pattern)
	return t
}

// PersonalInfoPatch is a partial personal-info record. Nil fields are left untouched.
type PersonalInfoPatch struct {
	FullName *string `json:"fullName,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Website  *string `json:"website,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

// Merge returns p with every non-nil patch field applied
func (p PersonalInfo) Merge(patch PersonalInfoPatch) PersonalInfo {
	mergeString(&p.FullName, patch.FullName)
	mergeString(&p.JobTitle, patch.JobTitle)
	mergeString(&p.Email, patch.Email)
	mergeString(&p.Phone, patch.Phone)
	mergeString(&p.Address, patch.Address)
	mergeString(&p.Website, patch.Website)
	mergeString(&p.Summary, patch.Summary)
	return p
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
