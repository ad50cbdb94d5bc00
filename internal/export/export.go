// Package export renders the clean CV into downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// ErrUnsupportedFormat is returned for formats that have no exporter
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Result is an exported document
type Result struct {
	ContentType string
	Filename    string
	Data        []byte
}

// Exporter renders a clean CV
type Exporter func(cv types.CleanCv) ([]byte, error)

var exporters = map[types.ExportFormat]struct {
	contentType string
	render      Exporter
}{
	types.FormatCSV:  {"text/csv; charset=utf-8", CSV},
	types.FormatText: {"text/plain; charset=utf-8", Text},
	types.FormatJSON: {"application/json", JSON},
}

// Export renders cv in format. PDF has no layout engine and returns ErrUnsupportedFormat.
func Export(format types.ExportFormat, cv types.CleanCv) (Result, error) {
	exp, ok := exporters[format]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	data, err := exp.render(cv)
	if err != nil {
		return Result{}, fmt.Errorf("failed to export %s: %w", format, err)
	}
	return Result{
		ContentType: exp.contentType,
		Filename:    "cv." + string(format),
		Data:        data,
	}, nil
}

// CSV writes one row per text entry and one row per record field
func CSV(cv types.CleanCv) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"section", "type", "entry", "field", "value"}}
	info := cv.PersonalInfo
	for _, f := range []struct{ key, value string }{
		{"fullName", info.FullName},
		{"jobTitle", info.JobTitle},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
		{"website", info.Website},
		{"summary", info.Summary},
	} {
		if f.value != "" {
			rows = append(rows, []string{"Personal Info", "", "", f.key, f.value})
		}
	}

	for _, section := range cv.Sections {
		for i, entry := range section.Entries {
			n := fmt.Sprint(i + 1)
			if !entry.IsRecord() {
				rows = append(rows, []string{section.Name, string(section.Type), n, "", entry.Text})
				continue
			}
			for _, field := range entry.Fields {
				rows = append(rows, []string{section.Name, string(section.Type), n, field.Key, entry.GetString(field.Key)})
			}
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Text renders a plain-text CV
func Text(cv types.CleanCv) ([]byte, error) {
	var sb strings.Builder
	info := cv.PersonalInfo

	if info.FullName != "" {
		sb.WriteString(info.FullName + "\n")
	}
	if info.JobTitle != "" {
		sb.WriteString(info.JobTitle + "\n")
	}
	var contact []string
	for _, v := range []string{info.Email, info.Phone, info.Address, info.Website} {
		if v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		sb.WriteString(strings.Join(contact, " | ") + "\n")
	}
	if info.Summary != "" {
		sb.WriteString("\n" + info.Summary + "\n")
	}

	for _, section := range cv.Sections {
		sb.WriteString("\n" + strings.ToUpper(section.Name) + "\n")
		sb.WriteString(strings.Repeat("-", len([]rune(section.Name))) + "\n")
		for _, entry := range section.Entries {
			if !entry.IsRecord() {
				sb.WriteString("- " + entry.Text + "\n")
				continue
			}
			for i, field := range entry.Fields {
				prefix := "  "
				if i == 0 {
					prefix = "- "
				}
				sb.WriteString(fmt.Sprintf("%s%s: %s\n", prefix, field.Key, entry.GetString(field.Key)))
			}
		}
	}
	return []byte(sb.String()), nil
}

// JSON renders the clean CV as indented JSON
func JSON(cv types.CleanCv) ([]byte, error) {
	data, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
