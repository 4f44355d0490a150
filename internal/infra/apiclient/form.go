package apiclient

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"

	"beautyverse-storefront/internal/pkg/errs"
)

// Form is a multipart/form-data body, built in field order.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	content  io.Reader
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// SetIf adds the field only when value is non-empty, mirroring optional form inputs.
func (f *Form) SetIf(name, value string) *Form {
	if value == "" {
		return f
	}
	return f.Set(name, value)
}

// SetJSON adds v encoded as a JSON string, the way list-valued fields are sent.
func (f *Form) SetJSON(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrapf(err, "encode form field %s", name)
	}
	f.Set(name, string(b))
	return nil
}

func (f *Form) File(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

func (f *Form) Value(name string) (string, bool) {
	for _, fld := range f.fields {
		if fld.name == name {
			return fld.value, true
		}
	}
	return "", false
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", errs.Wrapf(err, "write form field %s", fld.name)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", errs.Wrapf(err, "create form file %s", file.field)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", errs.Wrapf(err, "copy form file %s", file.field)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errs.Wrap(err, "close multipart writer")
	}
	return &buf, w.FormDataContentType(), nil
}
