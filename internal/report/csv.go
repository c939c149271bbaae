package report

import (
	"encoding/csv"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// Delimited renders any slice of uniformly-shaped records as
// comma-separated text: one header line with the field names in
// declaration order of the record type, then one line per record. Field
// names come from the json tag when present. Values containing the
// delimiter, a quote or a line break are quoted. Empty input yields an
// empty string.
func Delimited[T any](records []T) string {
	if len(records) == 0 {
		return ""
	}

	rt := reflect.TypeOf(records[0])
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return ""
	}

	var fields []int
	var header []string
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := fieldName(f)
		if name == "-" {
			continue
		}
		fields = append(fields, i)
		header = append(header, name)
	}

	var b strings.Builder
	writeDelimitedLine(&b, header)
	for _, rec := range records {
		rv := reflect.ValueOf(rec)
		if rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		values := make([]string, 0, len(fields))
		for _, i := range fields {
			values = append(values, formatValue(rv.Field(i)))
		}
		writeDelimitedLine(&b, values)
	}

	return b.String()
}

func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v.Interface())
}

func writeDelimitedLine(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(v))
	}
	b.WriteByte('\n')
}

// escapeField quotes a value that would otherwise corrupt the output.
func escapeField(v string) string {
	if !strings.ContainsAny(v, ",\"\n\r") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// EventsCSV is the stricter, explicitly-selected export for event data.
// Output is round-trippable with any CSV parser that respects quoting.
func EventsCSV(events []domain.Event) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write([]string{"id", "tipo", "severidad", "descripcion", "timestamp", "camara", "resuelto"})
	for _, e := range events {
		_ = w.Write([]string{
			strconv.FormatInt(e.ID, 10),
			e.Type,
			string(e.Severity),
			e.Description,
			e.Timestamp.Format(time.RFC3339),
			e.CameraName,
			strconv.FormatBool(e.Resolved),
		})
	}
	w.Flush()

	return b.String()
}

// DetectionsCSV exports the detection history with explicit field
// selection.
func DetectionsCSV(detections []domain.Detection) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write([]string{"id", "nombre", "apellido", "camara", "confianza", "es_desconocido", "timestamp"})
	for _, d := range detections {
		_ = w.Write([]string{
			strconv.FormatInt(d.ID, 10),
			d.FirstName,
			d.LastName,
			d.CameraName,
			strconv.FormatFloat(d.Confidence, 'f', -1, 64),
			strconv.FormatBool(d.IsUnknown),
			d.Timestamp.Format(time.RFC3339),
		})
	}
	w.Flush()

	return b.String()
}

// PeopleCSV exports the registered-people list with explicit field
// selection.
func PeopleCSV(people []domain.Person) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write([]string{"id", "nombre", "apellido", "tipo", "activo", "fecha_registro"})
	for _, p := range people {
		_ = w.Write([]string{
			strconv.FormatInt(p.ID, 10),
			p.FirstName,
			p.LastName,
			string(p.Type),
			strconv.FormatBool(p.Active),
			p.RegisteredAt.Format(time.RFC3339),
		})
	}
	w.Flush()

	return b.String()
}
