package postprocess

import (
	"strings"

	"github.com/arthurdick/familytree-text/record"
)

// placeBearingFields names, for each field key, the segment index holding a
// place expression (spec §4.3.3).
var placeBearingFields = map[string]int{
	"BORN":  1,
	"DIED":  1,
	"EVENT": 3,
	"PLACE": 0,
}

// parsePlaces implements spec §4.3.3: if a place segment contains `{=` or
// `<`, it is split into display (raw with `{=…}` and `<lat,long>` stripped),
// geoAlias (each `X {=Y}` replaced with `Y`, coordinates stripped), and
// coords (`"<lat, lon>"` if present). The result is stored as the field's
// place metadata; fields without either marker are left untouched.
func parsePlaces(doc *record.Document) {
	for _, id := range doc.RecordOrder() {
		rec, _ := doc.Record(id)
		for key, idx := range placeBearingFields {
			for _, f := range rec.Fields(key) {
				raw, ok := f.Segment(idx)
				if !ok || raw == "" {
					continue
				}
				if !strings.Contains(raw, "{=") && !strings.Contains(raw, "<") {
					continue
				}
				f.SetPlace(parsePlaceExpression(raw))
			}
		}
	}
}

func parsePlaceExpression(raw string) record.Place {
	coords, rest := extractCoords(raw)
	display := stripAliases(rest, false)
	geoAlias := stripAliases(rest, true)
	return record.Place{Display: display, GeoAlias: geoAlias, Coords: coords}
}

// extractCoords pulls out a trailing `<lat,long>` marker, returning the
// formatted coords string (or "" if absent) and the input with the marker
// removed.
func extractCoords(s string) (coords, rest string) {
	start := strings.LastIndex(s, "<")
	if start < 0 {
		return "", s
	}
	end := strings.Index(s[start:], ">")
	if end < 0 {
		return "", s
	}
	end += start
	inner := s[start+1 : end]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return "", s
	}
	lat := strings.TrimSpace(parts[0])
	lon := strings.TrimSpace(parts[1])
	coords = "<" + lat + ", " + lon + ">"
	rest = s[:start] + s[end+1:]
	return coords, rest
}

// stripAliases walks the remaining place text (after coordinate removal)
// and, for each `X {=Y}` marker, either drops it entirely (display form) or
// replaces it with Y (geoAlias form).
func stripAliases(s string, useAlias bool) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "{=")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start
		alias := s[start+2 : end]

		before := s[:start]
		segStart := strings.LastIndexAny(before, ";")
		prefix := before[:segStart+1]
		label := strings.TrimSpace(before[segStart+1:])

		b.WriteString(prefix)
		if useAlias {
			b.WriteString(alias)
		} else {
			b.WriteString(label)
		}
		s = s[end+1:]
	}
	return strings.TrimSpace(b.String())
}
