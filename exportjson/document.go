package exportjson

import (
	"encoding/json"

	"github.com/arthurdick/familytree-text/record"
)

// graphOutput is the wire shape for a [record.RecordGraph].
type graphOutput struct {
	Headers map[string]string `json:"headers"`
	Records []recordOutput    `json:"records"`
}

type recordOutput struct {
	ID     string        `json:"id"`
	Kind   string        `json:"kind"`
	Fields []fieldOutput `json:"fields"`
}

type fieldOutput struct {
	Key       string           `json:"key"`
	Segments  []string         `json:"segments"`
	Implicit  bool             `json:"implicit,omitempty"`
	Modifiers []modifierOutput `json:"modifiers,omitempty"`
	Place     *placeOutput     `json:"place,omitempty"`
}

type modifierOutput struct {
	Key      string   `json:"key"`
	Segments []string `json:"segments"`
}

type placeOutput struct {
	Display  string `json:"display"`
	GeoAlias string `json:"geoAlias,omitempty"`
	Coords   string `json:"coords,omitempty"`
}

// MarshalGraph serializes graph to JSON bytes.
func MarshalGraph(graph *record.RecordGraph, opts ...WriteOption) ([]byte, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	cfg := resolve(opts)
	out := buildGraphOutput(graph)

	if cfg.indent != "" {
		return json.MarshalIndent(out, "", cfg.indent)
	}
	return json.Marshal(out)
}

func buildGraphOutput(graph *record.RecordGraph) graphOutput {
	out := graphOutput{Headers: map[string]string{}}
	for _, key := range graph.HeaderKeys() {
		if v, ok := graph.Headers().Get(key); ok {
			if s, isString := v.String(); isString {
				out.Headers[key] = s
			}
		}
	}

	for _, id := range graph.RecordOrder() {
		rec, ok := graph.Record(id)
		if !ok {
			continue
		}
		out.Records = append(out.Records, buildRecordOutput(rec))
	}
	return out
}

func buildRecordOutput(rec *record.Record) recordOutput {
	ro := recordOutput{ID: rec.ID(), Kind: rec.Kind().String()}
	for _, key := range rec.FieldKeys() {
		for _, f := range rec.Fields(key) {
			fo := fieldOutput{
				Key:      f.Key(),
				Segments: f.Segments(),
				Implicit: f.IsImplicit(),
			}
			for _, mk := range f.ModifierKeys() {
				for _, m := range f.Modifiers(mk) {
					fo.Modifiers = append(fo.Modifiers, modifierOutput{
						Key:      m.Key(),
						Segments: m.Segments(),
					})
				}
			}
			if p, ok := f.Place(); ok {
				fo.Place = &placeOutput{Display: p.Display, GeoAlias: p.GeoAlias, Coords: p.Coords}
			}
			ro.Fields = append(ro.Fields, fo)
		}
	}
	return ro
}
