package exportjson

import (
	"bytes"
	"encoding/json"

	"github.com/arthurdick/familytree-text/diag"
)

// MarshalDiagnostics serializes res to JSON using diag's own stable wire
// format ([diag.Renderer.FormatResultJSON]), per spec §6.2. exportjson
// does not re-derive diagnostic JSON shape: diag already owns it, the
// same way the teacher keeps the JSON-wire concern inside the package
// that defines the domain type rather than in the adapter.
func MarshalDiagnostics(res diag.Result, opts ...WriteOption) ([]byte, error) {
	cfg := resolve(opts)
	renderer := diag.NewRenderer()
	raw := renderer.FormatResultJSON(res)

	if cfg.indent == "" {
		return raw, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", cfg.indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
