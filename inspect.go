package edgar

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// QueryDataset evaluates a jsonpath expression against a raw dataset file.
// It is a debugging aid for spelunking heterogeneous upstream data, e.g.
// "$..ticker" lists every ticker of a company dataset.
func QueryDataset(filename, expr string) (any, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset %q: %w", filename, err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("format error in dataset %q: %w", filename, err)
	}
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q on %q: %w", expr, filename, err)
	}
	return jval, nil
}
