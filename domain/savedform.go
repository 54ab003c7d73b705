package domain

import "encoding/json"

// SavedFormVersion tags the saved-form format so older files are
// rejected instead of silently misread.
const SavedFormVersion = "1"

// SavedForm is a versioned serialization of the comparison inputs. Only
// inputs are saved, never computed output.
type SavedForm struct {
	Version string            `json:"version"`
	Request ComparisonRequest `json:"request"`
}

// EncodeSavedForm serializes the request with the current version tag.
func EncodeSavedForm(req ComparisonRequest) ([]byte, error) {
	return json.MarshalIndent(SavedForm{Version: SavedFormVersion, Request: req}, "", "  ")
}

// DecodeSavedForm parses a saved form, rejecting unknown versions.
func DecodeSavedForm(data []byte) (ComparisonRequest, error) {
	var form SavedForm
	if err := json.Unmarshal(data, &form); err != nil {
		return ComparisonRequest{}, Invalidf("malformed saved form: %v", err)
	}
	if form.Version != SavedFormVersion {
		return ComparisonRequest{}, Invalidf("unsupported saved form version %q", form.Version)
	}
	return form.Request, nil
}
