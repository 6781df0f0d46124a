package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output is the envelope printed by every command in JSON mode
type Output struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// outputSuccess writes a success envelope carrying data
func outputSuccess(w io.Writer, data interface{}) error {
	return writeJSON(w, Output{
		Status: "success",
		Data:   data,
	})
}

// outputError writes an error envelope in JSON mode and returns err
func outputError(w io.Writer, err error) error {
	if IsJSONOutput() {
		_ = writeJSON(w, Output{
			Status: "error",
			Error:  err.Error(),
		})
	}
	return err
}
